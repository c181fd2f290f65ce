// Package settings maps application configuration keys onto
// source code generation settings.
package settings

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/quasilyte/fontbytes/internal/codegen"
	"github.com/quasilyte/fontbytes/internal/fontdata"
	"github.com/quasilyte/fontbytes/internal/sourcecode"
)

// Configuration keys, shared with persisted application settings.
const (
	KeyBitNumbering       = "source_code_options/bit_numbering"
	KeyInvertBits         = "source_code_options/invert_bits"
	KeyIncludeLineSpacing = "source_code_options/include_line_spacing"
	KeyFormat             = "source_code_options/format"
	KeyArrayName          = "source_code_options/font_array_name"
	KeyDocumentPath       = "source_code_options/document_path"
)

// tracer traces with key 'fontbytes.settings'.
func tracer() tracing.Trace {
	return tracing.Select("fontbytes.settings")
}

type Settings struct {
	Options   codegen.Options
	Format    sourcecode.Format
	ArrayName string

	// DocumentPath is the last opened document, if any.
	DocumentPath string
}

// Default returns the settings used for keys that are not configured.
func Default() Settings {
	return Settings{
		Options:   codegen.Options{BitNumbering: codegen.LSB},
		Format:    sourcecode.Formats()[0],
		ArrayName: codegen.DefaultArrayName,
	}
}

// Load reads the settings from conf.
// Invalid values are traced and replaced by their defaults.
func Load(conf schuko.Configuration) Settings {
	s := Default()

	if conf.IsSet(KeyBitNumbering) {
		v := conf.GetString(KeyBitNumbering)
		switch v {
		case "0":
			s.Options.BitNumbering = codegen.LSB
		case "1":
			s.Options.BitNumbering = codegen.MSB
		default:
			b, err := codegen.ParseBitNumbering(v)
			if err != nil {
				tracer().Errorf("%s: %v", KeyBitNumbering, err)
			}
			s.Options.BitNumbering = b
		}
	}
	if conf.IsSet(KeyInvertBits) {
		s.Options.InvertBits = conf.GetBool(KeyInvertBits)
	}
	if conf.IsSet(KeyIncludeLineSpacing) {
		s.Options.IncludeLineSpacing = conf.GetBool(KeyIncludeLineSpacing)
	}
	if conf.IsSet(KeyFormat) {
		f, err := sourcecode.ParseFormat(conf.GetString(KeyFormat))
		if err != nil {
			tracer().Errorf("%s: %v, using %s", KeyFormat, err, s.Format)
		} else {
			s.Format = f
		}
	}
	if conf.IsSet(KeyArrayName) && conf.GetString(KeyArrayName) != "" {
		s.ArrayName = conf.GetString(KeyArrayName)
	}
	if conf.IsSet(KeyDocumentPath) {
		s.DocumentPath = conf.GetString(KeyDocumentPath)
	}

	tracer().Debugf("output format: %s, bit numbering: %s", s.Format, s.Options.BitNumbering)
	return s
}

// Request combines the settings with a face into a generation request.
func (s Settings) Request(face *fontdata.Face, fontName string) codegen.Request {
	return codegen.Request{
		Face:      face,
		Options:   s.Options,
		Format:    s.Format,
		FontName:  fontName,
		ArrayName: s.ArrayName,
	}
}
