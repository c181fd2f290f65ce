package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/quasilyte/fontbytes/internal/codegen"
	"github.com/quasilyte/fontbytes/internal/fontdata"
	"github.com/quasilyte/fontbytes/internal/fontsrc"
	"github.com/quasilyte/fontbytes/internal/settings"
	"github.com/quasilyte/fontbytes/internal/sourcecode"
	"golang.org/x/image/font/basicfont"
)

func main() {
	var fontPath string
	var dataDir string
	var numGlyphs int
	var fontName string
	var only string
	var outPath string
	var format string
	var msb bool
	var invert bool
	var lineSpacing bool
	var arrayName string
	var documentPath string
	var restore bool
	var save bool
	var debug bool
	flag.StringVar(&fontPath, "font", "",
		"a BDF font file to convert; if empty, a built-in 7x13 font is used")
	flag.StringVar(&dataDir, "data-dir", "",
		"a path to a folder with one PNG image per character (named by code point);\noverrides -font")
	flag.IntVar(&numGlyphs, "glyphs", fontsrc.DefaultNumGlyphs,
		"a number of characters to read from -font, starting with the space")
	flag.StringVar(&fontName, "name", "",
		"a font name for the document header; if empty, derived from the input")
	flag.StringVar(&only, "only", "",
		"characters to export; an empty value exports everything")
	flag.StringVar(&outPath, "o", "",
		"where to write the generated code; if empty, stdout is used")
	flag.StringVar(&format, "format", "c",
		"an output format (`c`, `arduino`, `python_list` or `python_bytes`)")
	flag.BoolVar(&msb, "msb", false,
		"whether to put the leftmost pixel into the most significant bit")
	flag.BoolVar(&invert, "invert", false,
		"whether to invert every pixel")
	flag.BoolVar(&lineSpacing, "line-spacing", false,
		"whether to separate characters with blank lines")
	flag.StringVar(&arrayName, "array-name", codegen.DefaultArrayName,
		"a name of the generated array")
	flag.StringVar(&documentPath, "document", "",
		"a face document (YAML) to restore from or save to")
	flag.BoolVar(&restore, "restore", false,
		"whether to read the face from -document;\nthe font source is used if the document can't be loaded")
	flag.BoolVar(&save, "save", false,
		"whether to write the face with its selected characters to -document")
	flag.BoolVar(&debug, "v", false,
		"whether to enable verbose output")
	flag.Parse()

	setupTracing(debug)

	if _, err := sourcecode.ParseFormat(format); err != nil {
		fatalf("%v", err)
	}

	bitNumbering := codegen.LSB.String()
	if msb {
		bitNumbering = codegen.MSB.String()
	}
	conf := settings.Load(testconfig.Conf{
		settings.KeyBitNumbering:       bitNumbering,
		settings.KeyInvertBits:         invert,
		settings.KeyIncludeLineSpacing: lineSpacing,
		settings.KeyFormat:             format,
		settings.KeyArrayName:          arrayName,
		settings.KeyDocumentPath:       documentPath,
	})
	if (restore || save) && conf.DocumentPath == "" {
		fatalf("-restore and -save require -document")
	}

	var face *fontdata.Face
	var defaultName string
	if restore {
		var err error
		face, err = fontdata.LoadDocument(conf.DocumentPath, true)
		if err != nil {
			fatalf("restore document: %v", err)
		}
		if face == nil {
			pterm.Warning.Printf("can't restore %s, using the font source\n", conf.DocumentPath)
		}
		defaultName = baseName(conf.DocumentPath)
	}
	if face == nil {
		reader, name, warnings, err := openFont(fontPath, dataDir, numGlyphs)
		if err != nil {
			fatalf("open font: %v", err)
		}
		for _, w := range warnings {
			pterm.Warning.Println(w)
		}
		face, err = fontdata.NewFaceFromReader(reader)
		if err != nil {
			fatalf("read font: %v", err)
		}
		defaultName = name
	}
	if only != "" {
		if err := face.ExportOnly(glyphIDs(only)); err != nil {
			fatalf("select characters: %v", err)
		}
	}
	if fontName == "" {
		fontName = defaultName
	}
	if save {
		if err := fontdata.SaveDocument(conf.DocumentPath, face); err != nil {
			fatalf("save document: %v", err)
		}
		pterm.Success.Printf("face saved to %s\n", conf.DocumentPath)
	}

	pool := codegen.NewPool(&codegen.Generator{}, 1)
	ticket := pool.Submit(conf.Request(face, fontName), nil)
	result := <-ticket.Done
	pool.Close()
	if result.Err != nil {
		fatalf("generate: %v", result.Err)
	}

	if outPath == "" {
		fmt.Print(result.Source)
		return
	}
	if err := os.WriteFile(outPath, []byte(result.Source), 0o644); err != nil {
		fatalf("write output: %v", err)
	}
	pterm.Success.Printf("%d characters of %s written to %s (%s)\n",
		face.NumExported(), fontName, outPath, conf.Format.DisplayName())
}

func setupTracing(debug bool) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Error"
	if debug {
		level = "Debug"
	}
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fontbytes.codegen":  level,
		"trace.fontbytes.fontdata": level,
		"trace.fontbytes.fontsrc":  level,
		"trace.fontbytes.settings": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func openFont(fontPath, dataDir string, numGlyphs int) (fontdata.FaceReader, string, []string, error) {
	switch {
	case dataDir != "":
		r, err := fontsrc.ReadImageDir(dataDir)
		if err != nil {
			return nil, "", nil, err
		}
		return r, filepath.Base(dataDir), r.Warnings, nil

	case fontPath != "":
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, "", nil, err
		}
		r, err := fontsrc.ParseBDF(data, numGlyphs)
		if err != nil {
			return nil, "", nil, err
		}
		return r, baseName(fontPath), r.Warnings, nil

	default:
		r, err := fontsrc.NewXFontReader(basicfont.Face7x13, numGlyphs)
		if err != nil {
			return nil, "", nil, err
		}
		return r, "Basic 7x13", r.Warnings, nil
	}
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func glyphIDs(chars string) []int {
	ids := make([]int, 0, len(chars))
	for _, ch := range chars {
		ids = append(ids, int(ch)-fontsrc.FirstCodePoint)
	}
	return ids
}

func fatalf(format string, args ...any) {
	pterm.Error.Printf(format+"\n", args...)
	os.Exit(1)
}
