package fontdata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Pixel characters of a document row.
const (
	pixelSet   = '#'
	pixelUnset = '.'
)

var ErrBadDocument = errors.New("malformed face document")

// tracer traces with key 'fontbytes.fontdata'.
func tracer() tracing.Trace {
	return tracing.Select("fontbytes.fontdata")
}

// document is the persisted form of a Face.
// Every glyph is stored as Height rows of Width pixel characters.
type document struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Exported []int      `yaml:"exported,flow"`
	Glyphs   [][]string `yaml:"glyphs"`
}

// EncodeDocument writes face to w as a YAML document.
func EncodeDocument(w io.Writer, face *Face) error {
	sz := face.Size()
	doc := document{
		Width:    sz.Width,
		Height:   sz.Height,
		Exported: face.ExportedGlyphIDs(),
		Glyphs:   make([][]string, face.NumGlyphs()),
	}
	for i := range doc.Glyphs {
		g := face.Glyph(i)
		rows := make([]string, sz.Height)
		var sb strings.Builder
		for y := range rows {
			sb.Reset()
			for _, set := range g.Row(y) {
				if set {
					sb.WriteByte(pixelSet)
				} else {
					sb.WriteByte(pixelUnset)
				}
			}
			rows[y] = sb.String()
		}
		doc.Glyphs[i] = rows
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeDocument reads a face written by EncodeDocument.
func DecodeDocument(r io.Reader) (*Face, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	sz := Size{Width: doc.Width, Height: doc.Height}
	if !sz.Valid() {
		return nil, fmt.Errorf("font size: %w: %s", ErrInvalidSize, sz)
	}
	glyphs := make([]*Glyph, len(doc.Glyphs))
	for i, rows := range doc.Glyphs {
		if len(rows) != sz.Height {
			return nil, fmt.Errorf("%w: glyph %d has %d rows, want %d",
				ErrBadDocument, i, len(rows), sz.Height)
		}
		pixels := make([]bool, 0, sz.Area())
		for y, row := range rows {
			if len(row) != sz.Width {
				return nil, fmt.Errorf("%w: glyph %d row %d has %d pixels, want %d",
					ErrBadDocument, i, y, len(row), sz.Width)
			}
			for x := 0; x < len(row); x++ {
				switch row[x] {
				case pixelSet:
					pixels = append(pixels, true)
				case pixelUnset:
					pixels = append(pixels, false)
				default:
					return nil, fmt.Errorf("%w: glyph %d row %d: unexpected %q",
						ErrBadDocument, i, y, row[x])
				}
			}
		}
		g, err := NewGlyphFromPixels(sz, pixels)
		if err != nil {
			return nil, err
		}
		glyphs[i] = g
	}
	return NewFace(sz, glyphs, doc.Exported)
}

// SaveDocument writes face to the file at path.
// The file is only replaced once the face is encoded completely.
func SaveDocument(path string, face *Face) error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, face); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadDocument reads a face from the file at path.
//
// With failSilently set, a missing or unreadable document is not an
// error: the problem is traced and LoadDocument returns a nil face,
// leaving the caller to fall back to another glyph source.
func LoadDocument(path string, failSilently bool) (*Face, error) {
	face, err := loadDocument(path)
	if err != nil {
		if failSilently {
			tracer().Infof("document %q not loaded: %v", path, err)
			return nil, nil
		}
		return nil, err
	}
	tracer().Debugf("document %q: %d glyphs of %s", path, face.NumGlyphs(), face.Size())
	return face, nil
}

func loadDocument(path string) (*Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	face, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return face, nil
}
