package codegen

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/quasilyte/fontbytes/internal/fontdata"
	"github.com/quasilyte/fontbytes/internal/sourcecode"
)

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Generator renders requests into source code documents.
// The zero value is ready to use.
type Generator struct {
	// Now is used for the document timestamp; nil means time.Now.
	Now func() time.Time
}

// Generate produces one complete document for req.
// It never modifies req.Face.
func (g *Generator) Generate(req Request) (string, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	gen := &generation{req: req, now: now}
	return gen.run()
}

// generation is the state of a single Generate call.
type generation struct {
	req Request
	now func() time.Time

	idiom  sourcecode.Idiom
	indent sourcecode.Indentation

	// Fields below are initialized during the layout phase.
	size         fontdata.Size
	pixelMargins fontdata.Margins
	bytesPerRow  int
	bytesPerChar int
	exported     []int
}

func (g *generation) run() (string, error) {
	type step struct {
		name string
		fn   func() error
	}

	steps := []step{
		{"validate request", g.validateRequest},
		{"compute layout", g.computeLayout},
		{"begin document", g.beginDocument},
		{"emit glyphs", g.emitGlyphs},
		{"emit look-up table", g.emitLookupTable},
		{"end document", g.endDocument},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return "", fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return g.idiom.Source(), nil
}

func (g *generation) validateRequest() error {
	if g.req.Face == nil {
		return errors.New("Face can't be nil")
	}
	if g.req.ArrayName == "" {
		g.req.ArrayName = DefaultArrayName
	}
	if !identifierRegexp.MatchString(g.req.ArrayName) {
		return fmt.Errorf("ArrayName %q is not a valid identifier", g.req.ArrayName)
	}
	if g.req.FontName == "" {
		g.req.FontName = DefaultFontName
	}

	idiom, err := sourcecode.NewIdiom(g.req.Format)
	if err != nil {
		return err
	}
	g.idiom = idiom
	g.indent = g.req.Options.indentation(g.req.Format)
	return nil
}

func (g *generation) computeLayout() error {
	face := g.req.Face
	g.size = face.Size()

	m := face.CalculateMargins()
	if m.Top+m.Bottom >= g.size.Height {
		// Only a face without any set pixels gets here;
		// keep its glyphs whole instead of trimming them away.
		tracer().Debugf("blank face, margins are not trimmed")
		m = fontdata.Margins{}
	}
	g.pixelMargins = fontdata.Margins{
		Top:    m.Top * g.size.Width,
		Bottom: m.Bottom * g.size.Width,
	}
	g.bytesPerRow = BytesPerRow(g.size.Width)
	g.bytesPerChar = g.bytesPerRow * (g.size.Height - m.Top - m.Bottom)
	g.exported = face.ExportedGlyphIDs()

	tracer().Debugf("%s: margins=%d/%d bytes_per_char=%d exported=%d/%d",
		g.req.Format, m.Top, m.Bottom, g.bytesPerChar, len(g.exported), face.NumGlyphs())
	return nil
}

func (g *generation) beginDocument() error {
	g.idiom.Begin(g.req.FontName, g.size, formatTimestamp(g.now()))
	g.idiom.Constant(bytesPerCharName, g.bytesPerChar)
	return nil
}

func (g *generation) emitGlyphs() error {
	g.idiom.BeginArray(g.req.ArrayName, sourcecode.Uint8)
	for _, index := range g.exported {
		if err := g.emitGlyph(index); err != nil {
			return fmt.Errorf("glyph %d: %w", index, err)
		}
	}
	g.idiom.EndArray()
	return nil
}

func (g *generation) emitGlyph(index int) error {
	glyph := g.req.Face.Glyph(index)
	if glyph.Size() != g.size {
		return fmt.Errorf("%w: %s glyph in %s face", fontdata.ErrSizeMismatch, glyph.Size(), g.size)
	}

	g.idiom.BeginArrayRow(g.indent)
	g.idiom.Comment(CommentForGlyph(index))
	g.idiom.ArrayLineBreak()

	g.idiom.BeginArrayRow(g.indent)
	pixels := glyph.Pixels()
	pixels = pixels[g.pixelMargins.Top : len(pixels)-g.pixelMargins.Bottom]
	opts := g.req.Options
	for len(pixels) != 0 {
		row := pixels[:g.size.Width]
		pixels = pixels[g.size.Width:]
		for _, b := range PackRow(row, opts.BitNumbering, opts.InvertBits) {
			g.idiom.Value(sourcecode.Byte(b))
		}
	}
	g.idiom.ArrayLineBreak()

	if opts.IncludeLineSpacing {
		g.idiom.ArrayLineBreak()
	}
	return nil
}

// emitLookupTable maps the positions of the exported glyphs to their
// offsets in the glyph array. Without gaps in the exported set,
// the offset of a glyph can be derived from its index directly,
// so the table is only emitted for partial exports.
func (g *generation) emitLookupTable() error {
	if len(g.exported) == g.req.Face.NumGlyphs() {
		return nil
	}

	// Byte arrays may render as bytes literals, so offsets are at least uint16.
	maxOffset := g.bytesPerChar * max(len(g.exported)-1, 0)
	elem := max(sourcecode.ElementFor(maxOffset), sourcecode.Uint16)
	g.idiom.BeginArray(g.req.ArrayName+"_lut", elem)
	for pos, index := range g.exported {
		g.idiom.BeginArrayRow(g.indent)
		g.idiom.Value(sourcecode.Expr(LUTValueForGlyph(pos)))
		g.idiom.Comment(CommentForGlyph(index))
		g.idiom.ArrayLineBreak()
	}
	g.idiom.EndArray()
	return nil
}

func (g *generation) endDocument() error {
	g.idiom.End()
	return nil
}
