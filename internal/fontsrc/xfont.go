package fontsrc

import (
	"fmt"
	"image"

	"github.com/quasilyte/fontbytes/internal/fontdata"
	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// XFontReader copies the glyph masks of a bitmap font.Face into
// fixed-size cells. The cell is as wide as the widest advance
// and as high as ascent plus descent; the baseline sits at the ascent.
//
// Masks are thresholded at half coverage, so the face is expected
// to be a bitmap one (basicfont, BDF) rather than an antialiased outline.
type XFontReader struct {
	size   fontdata.Size
	glyphs []*image.Alpha

	// Warnings lists the characters missing in the face.
	Warnings []string
}

// NewXFontReader reads numGlyphs characters starting with the space.
func NewXFontReader(face font.Face, numGlyphs int) (*XFontReader, error) {
	if numGlyphs <= 0 {
		return nil, fmt.Errorf("invalid number of glyphs: %d", numGlyphs)
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()

	width := 0
	for i := 0; i < numGlyphs; i++ {
		if advance, ok := face.GlyphAdvance(rune(i + FirstCodePoint)); ok {
			width = max(width, advance.Ceil())
		}
	}

	r := &XFontReader{size: fontdata.Size{Width: width, Height: height}}
	if !r.size.Valid() {
		return nil, fmt.Errorf("face has no usable glyphs (cell %s)", r.size)
	}
	tracer().Debugf("font face cell is %s, ascent %d", r.size, ascent)

	cell := image.Rect(0, 0, width, height)
	dot := fixed.P(0, ascent)
	r.glyphs = make([]*image.Alpha, numGlyphs)
	for i := range r.glyphs {
		ch := rune(i + FirstCodePoint)
		dst := image.NewAlpha(cell)
		r.glyphs[i] = dst

		dr, mask, maskp, _, ok := face.Glyph(dot, ch)
		if !ok {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%q: missing in the font face, using a blank glyph", ch))
			continue
		}
		clipped := dr.Intersect(cell)
		for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
			for x := clipped.Min.X; x < clipped.Max.X; x++ {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					dst.Pix[dst.PixOffset(x, y)] = 0xff
				}
			}
		}
	}
	return r, nil
}

// ParseBDF reads numGlyphs characters of a BDF font file.
func ParseBDF(data []byte, numGlyphs int) (*XFontReader, error) {
	f, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse bdf: %w", err)
	}
	return NewXFontReader(f.NewFace(), numGlyphs)
}

func (r *XFontReader) FontSize() fontdata.Size { return r.size }

func (r *XFontReader) NumGlyphs() int { return len(r.glyphs) }

func (r *XFontReader) IsPixelSet(glyph int, p fontdata.Point) bool {
	return r.glyphs[glyph].AlphaAt(p.X, p.Y).A != 0
}
