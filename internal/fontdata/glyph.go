package fontdata

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is reported when pixel data disagrees with a glyph size.
	ErrSizeMismatch = errors.New("pixels size must equal glyph size (width * height)")

	// ErrInvalidSize is reported for sizes with a non-positive dimension.
	ErrInvalidSize = errors.New("glyph size must be positive")
)

type Size struct {
	Width  int
	Height int
}

func (sz Size) Valid() bool { return sz.Width > 0 && sz.Height > 0 }

func (sz Size) Area() int { return sz.Width * sz.Height }

func (sz Size) String() string { return fmt.Sprintf("%dx%d", sz.Width, sz.Height) }

type Point struct {
	X int
	Y int
}

// Margins is a number of fully empty rows at the top and at the bottom.
type Margins struct {
	Top    int
	Bottom int
}

// Glyph is a fixed-size monochrome bitmap of a single character.
// Pixels are stored row-major, the index of (x, y) is y*width+x.
type Glyph struct {
	size   Size
	pixels []bool
}

func NewGlyph(sz Size) (*Glyph, error) {
	if !sz.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, sz)
	}
	return &Glyph{
		size:   sz,
		pixels: make([]bool, sz.Area()),
	}, nil
}

func NewGlyphFromPixels(sz Size, pixels []bool) (*Glyph, error) {
	if !sz.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, sz)
	}
	if len(pixels) != sz.Area() {
		return nil, fmt.Errorf("%w: got %d pixels for %s glyph", ErrSizeMismatch, len(pixels), sz)
	}
	return &Glyph{size: sz, pixels: pixels}, nil
}

func (g *Glyph) Size() Size { return g.size }

// Pixels returns a copy of the row-major pixel data.
func (g *Glyph) Pixels() []bool {
	return append([]bool(nil), g.pixels...)
}

// Row returns a copy of the y-th pixel row.
func (g *Glyph) Row(y int) []bool {
	from := y * g.size.Width
	return append([]bool(nil), g.pixels[from:from+g.size.Width]...)
}

// IsPixelSet panics if p lies outside of the glyph.
func (g *Glyph) IsPixelSet(p Point) bool {
	return g.pixels[g.index(p)]
}

// SetPixel panics if p lies outside of the glyph.
func (g *Glyph) SetPixel(p Point, set bool) {
	g.pixels[g.index(p)] = set
}

func (g *Glyph) Clear() {
	clear(g.pixels)
}

func (g *Glyph) Clone() *Glyph {
	return &Glyph{size: g.size, pixels: g.Pixels()}
}

// TopMargin reports the number of empty rows before the first set pixel.
// A glyph without any set pixels is all margin.
func (g *Glyph) TopMargin() int {
	for i, set := range g.pixels {
		if set {
			return i / g.size.Width
		}
	}
	return g.size.Height
}

// BottomMargin is like TopMargin, but counts from the bottom row.
func (g *Glyph) BottomMargin() int {
	for i := len(g.pixels) - 1; i >= 0; i-- {
		if g.pixels[i] {
			return (len(g.pixels) - 1 - i) / g.size.Width
		}
	}
	return g.size.Height
}

func (g *Glyph) index(p Point) int {
	if p.X < 0 || p.X >= g.size.Width || p.Y < 0 || p.Y >= g.size.Height {
		panic(fmt.Sprintf("point (%d, %d) is outside of %s glyph", p.X, p.Y, g.size))
	}
	return p.Y*g.size.Width + p.X
}
