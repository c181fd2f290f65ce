package fontdata

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// ErrGlyphIndex is reported for glyph indices outside of a face.
var ErrGlyphIndex = errors.New("glyph index out of range")

// FaceReader provides raw pixel data for building a Face.
// Font file parsers and other glyph sources implement it.
type FaceReader interface {
	FontSize() Size
	NumGlyphs() int
	IsPixelSet(glyph int, p Point) bool
}

// Face is an ordered collection of same-sized glyphs
// together with the subset of glyph indices selected for export.
type Face struct {
	size   Size
	glyphs []*Glyph

	// exported holds int glyph indices; the tree set keeps them
	// unique and iterates in ascending order.
	exported *treeset.Set
}

// NewFaceFromReader reads every glyph of r and marks all of them exported.
func NewFaceFromReader(r FaceReader) (*Face, error) {
	sz := r.FontSize()
	if !sz.Valid() {
		return nil, fmt.Errorf("font size: %w: %s", ErrInvalidSize, sz)
	}

	n := r.NumGlyphs()
	glyphs := make([]*Glyph, 0, n)
	for i := 0; i < n; i++ {
		pixels := make([]bool, 0, sz.Area())
		for y := 0; y < sz.Height; y++ {
			for x := 0; x < sz.Width; x++ {
				pixels = append(pixels, r.IsPixelSet(i, Point{X: x, Y: y}))
			}
		}
		g, err := NewGlyphFromPixels(sz, pixels)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
		glyphs = append(glyphs, g)
	}

	f := &Face{size: sz, glyphs: glyphs, exported: treeset.NewWithIntComparator()}
	f.ExportAll()
	return f, nil
}

// NewFace assembles a face from its parts. The exported set is used as given.
func NewFace(sz Size, glyphs []*Glyph, exported []int) (*Face, error) {
	if !sz.Valid() {
		return nil, fmt.Errorf("font size: %w: %s", ErrInvalidSize, sz)
	}
	for i, g := range glyphs {
		if g.Size() != sz {
			return nil, fmt.Errorf("glyph %d: %w: %s glyph in %s face", i, ErrSizeMismatch, g.Size(), sz)
		}
	}
	f := &Face{size: sz, glyphs: glyphs, exported: treeset.NewWithIntComparator()}
	if err := f.ExportOnly(exported); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Face) Size() Size { return f.size }

func (f *Face) NumGlyphs() int { return len(f.glyphs) }

// Glyph returns the i-th glyph; the result is shared with the face.
func (f *Face) Glyph(i int) *Glyph { return f.glyphs[i] }

// ExportedGlyphIDs returns exported glyph indices in ascending order.
func (f *Face) ExportedGlyphIDs() []int {
	values := f.exported.Values()
	ids := make([]int, len(values))
	for i, v := range values {
		ids[i] = v.(int)
	}
	return ids
}

func (f *Face) NumExported() int { return f.exported.Size() }

func (f *Face) IsExported(i int) bool { return f.exported.Contains(i) }

func (f *Face) SetExported(i int, exported bool) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if exported {
		f.exported.Add(i)
	} else {
		f.exported.Remove(i)
	}
	return nil
}

// ExportOnly replaces the exported set with ids.
// The face is left unchanged if any of the ids is out of range.
func (f *Face) ExportOnly(ids []int) error {
	for _, i := range ids {
		if err := f.checkIndex(i); err != nil {
			return err
		}
	}
	f.exported.Clear()
	for _, i := range ids {
		f.exported.Add(i)
	}
	return nil
}

func (f *Face) ExportAll() {
	for i := range f.glyphs {
		f.exported.Add(i)
	}
}

// CalculateMargins returns the smallest top and bottom margins over all glyphs.
// These rows can be trimmed from every glyph of the face uniformly.
func (f *Face) CalculateMargins() Margins {
	m := Margins{Top: f.size.Height, Bottom: f.size.Height}
	for _, g := range f.glyphs {
		m.Top = min(m.Top, g.TopMargin())
		m.Bottom = min(m.Bottom, g.BottomMargin())
	}
	return m
}

// Clone returns a deep copy that shares no state with f.
func (f *Face) Clone() *Face {
	glyphs := make([]*Glyph, len(f.glyphs))
	for i, g := range f.glyphs {
		glyphs[i] = g.Clone()
	}
	exported := treeset.NewWithIntComparator()
	exported.Add(f.exported.Values()...)
	return &Face{size: f.size, glyphs: glyphs, exported: exported}
}

func (f *Face) checkIndex(i int) error {
	if i < 0 || i >= len(f.glyphs) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrGlyphIndex, i, len(f.glyphs))
	}
	return nil
}
