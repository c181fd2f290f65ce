package fontdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsReader sets a full row y of glyph i when rows[i] contains y.
type rowsReader struct {
	size Size
	rows [][]int
}

func (r rowsReader) FontSize() Size { return r.size }

func (r rowsReader) NumGlyphs() int { return len(r.rows) }

func (r rowsReader) IsPixelSet(glyph int, p Point) bool {
	for _, y := range r.rows[glyph] {
		if y == p.Y {
			return true
		}
	}
	return false
}

func TestFaceFromReader(t *testing.T) {
	r := rowsReader{
		size: Size{Width: 5, Height: 8},
		rows: [][]int{{}, {2, 3}, {6}},
	}
	f, err := NewFaceFromReader(r)
	require.NoError(t, err)

	assert.Equal(t, 3, f.NumGlyphs())
	assert.Equal(t, []int{0, 1, 2}, f.ExportedGlyphIDs())
	assert.True(t, f.Glyph(1).IsPixelSet(Point{X: 4, Y: 3}))
	assert.False(t, f.Glyph(1).IsPixelSet(Point{X: 4, Y: 4}))
	assert.Equal(t, Margins{Top: 2, Bottom: 1}, f.CalculateMargins())
}

func TestFaceFromReaderInvalidSize(t *testing.T) {
	_, err := NewFaceFromReader(rowsReader{size: Size{Width: 0, Height: 8}})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestFaceMarginsNoLargerThanGlyphMargins(t *testing.T) {
	r := rowsReader{
		size: Size{Width: 3, Height: 10},
		rows: [][]int{{4}, {1, 5}, {8}, {}},
	}
	f, err := NewFaceFromReader(r)
	require.NoError(t, err)

	m := f.CalculateMargins()
	for i := 0; i < f.NumGlyphs(); i++ {
		assert.LessOrEqual(t, m.Top, f.Glyph(i).TopMargin())
		assert.LessOrEqual(t, m.Bottom, f.Glyph(i).BottomMargin())
	}
	assert.Equal(t, Margins{Top: 1, Bottom: 1}, m)
}

func TestFaceEmptyMargins(t *testing.T) {
	f, err := NewFace(Size{Width: 4, Height: 6}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Margins{Top: 6, Bottom: 6}, f.CalculateMargins())
}

func TestFaceExportSet(t *testing.T) {
	sz := Size{Width: 2, Height: 2}
	glyphs := []*Glyph{newGlyph(t, sz), newGlyph(t, sz), newGlyph(t, sz), newGlyph(t, sz)}
	f, err := NewFace(sz, glyphs, []int{3, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, f.ExportedGlyphIDs())

	require.NoError(t, f.SetExported(0, true))
	require.NoError(t, f.SetExported(3, false))
	assert.Equal(t, []int{0, 1}, f.ExportedGlyphIDs())
	assert.Equal(t, 2, f.NumExported())

	assert.ErrorIs(t, f.SetExported(4, true), ErrGlyphIndex)
	assert.ErrorIs(t, f.SetExported(-1, true), ErrGlyphIndex)
	assert.ErrorIs(t, f.ExportOnly([]int{2, 9}), ErrGlyphIndex)
	assert.Equal(t, []int{0, 1}, f.ExportedGlyphIDs(), "failed ExportOnly must not change the set")

	f.ExportAll()
	assert.Equal(t, []int{0, 1, 2, 3}, f.ExportedGlyphIDs())
}

func TestNewFaceValidation(t *testing.T) {
	sz := Size{Width: 2, Height: 2}
	_, err := NewFace(sz, []*Glyph{newGlyph(t, Size{Width: 2, Height: 3})}, nil)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = NewFace(sz, []*Glyph{newGlyph(t, sz)}, []int{1})
	assert.ErrorIs(t, err, ErrGlyphIndex)
}

func TestFaceClone(t *testing.T) {
	r := rowsReader{size: Size{Width: 2, Height: 3}, rows: [][]int{{0}, {1}}}
	f, err := NewFaceFromReader(r)
	require.NoError(t, err)

	c := f.Clone()
	f.Glyph(0).Clear()
	require.NoError(t, f.SetExported(1, false))

	assert.True(t, c.Glyph(0).IsPixelSet(Point{X: 0, Y: 0}))
	assert.Equal(t, []int{0, 1}, c.ExportedGlyphIDs())
}
