package fontdata

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	f, err := NewFaceFromReader(rowsReader{
		size: Size{Width: 3, Height: 4},
		rows: [][]int{{}, {0, 3}, {1}},
	})
	require.NoError(t, err)
	f.Glyph(2).SetPixel(Point{X: 1, Y: 2}, true)
	require.NoError(t, f.SetExported(0, false))

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, f))
	assert.Contains(t, buf.String(), "width: 3\n")
	assert.Contains(t, buf.String(), "exported: [1, 2]\n")
	assert.Regexp(t, `- ['"]###['"]\n`, buf.String())

	loaded, err := DecodeDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, f.Size(), loaded.Size())
	assert.Equal(t, []int{1, 2}, loaded.ExportedGlyphIDs())
	require.Equal(t, f.NumGlyphs(), loaded.NumGlyphs())
	for i := 0; i < f.NumGlyphs(); i++ {
		assert.Equal(t, f.Glyph(i).Pixels(), loaded.Glyph(i).Pixels(), "glyph %d", i)
	}
}

func TestDecodeBadDocument(t *testing.T) {
	tests := []struct {
		doc  string
		want error
	}{
		{"width: 2\nheight: 1\nglyphs: [['#.', '..']]\n", ErrBadDocument},
		{"width: 2\nheight: 1\nglyphs: [['#']]\n", ErrBadDocument},
		{"width: 2\nheight: 1\nglyphs: [['#x']]\n", ErrBadDocument},
		{"width: -1\nheight: -2\nglyphs: []\n", ErrInvalidSize},
		{"width: 2\nheight: 1\nexported: [4]\nglyphs: [['..']]\n", ErrGlyphIndex},
		{"width: [\n", ErrBadDocument},
	}
	for _, test := range tests {
		_, err := DecodeDocument(strings.NewReader(test.doc))
		assert.ErrorIs(t, err, test.want, "document %q", test.doc)
	}
}

func TestLoadDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbytes.fontdata")
	defer teardown()

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")

	_, err := LoadDocument(missing, false)
	assert.ErrorIs(t, err, os.ErrNotExist)

	face, err := LoadDocument(missing, true)
	assert.NoError(t, err)
	assert.Nil(t, face)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("width: 1\nheight: 1\nglyphs: [['?']]\n"), 0o644))
	_, err = LoadDocument(broken, false)
	assert.ErrorIs(t, err, ErrBadDocument)
	face, err = LoadDocument(broken, true)
	assert.NoError(t, err)
	assert.Nil(t, face)

	saved := filepath.Join(dir, "face.yaml")
	f, err := NewFaceFromReader(rowsReader{size: Size{Width: 2, Height: 2}, rows: [][]int{{1}}})
	require.NoError(t, err)
	require.NoError(t, SaveDocument(saved, f))
	face, err = LoadDocument(saved, true)
	require.NoError(t, err)
	require.NotNil(t, face)
	assert.Equal(t, []bool{false, false, true, true}, face.Glyph(0).Pixels())
}
