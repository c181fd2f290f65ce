// Package fontsrc provides glyph sources that can be turned into
// a fontdata.Face: PNG image directories and bitmap font.Face values
// (including BDF fonts).
//
// Glyph index 0 always maps to the space character (code point 32).
package fontsrc

import (
	"github.com/npillmayer/schuko/tracing"
)

const (
	// FirstCodePoint is the character of glyph 0.
	FirstCodePoint = 32

	// DefaultNumGlyphs covers the printable ASCII range.
	DefaultNumGlyphs = 95
)

// tracer traces with key 'fontbytes.fontsrc'.
func tracer() tracing.Trace {
	return tracing.Select("fontbytes.fontsrc")
}
