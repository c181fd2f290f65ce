// Package codegen turns a font face into source code that embeds
// the glyph bitmaps as byte arrays.
package codegen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontbytes.codegen'.
func tracer() tracing.Trace {
	return tracing.Select("fontbytes.codegen")
}
