package codegen

import (
	"github.com/quasilyte/fontbytes/internal/fontdata"
	"github.com/quasilyte/fontbytes/internal/sourcecode"
)

const (
	DefaultArrayName = "font"
	DefaultFontName  = "Font"
)

// Request holds everything a single document is generated from.
type Request struct {
	Face    *fontdata.Face
	Options Options
	Format  sourcecode.Format

	// FontName goes to the document header.
	FontName string

	// ArrayName is the glyph data array identifier.
	// The look-up table, if any, is named ArrayName+"_lut".
	ArrayName string
}

// Snapshot returns a deep copy of r.
// Later changes to the original face or options do not affect it.
func (r Request) Snapshot() Request {
	if r.Face != nil {
		r.Face = r.Face.Clone()
	}
	r.Options = r.Options.clone()
	return r
}
