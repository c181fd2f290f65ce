package fontbytes

import (
	"github.com/npillmayer/schuko"
	"github.com/quasilyte/fontbytes/internal/codegen"
	"github.com/quasilyte/fontbytes/internal/fontdata"
	"github.com/quasilyte/fontbytes/internal/settings"
	"github.com/quasilyte/fontbytes/internal/sourcecode"
)

// Face is a set of same-sized glyph bitmaps together with
// the subset of glyphs selected for export.
type Face = fontdata.Face

// FaceReader is implemented by glyph sources that can be turned into a Face.
type FaceReader = fontdata.FaceReader

// Options control how the glyph pixels are packed into bytes.
type Options = codegen.Options

// Request holds a face, options and the output format of a single document.
type Request = codegen.Request

// Format is an output dialect identifier.
type Format = sourcecode.Format

const (
	// C generates a C/C++ source with stdint.h types.
	C = sourcecode.FormatC

	// Arduino generates C code with PROGMEM arrays.
	Arduino = sourcecode.FormatArduino

	// PythonList generates Python lists of ints.
	PythonList = sourcecode.FormatPythonList

	// PythonBytes generates Python bytes objects.
	PythonBytes = sourcecode.FormatPythonBytes
)

// BitNumbering selects which bit of a byte holds the leftmost pixel.
type BitNumbering = codegen.BitNumbering

const (
	// LSB puts the leftmost pixel into the lowest bit.
	LSB = codegen.LSB

	// MSB puts the leftmost pixel into the highest bit.
	MSB = codegen.MSB
)

// Pool generates documents on background workers.
type Pool = codegen.Pool

// Result is the outcome of a request submitted to a Pool.
type Result = codegen.Result

// Ticket identifies a submitted request and completes with its Result.
type Ticket = codegen.Ticket

// Session forwards only the newest of its regenerated documents
// to the listeners.
type Session = codegen.Session

// Settings is the persisted configuration of the generator.
type Settings = settings.Settings

// NewFace reads every glyph from r; all of them are exported.
func NewFace(r FaceReader) (*Face, error) {
	return fontdata.NewFaceFromReader(r)
}

// Generate renders req into a source code document.
//
// The output only depends on the request and the current time
// that goes into the document header.
func Generate(req Request) (string, error) {
	var g codegen.Generator
	return g.Generate(req)
}

// NewPool starts a pool of numWorkers generator goroutines.
// See [Pool.Submit] for the delivery guarantees.
func NewPool(numWorkers int) *Pool {
	return codegen.NewPool(&codegen.Generator{}, numWorkers)
}

// NewSession binds a session to pool.
func NewSession(pool *Pool) *Session {
	return codegen.NewSession(pool)
}

// LoadSettings reads the generator settings from conf.
func LoadSettings(conf schuko.Configuration) Settings {
	return settings.Load(conf)
}
