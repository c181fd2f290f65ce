package sourcecode

import (
	"fmt"
	"strings"

	"github.com/quasilyte/fontbytes/internal/fontdata"
)

// Idiom renders the emission events of a source code document
// in one output dialect.
//
// An Idiom is stateful: it accumulates the document text and
// tracks the array it is currently inside of.
// Use NewIdiom to get a fresh one for every document.
type Idiom interface {
	Begin(fontName string, size fontdata.Size, timestamp string)
	Constant(name string, value int)
	BeginArray(name string, elem ElementType)
	BeginArrayRow(indent Indentation)
	Value(v Value)
	Comment(text string)
	ArrayLineBreak()
	EndArray()
	End()

	// Source returns the text rendered so far.
	Source() string
}

func NewIdiom(f Format) (Idiom, error) {
	switch f {
	case FormatC:
		return &cIdiom{}, nil
	case FormatArduino:
		return &arduinoIdiom{}, nil
	case FormatPythonList:
		return &pythonListIdiom{}, nil
	case FormatPythonBytes:
		return &pythonBytesIdiom{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

type emitter struct {
	buf     strings.Builder
	inArray bool

	// rowValues is set once the current array row has list values.
	rowValues bool
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

func (e *emitter) Source() string { return e.buf.String() }

func (e *emitter) BeginArrayRow(indent Indentation) {
	e.rowValues = false
	e.buf.WriteString(indent.String())
}

func (e *emitter) ArrayLineBreak() {
	e.rowValues = false
	e.buf.WriteByte('\n')
}

func (e *emitter) End() { e.buf.WriteByte('\n') }

func (e *emitter) header(commentPrefix, fontName string, size fontdata.Size, timestamp string) {
	p := commentPrefix
	e.printf("%s\n%s %s\n", p, p, fontName)
	e.printf("%s Font Size: %dx%dpx\n", p, size.Width, size.Height)
	e.printf("%s Created: %s\n%s\n", p, timestamp, p)
}

func (e *emitter) comment(commentPrefix, text string) {
	if e.inArray {
		if e.rowValues {
			e.buf.WriteByte(' ')
		}
		e.printf("%s %s", commentPrefix, text)
		return
	}
	e.printf("%s %s\n", commentPrefix, text)
}

func (e *emitter) listValue(v Value) {
	e.rowValues = true
	switch v := v.(type) {
	case Byte:
		e.printf("0x%02X,", uint8(v))
	case Expr:
		e.printf("%s,", string(v))
	}
}

// cIdiom renders C/C++ code.
type cIdiom struct {
	emitter
}

func (c *cIdiom) Begin(fontName string, size fontdata.Size, timestamp string) {
	c.header("//", fontName, size, timestamp)
	c.printf("\n#include <stdint.h>\n")
}

func (c *cIdiom) Constant(name string, value int) {
	c.printf("\n\nconst %s %s = %d;\n", ElementFor(value).cName(), name, value)
}

func (c *cIdiom) BeginArray(name string, elem ElementType) {
	c.inArray = true
	c.printf("\n\nconst %s %s[] = {\n", elem.cName(), name)
}

func (c *cIdiom) Value(v Value) { c.listValue(v) }

func (c *cIdiom) Comment(text string) { c.comment("//", text) }

func (c *cIdiom) EndArray() {
	c.inArray = false
	c.printf("};\n")
}

// arduinoIdiom is C with PROGMEM storage and the Arduino header.
type arduinoIdiom struct {
	cIdiom
}

func (a *arduinoIdiom) Begin(fontName string, size fontdata.Size, timestamp string) {
	a.header("//", fontName, size, timestamp)
	a.printf("\n#include <Arduino.h>\n")
}

func (a *arduinoIdiom) Constant(name string, value int) {
	a.printf("\n\nconst %s %s PROGMEM = %d;\n", ElementFor(value).stdintName(), name, value)
}

func (a *arduinoIdiom) BeginArray(name string, elem ElementType) {
	a.inArray = true
	a.printf("\n\nconst %s %s[] PROGMEM = {\n", elem.stdintName(), name)
}

// pythonListIdiom renders arrays as Python lists of ints.
type pythonListIdiom struct {
	emitter
}

func (p *pythonListIdiom) Begin(fontName string, size fontdata.Size, timestamp string) {
	p.header("#", fontName, size, timestamp)
}

func (p *pythonListIdiom) Constant(name string, value int) {
	p.printf("\n\n%s = %d\n", name, value)
}

func (p *pythonListIdiom) BeginArray(name string, elem ElementType) {
	p.inArray = true
	p.printf("\n\n%s = [\n", name)
}

func (p *pythonListIdiom) Value(v Value) { p.listValue(v) }

func (p *pythonListIdiom) Comment(text string) { p.comment("#", text) }

func (p *pythonListIdiom) EndArray() {
	p.inArray = false
	p.printf("]\n")
}

// pythonBytesIdiom renders byte arrays as a parenthesized sequence
// of bytes literals, one per array row. Other arrays are lists.
type pythonBytesIdiom struct {
	pythonListIdiom

	bytesArray  bool
	literalOpen bool
	numBytes    int
}

func (p *pythonBytesIdiom) BeginArray(name string, elem ElementType) {
	if elem != Uint8 {
		p.pythonListIdiom.BeginArray(name, elem)
		return
	}
	p.inArray = true
	p.bytesArray = true
	p.numBytes = 0
	p.printf("\n\n%s = (\n", name)
}

func (p *pythonBytesIdiom) Value(v Value) {
	b, ok := v.(Byte)
	if !p.bytesArray || !ok {
		p.listValue(v)
		return
	}
	if !p.literalOpen {
		p.printf("b'")
		p.literalOpen = true
	}
	p.printf("\\x%02X", uint8(b))
	p.numBytes++
}

func (p *pythonBytesIdiom) Comment(text string) {
	if p.literalOpen {
		p.closeLiteral()
		p.printf(" ")
	}
	p.pythonListIdiom.Comment(text)
}

func (p *pythonBytesIdiom) ArrayLineBreak() {
	p.closeLiteral()
	p.emitter.ArrayLineBreak()
}

func (p *pythonBytesIdiom) EndArray() {
	if !p.bytesArray {
		p.pythonListIdiom.EndArray()
		return
	}
	p.closeLiteral()
	if p.numBytes == 0 {
		// An empty parenthesized group would be a tuple.
		p.printf("%sb''\n", FormatPythonBytes.DefaultIndentation())
	}
	p.inArray = false
	p.bytesArray = false
	p.printf(")\n")
}

func (p *pythonBytesIdiom) closeLiteral() {
	if p.literalOpen {
		p.printf("'")
		p.literalOpen = false
	}
}
