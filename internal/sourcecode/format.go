package sourcecode

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown source code format")

// Format identifies one output dialect.
type Format string

const (
	FormatC           Format = "c"
	FormatArduino     Format = "arduino"
	FormatPythonList  Format = "python_list"
	FormatPythonBytes Format = "python_bytes"
)

// Formats lists all dialects; the first one is the default.
func Formats() []Format {
	return []Format{FormatC, FormatArduino, FormatPythonList, FormatPythonBytes}
}

// ParseFormat accepts both "python_list" and "python-list" spellings.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) DisplayName() string {
	switch f {
	case FormatC:
		return "C/C++"
	case FormatArduino:
		return "Arduino"
	case FormatPythonList:
		return "Python List"
	case FormatPythonBytes:
		return "Python Bytes"
	default:
		return "?"
	}
}

func (f Format) isCBased() bool { return f == FormatC || f == FormatArduino }

// DefaultIndentation is the array row indentation used when none is configured.
func (f Format) DefaultIndentation() Indentation {
	if f.isCBased() {
		return Tab()
	}
	return Spaces(4)
}

type indentKind uint8

const (
	indentTab indentKind = iota
	indentSpaces
)

// Indentation is either a single tab or a run of spaces.
// Values are comparable with ==.
type Indentation struct {
	kind   indentKind
	spaces int
}

func Tab() Indentation { return Indentation{kind: indentTab} }

func Spaces(n int) Indentation { return Indentation{kind: indentSpaces, spaces: max(n, 0)} }

func (ind Indentation) IsTab() bool { return ind.kind == indentTab }

// NumSpaces is zero for a tab.
func (ind Indentation) NumSpaces() int { return ind.spaces }

func (ind Indentation) String() string {
	if ind.kind == indentTab {
		return "\t"
	}
	return strings.Repeat(" ", ind.spaces)
}

// Value is a single array element: either a Byte or an Expr.
type Value interface {
	isValue()
}

// Byte is one packed byte of glyph data.
type Byte uint8

// Expr is a textual expression, like a look-up table offset.
type Expr string

func (Byte) isValue() {}
func (Expr) isValue() {}

// ElementType is the declared type of constants and array elements.
type ElementType int

const (
	Uint8 ElementType = iota
	Uint16
	Uint32
)

// ElementFor returns the narrowest unsigned type that can hold v.
func ElementFor(v int) ElementType {
	switch {
	case v <= 0xff:
		return Uint8
	case v <= 0xffff:
		return Uint16
	default:
		return Uint32
	}
}

func (t ElementType) cName() string {
	switch t {
	case Uint8:
		return "unsigned char"
	case Uint16:
		return "uint16_t"
	default:
		return "uint32_t"
	}
}

func (t ElementType) stdintName() string {
	switch t {
	case Uint8:
		return "uint8_t"
	case Uint16:
		return "uint16_t"
	default:
		return "uint32_t"
	}
}
