package codegen

import (
	"fmt"
	"strings"

	"github.com/quasilyte/fontbytes/internal/sourcecode"
)

// BitNumbering selects which bit of a packed byte holds the leftmost pixel.
type BitNumbering int

const (
	// LSB packs the leftmost pixel of a row into bit 0.
	LSB BitNumbering = iota

	// MSB packs the leftmost pixel of a row into bit 7.
	MSB
)

func (b BitNumbering) String() string {
	switch b {
	case LSB:
		return "LSB"
	case MSB:
		return "MSB"
	default:
		return "?"
	}
}

func ParseBitNumbering(s string) (BitNumbering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lsb", "":
		return LSB, nil
	case "msb":
		return MSB, nil
	default:
		return LSB, fmt.Errorf("unsupported bit numbering: %q", s)
	}
}

type Options struct {
	BitNumbering BitNumbering

	// InvertBits negates every pixel before packing.
	InvertBits bool

	// IncludeLineSpacing separates glyph blocks with blank lines.
	IncludeLineSpacing bool

	// Indentation of array rows.
	// A nil value selects the output format default.
	Indentation *sourcecode.Indentation
}

func (o Options) indentation(f sourcecode.Format) sourcecode.Indentation {
	if o.Indentation != nil {
		return *o.Indentation
	}
	return f.DefaultIndentation()
}

func (o Options) clone() Options {
	if o.Indentation != nil {
		ind := *o.Indentation
		o.Indentation = &ind
	}
	return o
}
