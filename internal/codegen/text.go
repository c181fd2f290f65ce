package codegen

import (
	"fmt"
	"strings"
	"time"
)

// firstCodePoint is the character of the glyph with index 0 (a space).
const firstCodePoint = 32

const bytesPerCharName = "bytes_per_char"

const timestampLayout = "02-01-2006 15:04:05"

// CommentForGlyph describes the character of the index-th glyph,
// like "Character 0x41 (65: 'A')".
func CommentForGlyph(index int) string {
	cp := index + firstCodePoint
	var sb strings.Builder
	fmt.Fprintf(&sb, "Character 0x%02x (%d", cp, cp)
	if isPrint(cp) {
		fmt.Fprintf(&sb, ": '%c'", rune(cp))
	}
	sb.WriteByte(')')
	return sb.String()
}

// LUTValueForGlyph is an offset expression for the index-th look-up table entry.
func LUTValueForGlyph(index int) string {
	if index == 0 {
		return "0"
	}
	return fmt.Sprintf("%s * %d", bytesPerCharName, index)
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// isPrint follows the C locale: only printable ASCII counts.
func isPrint(cp int) bool {
	return cp >= 0x20 && cp < 0x7f
}
