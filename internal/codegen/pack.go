package codegen

// BytesPerRow is a number of bytes needed to pack width pixels.
func BytesPerRow(width int) int {
	return (width + 7) / 8
}

// PackRow packs a pixel row into BytesPerRow(len(row)) bytes.
// Padding bits of the last byte are zero regardless of invert.
func PackRow(row []bool, numbering BitNumbering, invert bool) []byte {
	data := make([]byte, BytesPerRow(len(row)))
	for x, set := range row {
		if set == invert {
			continue
		}
		data[x/8] |= 1 << bitShift(x%8, numbering)
	}
	return data
}

// UnpackRow is the inverse of PackRow.
func UnpackRow(data []byte, width int, numbering BitNumbering, invert bool) []bool {
	row := make([]bool, width)
	for x := range row {
		bit := data[x/8]&(1<<bitShift(x%8, numbering)) != 0
		row[x] = bit != invert
	}
	return row
}

func bitShift(pos int, numbering BitNumbering) int {
	if numbering == MSB {
		return 7 - pos
	}
	return pos
}
