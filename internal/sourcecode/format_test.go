package sourcecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"c", FormatC},
		{"arduino", FormatArduino},
		{"python_list", FormatPythonList},
		{"python-list", FormatPythonList},
		{" Python-Bytes ", FormatPythonBytes},
	}
	for _, test := range tests {
		f, err := ParseFormat(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, f, test.in)
	}

	_, err := ParseFormat("rust")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatDisplayNames(t *testing.T) {
	var names []string
	for _, f := range Formats() {
		names = append(names, f.DisplayName())
	}
	assert.Equal(t, []string{"C/C++", "Arduino", "Python List", "Python Bytes"}, names)
}

func TestIndentationEquality(t *testing.T) {
	assert.Equal(t, Tab(), Tab())
	assert.True(t, Spaces(4) == Spaces(4))
	assert.False(t, Spaces(4) == Spaces(2))
	assert.False(t, Tab() == Spaces(0))
	assert.Equal(t, "\t", Tab().String())
	assert.Equal(t, "   ", Spaces(3).String())
}

func TestElementFor(t *testing.T) {
	assert.Equal(t, Uint8, ElementFor(0))
	assert.Equal(t, Uint8, ElementFor(255))
	assert.Equal(t, Uint16, ElementFor(256))
	assert.Equal(t, Uint16, ElementFor(65535))
	assert.Equal(t, Uint32, ElementFor(65536))
}
