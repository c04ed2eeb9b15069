package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finnypolicy/internal/encoding"
)

func readAll(t *testing.T, input []byte) (string, string) {
	t.Helper()

	d, err := encoding.Decode(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(d)
	require.NoError(t, err)

	return string(got), d.Charset
}

func TestDecode_UTF8Passthrough(t *testing.T) {
	input := "Categoría,Habilitado\nComidas,sí\nViajes,no\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestDecode_Latin1(t *testing.T) {
	// Windows-1252 "Categoría;Habilitado\n", í = 0xED.
	latin1 := []byte{
		'C', 'a', 't', 'e', 'g', 'o', 'r', 0xED, 'a', ';',
		'H', 'a', 'b', 'i', 'l', 'i', 't', 'a', 'd', 'o', '\n',
	}

	got, charset := readAll(t, latin1)
	assert.Equal(t, "Categoría;Habilitado\n", got)
	assert.NotEqual(t, encoding.UTF8, charset)
}

func TestDecode_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Category,Enabled\n")...)

	got, charset := readAll(t, input)
	assert.Equal(t, "Category,Enabled\n", got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestDecode_UTF16LE(t *testing.T) {
	// BOM followed by "Tag\n" in UTF-16LE.
	input := []byte{0xFF, 0xFE, 'T', 0, 'a', 0, 'g', 0, '\n', 0}

	got, charset := readAll(t, input)
	assert.Equal(t, "Tag\n", got)
	assert.Equal(t, encoding.UTF16LE, charset)
}

func TestDecode_Empty(t *testing.T) {
	got, charset := readAll(t, nil)
	assert.Empty(t, got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestDecode_Binary(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

	_, err := encoding.Decode(bytes.NewReader(png))
	assert.ErrorIs(t, err, encoding.ErrNotText)
}
