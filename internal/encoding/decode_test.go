package encoding_test

import (
	"bytes"
	"io"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mydays/internal/encoding"
)

func decodeAll(t *testing.T, input []byte) (string, encoding.Charset) {
	t.Helper()

	r, cs, err := encoding.Decode(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got), cs
}

func TestDecode(t *testing.T) {
	type testCase struct {
		name    string
		input   []byte
		want    string
		charset encoding.Charset
	}

	tests := []testCase{
		{
			name:    "UTF8Passthrough",
			input:   []byte("data;notas\n2024-01-10;Limpeza da cozinha\n"),
			want:    "data;notas\n2024-01-10;Limpeza da cozinha\n",
			charset: encoding.UTF8,
		},
		{
			name:    "UTF8BOMStripped",
			input:   append([]byte{0xEF, 0xBB, 0xBF}, []byte("data;notas\n")...),
			want:    "data;notas\n",
			charset: encoding.UTF8,
		},
		{
			name: "UTF16LE",
			// "dia\n" with a little-endian BOM.
			input:   []byte{0xFF, 0xFE, 'd', 0, 'i', 0, 'a', 0, '\n', 0},
			want:    "dia\n",
			charset: encoding.UTF16LE,
		},
		{
			name: "Windows1252",
			// "Descrição;Notas\n" where ç = 0xE7 and ã = 0xE3.
			input: []byte{
				'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', ';',
				'N', 'o', 't', 'a', 's', '\n',
			},
			want: "Descrição;Notas\n",
		},
		{
			name:    "Empty",
			input:   nil,
			want:    "",
			charset: encoding.UTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cs := decodeAll(t, tt.input)
			assert.Equal(t, tt.want, got)

			if tt.charset != "" {
				assert.Equal(t, tt.charset, cs)
			}
		})
	}
}

func TestDecode_LargerThanSample(t *testing.T) {
	line := "2024-01-10;true;;nota\n"
	input := bytes.Repeat([]byte(line), 1000)

	got, cs := decodeAll(t, input)
	assert.Equal(t, encoding.UTF8, cs)
	assert.Equal(t, string(input), got)
}

func TestDecode_MultiByteRuneOnSampleBoundary(t *testing.T) {
	// 4095 ASCII bytes then "ç" (0xC3 0xA7) straddling the sample edge.
	input := append(bytes.Repeat([]byte("a"), 4095), []byte("ção\n")...)

	got, cs := decodeAll(t, input)
	assert.Equal(t, encoding.UTF8, cs)
	assert.Equal(t, string(input), got)
}

func TestSniff_FallsBackToWindows1252(t *testing.T) {
	assert.NotEqual(t, encoding.UTF8, encoding.Sniff([]byte{'c', 'a', 'f', 0xE9}))
}

func TestDecode_InvalidUTF8IsTranscoded(t *testing.T) {
	got, cs := decodeAll(t, []byte("caf\xe9"))

	assert.NotEqual(t, encoding.UTF8, cs)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "café", got)
}
