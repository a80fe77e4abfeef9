package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	escpos "github.com/fabienbellanger/escpos-go"
)

func TestEncodeTruncatesRawBytes(t *testing.T) {
	var e Encoder

	got, err := e.Encode("hello", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	got, err = e.Encode("hello", 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("hel"), got)

	// Byte truncation may split a multi-byte character.
	got, err = e.Encode("héllo", 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{'h', 0xC3}, got)
}

func TestEncodeInvalidInput(t *testing.T) {
	var e Encoder

	got, err := e.Encode("a\xffb", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("a?b"), got)

	e.Strict = true
	_, err = e.Encode("a\xffb", 0)
	var inputErr *escpos.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestEncodeWithPageCode(t *testing.T) {
	var e Encoder

	tests := []struct {
		name   string
		text   string
		pc     PageCode
		maxLen int
		want   []byte
	}{
		{
			name: "mapped character costs one byte",
			text: "café",
			pc:   PC858,
			want: []byte{'c', 'a', 'f', 0x82},
		},
		{
			name: "cyrillic through pc866",
			text: "Чек",
			pc:   PC866,
			want: []byte{0x97, 0xA5, 0xAA},
		},
		{
			name: "unmapped character falls back to generic bytes",
			text: "a€b",
			pc:   PC437,
			want: []byte{'a', 0xE2, 0x82, 0xAC, 'b'},
		},
		{
			name:   "budget stops before a whole character",
			text:   "ééé",
			pc:     PC858,
			maxLen: 2,
			want:   []byte{0x82, 0x82},
		},
		{
			name:   "fallback character never split",
			text:   "a€b",
			pc:     PC437,
			maxLen: 3,
			want:   []byte{'a'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EncodeWithPageCode(tt.text, tt.pc, tt.maxLen)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeWithPageCodeNoTable(t *testing.T) {
	var e Encoder
	_, err := e.EncodeWithPageCode("text", Katakana, 0)
	var inputErr *escpos.InputError
	assert.ErrorAs(t, err, &inputErr)
}
