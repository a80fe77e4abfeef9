package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntLowHighRoundTrip(t *testing.T) {
	for n := 0; n <= 0xFFFF; n++ {
		b, err := IntLowHigh(n, 2)
		require.NoError(t, err)
		require.Equal(t, n, RecomposeLowHigh(b))
	}
}

func TestIntLowHigh(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		parts   int
		want    []byte
		wantErr bool
	}{
		{name: "zero", n: 0, parts: 2, want: []byte{0, 0}},
		{name: "one byte value", n: 42, parts: 2, want: []byte{42, 0}},
		{name: "split", n: 259, parts: 2, want: []byte{3, 1}},
		{name: "max 2 bytes", n: 0xFFFF, parts: 2, want: []byte{255, 255}},
		{name: "overflow 2 bytes", n: 0x10000, parts: 2, wantErr: true},
		{name: "4 bytes", n: 0x01020304, parts: 4, want: []byte{4, 3, 2, 1}},
		{name: "max 4 bytes", n: 0xFFFFFFFF, parts: 4, want: []byte{255, 255, 255, 255}},
		{name: "overflow 4 bytes", n: 0x100000000, parts: 4, wantErr: true},
		{name: "negative", n: -1, parts: 2, wantErr: true},
		{name: "zero parts", n: 1, parts: 0, wantErr: true},
		{name: "too many parts", n: 1, parts: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntLowHigh(tt.n, tt.parts)
			if tt.wantErr {
				assert.Error(t, err)
				var inputErr *InputError
				assert.ErrorAs(t, err, &inputErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrameLength2(t *testing.T) {
	// "test data qrcode" is 16 bytes, plus the 3 header bytes the device
	// counts.
	lo, hi, err := FrameLength2(16, 3)
	require.NoError(t, err)
	assert.Equal(t, byte(19), lo)
	assert.Equal(t, byte(0), hi)

	lo, hi, err = FrameLength2(509, 3)
	require.NoError(t, err)
	assert.Equal(t, byte(0), lo)
	assert.Equal(t, byte(2), hi)

	_, _, err = FrameLength2(0xFFFF, 3)
	assert.Error(t, err)
}

func TestFrameLength4(t *testing.T) {
	b, err := FrameLength4(1024, 10)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x04, 0x00, 0x00}, b)

	_, err = FrameLength4(0xFFFFFFFF, 1)
	assert.Error(t, err)
}
