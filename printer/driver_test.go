package printer

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	escpos "github.com/fabienbellanger/escpos-go"
)

func TestConsoleDriverRaw(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDriver(&buf)

	require.NoError(t, d.Write([]byte{27, 64}))
	assert.Equal(t, []byte{27, 64}, buf.Bytes())

	_, err := d.Read(make([]byte, 1))
	assert.Error(t, err)
}

func TestConsoleDriverHexDump(t *testing.T) {
	var buf bytes.Buffer
	d := NewHexConsoleDriver(&buf)

	require.NoError(t, d.Write([]byte{0x1B, 0x40}))
	assert.Contains(t, buf.String(), "1b 40")
}

func TestRWDriver(t *testing.T) {
	var buf bytes.Buffer
	d := NewRWDriver("hid", &buf)

	assert.Equal(t, "hid", d.Name())
	require.NoError(t, d.Write([]byte("abc")))
	require.NoError(t, d.Flush())

	p := make([]byte, 3)
	n, err := d.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), p)

	// A plain buffer has no Close; closing is a no-op.
	require.NoError(t, d.Close())
}

func TestTransportErrWrapping(t *testing.T) {
	sentinel := errors.New("broken pipe")
	err := transportErr("network", sentinel)

	var transport *escpos.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, "network", transport.Driver)
	assert.ErrorIs(t, err, sentinel)

	assert.NoError(t, transportErr("network", nil))
}

type failingReadWriter struct{}

func (failingReadWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }
func (failingReadWriter) Read(p []byte) (int, error)  { return 0, io.ErrClosedPipe }

func TestRWDriverPropagatesErrors(t *testing.T) {
	d := NewRWDriver("hid", failingReadWriter{})

	err := d.Write([]byte("x"))
	var transport *escpos.TransportError
	require.ErrorAs(t, err, &transport)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
