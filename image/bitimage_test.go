package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	escpos "github.com/fabienbellanger/escpos-go"
)

func uniform(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewBitImageOption(t *testing.T) {
	_, err := NewBitImageOption(512, 512, SizeNormal)
	assert.NoError(t, err)

	_, err = NewBitImageOption(0, 0, SizeNormal)
	assert.NoError(t, err)

	_, err = NewBitImageOption(100, 512, SizeNormal)
	assert.Error(t, err)

	_, err = NewBitImageOption(512, 100, SizeNormal)
	assert.Error(t, err)
}

func TestBitImageResize(t *testing.T) {
	option, err := NewBitImageOption(8, 8, SizeNormal)
	require.NoError(t, err)

	b := NewBitImage(uniform(16, 16, color.White), option)
	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 8, b.Height())

	// Images within bounds are kept as-is.
	b = NewBitImage(uniform(4, 4, color.White), option)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 4, b.Height())
}

func TestRasterWhiteAndTransparent(t *testing.T) {
	b := NewBitImage(uniform(16, 4, color.White), DefaultBitImageOption())
	assert.Equal(t, make([]byte, 2*4), b.Raster())

	b = NewBitImage(uniform(16, 4, color.RGBA{}), DefaultBitImageOption())
	assert.Equal(t, make([]byte, 2*4), b.Raster())
}

func TestRasterBlack(t *testing.T) {
	b := NewBitImage(uniform(8, 2, color.Black), DefaultBitImageOption())
	assert.Equal(t, []byte{0xFF, 0xFF}, b.Raster())
}

func TestRasterPadsPartialBytes(t *testing.T) {
	b := NewBitImage(uniform(10, 1, color.Black), DefaultBitImageOption())
	assert.Equal(t, 2, b.WidthBytes())
	assert.Equal(t, []byte{0xFF, 0xC0}, b.Raster())
}

func TestCommand(t *testing.T) {
	b := NewBitImage(uniform(8, 2, color.Black), DefaultBitImageOption())
	cmd, err := b.Command()
	require.NoError(t, err)
	assert.Equal(t, escpos.Command{29, 118, 48, 0, 1, 0, 2, 0, 0xFF, 0xFF}, cmd)

	option, err := NewBitImageOption(0, 0, SizeDoubleWidthAndHeight)
	require.NoError(t, err)
	b = NewBitImage(uniform(8, 1, color.White), option)
	cmd, err = b.Command()
	require.NoError(t, err)
	assert.Equal(t, escpos.Command{29, 118, 48, 3, 1, 0, 1, 0, 0}, cmd)
}

func TestGraphicsCommands(t *testing.T) {
	b := NewBitImage(uniform(8, 2, color.Black), DefaultBitImageOption())
	commands, err := b.GraphicsCommands()
	require.NoError(t, err)
	require.Len(t, commands, 2)

	assert.Equal(t, escpos.Command{
		29, 56, 76,
		12, 0, 0, 0,
		0x30, 0x70, 0x30, 1, 1, 0x31,
		8, 0, 2, 0,
		0xFF, 0xFF,
	}, commands[0])
	assert.Equal(t, escpos.Command{29, 40, 76, 2, 0, 0x30, 0x32}, commands[1])
}
