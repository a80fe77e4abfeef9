// Package image rasterizes decoded images into the bit image and
// graphics command frames printed by the device.
package image

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"

	escpos "github.com/fabienbellanger/escpos-go"
)

// BitImageSize is the size multiplier of the printed bit image (GS v 0
// mode argument).
type BitImageSize byte

const (
	SizeNormal BitImageSize = iota
	SizeDoubleWidth
	SizeDoubleHeight
	SizeDoubleWidthAndHeight
)

func (s BitImageSize) String() string {
	switch s {
	case SizeDoubleWidth:
		return "double width"
	case SizeDoubleHeight:
		return "double height"
	case SizeDoubleWidthAndHeight:
		return "double width and height"
	default:
		return "normal"
	}
}

// BitImageOption bounds and scales the printed image. A zero bound means
// unbounded.
type BitImageOption struct {
	maxWidth  int
	maxHeight int
	size      BitImageSize
}

// NewBitImageOption validates and builds a BitImageOption. Each non-zero
// bound must be a multiple of 8.
func NewBitImageOption(maxWidth, maxHeight int, size BitImageSize) (BitImageOption, error) {
	if maxWidth < 0 || maxWidth%8 != 0 {
		return BitImageOption{}, escpos.Inputf("bit image max width must be a multiple of 8")
	}
	if maxHeight < 0 || maxHeight%8 != 0 {
		return BitImageOption{}, escpos.Inputf("bit image max height must be a multiple of 8")
	}
	return BitImageOption{maxWidth: maxWidth, maxHeight: maxHeight, size: size}, nil
}

// DefaultBitImageOption bounds the image to 512x512 at normal size.
func DefaultBitImageOption() BitImageOption {
	return BitImageOption{maxWidth: 512, maxHeight: 512, size: SizeNormal}
}

// BitImage is a decoded image prepared for rasterization.
type BitImage struct {
	img    image.Image
	option BitImageOption
}

// NewBitImage resizes the image to the option bounds (nearest-neighbour,
// aspect ratio preserved) and wraps it for rasterization.
func NewBitImage(img image.Image, option BitImageOption) *BitImage {
	size := img.Bounds().Size()

	switch {
	case option.maxWidth > 0 && option.maxHeight == 0 && size.X > option.maxWidth:
		img = resize.Thumbnail(uint(option.maxWidth), uint(option.maxWidth), img, resize.NearestNeighbor)
	case option.maxWidth == 0 && option.maxHeight > 0 && size.Y > option.maxHeight:
		img = resize.Thumbnail(uint(option.maxHeight), uint(option.maxHeight), img, resize.NearestNeighbor)
	case option.maxWidth > 0 && option.maxHeight > 0 &&
		(size.X > option.maxWidth || size.Y > option.maxHeight):
		img = resize.Thumbnail(uint(option.maxWidth), uint(option.maxHeight), img, resize.NearestNeighbor)
	}

	return &BitImage{img: img, option: option}
}

// Width returns the image width in dots.
func (b *BitImage) Width() int {
	return b.img.Bounds().Size().X
}

// Height returns the image height in dots.
func (b *BitImage) Height() int {
	return b.img.Bounds().Size().Y
}

// WidthBytes returns the packed row width in bytes.
func (b *BitImage) WidthBytes() int {
	return (b.Width() + 7) / 8
}

// Size returns the size multiplier.
func (b *BitImage) Size() BitImageSize {
	return b.option.size
}

// Grayscale weights.
const (
	lumR = 55
	lumG = 182
	lumB = 18
)

// ink flattens the pixel over opaque white, converts it to grayscale and
// applies the black threshold.
func ink(c color.Color) bool {
	r, g, b, a := c.RGBA()
	r8, g8, b8, a8 := uint32(r>>8), uint32(g>>8), uint32(b>>8), uint32(a>>8)

	inverse := 255 - a8
	r8 = (r8*a8 + inverse*255) / 255
	g8 = (g8*a8 + inverse*255) / 255
	b8 = (b8*a8 + inverse*255) / 255

	gray := (lumR*r8 + lumG*g8 + lumB*b8) / (lumR + lumG + lumB)
	return gray <= 128
}

// Raster packs the image 8 horizontal pixels per byte, MSB first, left to
// right and top to bottom. Rows whose width is not a multiple of 8 are
// zero-padded on the right.
func (b *BitImage) Raster() []byte {
	width := b.Width()
	height := b.Height()
	widthBytes := b.WidthBytes()
	min := b.img.Bounds().Min

	data := make([]byte, widthBytes*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ink(b.img.At(min.X+x, min.Y+y)) {
				data[y*widthBytes+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return data
}

// Command returns the GS v 0 bit image frame: prefix, size multiplier,
// width in bytes and height as little-endian pairs, then the packed
// raster.
func (b *BitImage) Command() (escpos.Command, error) {
	xb, err := escpos.IntLowHigh(b.WidthBytes(), 2)
	if err != nil {
		return nil, err
	}
	yb, err := escpos.IntLowHigh(b.Height(), 2)
	if err != nil {
		return nil, err
	}

	cmd := escpos.Command{0x1D, 'v', '0', byte(b.option.size)}
	cmd = append(cmd, xb...)
	cmd = append(cmd, yb...)
	return append(cmd, b.Raster()...), nil
}
