package image

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

// The GS 8 L store function accepts at most this many raster lines per
// block; taller images are split into consecutive blocks.
const graphicsMaxLines = 831

// Fixed store-graphics header arguments: monochrome tone, 1x1 scale,
// colour 1.
var graphicsHeader = []byte{0x30, 0x70, 0x30, 0x01, 0x01, 0x31}

// GraphicsCommands returns the GS 8 L frame sequence printing the image:
// one store command per block of at most graphicsMaxLines lines, each
// followed by a print command. Used for images too tall for a single
// GS v 0 frame.
func (b *BitImage) GraphicsCommands() ([]escpos.Command, error) {
	width := b.Width()
	height := b.Height()
	widthBytes := b.WidthBytes()
	raster := b.Raster()

	xb, err := escpos.IntLowHigh(width, 2)
	if err != nil {
		return nil, err
	}

	var commands []escpos.Command
	for line := 0; line < height; {
		lines := graphicsMaxLines
		if lines > height-line {
			lines = height - line
		}
		block := raster[line*widthBytes : (line+lines)*widthBytes]

		// The device counts the header arguments and the dot counts in
		// the block length.
		length, err := escpos.FrameLength4(len(block), 10)
		if err != nil {
			return nil, err
		}
		yb, err := escpos.IntLowHigh(lines, 2)
		if err != nil {
			return nil, err
		}

		store := escpos.Command{0x1D, '8', 'L'}
		store = append(store, length...)
		store = append(store, graphicsHeader...)
		store = append(store, xb...)
		store = append(store, yb...)
		store = append(store, block...)

		commands = append(commands,
			store,
			escpos.Command{0x1D, '(', 'L', 0x02, 0x00, 0x30, 0x32},
		)
		line += lines
	}

	return commands, nil
}
