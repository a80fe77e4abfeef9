package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

// AztecMode describes the symbol form (full-range or compact) and its
// number of data layers. 0 layers means automatic.
type AztecMode struct {
	compact bool
	layers  byte
}

// AztecFullRange returns a full-range mode. Layers must be 0 or in 4..32.
func AztecFullRange(layers byte) (AztecMode, error) {
	if layers != 0 && (layers < 4 || layers > 32) {
		return AztecMode{}, escpos.Inputf("invalid Aztec code full-range number of data layers (0, 4 - 32): %d", layers)
	}
	return AztecMode{layers: layers}, nil
}

// AztecCompact returns a compact mode. Layers must be in 0..4.
func AztecCompact(layers byte) (AztecMode, error) {
	if layers > 4 {
		return AztecMode{}, escpos.Inputf("invalid Aztec code compact number of data layers (0 - 4): %d", layers)
	}
	return AztecMode{compact: true, layers: layers}, nil
}

// AztecOption groups the parameters of a printed Aztec symbol.
type AztecOption struct {
	Mode            AztecMode
	Size            byte
	CorrectionLevel byte
}

// NewAztecOption validates and builds an AztecOption. The module size
// must be in 2..16 and the correction level in 5..95.
func NewAztecOption(mode AztecMode, size, correctionLevel byte) (AztecOption, error) {
	if size < 2 || size > 16 {
		return AztecOption{}, escpos.Inputf("invalid Aztec size (2 - 16): %d", size)
	}
	if correctionLevel < 5 || correctionLevel > 95 {
		return AztecOption{}, escpos.Inputf("invalid Aztec error correction level (5 - 95): %d", correctionLevel)
	}
	return AztecOption{Mode: mode, Size: size, CorrectionLevel: correctionLevel}, nil
}

// DefaultAztecOption returns the options used when the caller does not
// specify any: automatic full-range mode, module size 3, correction
// level 23.
func DefaultAztecOption() AztecOption {
	return AztecOption{Size: 3, CorrectionLevel: 23}
}

// AztecMode returns the symbol form command.
func (p Protocol) AztecMode(mode AztecMode) escpos.Command {
	form := byte(0)
	if mode.compact {
		form = 1
	}
	return append(gs2D.Clone(), 4, 0, symbolAztec, 66, form, mode.layers)
}

// AztecSize returns the module size command.
func (p Protocol) AztecSize(size byte) (escpos.Command, error) {
	if size < 2 || size > 16 {
		return nil, escpos.Inputf("invalid Aztec size (2 - 16): %d", size)
	}
	return append(gs2D.Clone(), 3, 0, symbolAztec, 67, size), nil
}

// AztecCorrectionLevel returns the error correction command.
func (p Protocol) AztecCorrectionLevel(level byte) (escpos.Command, error) {
	if level < 5 || level > 95 {
		return nil, escpos.Inputf("invalid Aztec error correction level (5 - 95): %d", level)
	}
	return append(gs2D.Clone(), 3, 0, symbolAztec, 69, level), nil
}

// AztecData returns the symbol storage command for the payload.
func (p Protocol) AztecData(data string) (escpos.Command, error) {
	lo, hi, err := escpos.FrameLength2(len(data), 3)
	if err != nil {
		return nil, err
	}
	cmd := append(gs2D.Clone(), lo, hi, symbolAztec, symbolFnStore, symbolFnArg)
	return append(cmd, data...), nil
}

// AztecPrint returns the print-symbol-data command.
func (p Protocol) AztecPrint() escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolAztec, symbolFnPrint, symbolFnArg)
}

// Aztec returns the ordered command sequence printing the symbol: mode,
// size, correction level, data, then print.
func (p Protocol) Aztec(data string, option AztecOption) ([]escpos.Command, error) {
	size, err := p.AztecSize(option.Size)
	if err != nil {
		return nil, err
	}
	level, err := p.AztecCorrectionLevel(option.CorrectionLevel)
	if err != nil {
		return nil, err
	}
	dataCmd, err := p.AztecData(data)
	if err != nil {
		return nil, err
	}
	return []escpos.Command{
		p.AztecMode(option.Mode),
		size,
		level,
		dataCmd,
		p.AztecPrint(),
	}, nil
}
