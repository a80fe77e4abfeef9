package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

// MaxiCodeMode selects the MaxiCode encoding mode (wire values 50-54 for
// modes 2-6).
type MaxiCodeMode byte

const (
	MaxiCodeMode2 MaxiCodeMode = iota + 50
	MaxiCodeMode3
	MaxiCodeMode4
	MaxiCodeMode5
	MaxiCodeMode6
)

// MaxiCodeMode returns the mode selection command.
func (p Protocol) MaxiCodeMode(mode MaxiCodeMode) (escpos.Command, error) {
	if mode < MaxiCodeMode2 || mode > MaxiCodeMode6 {
		return nil, escpos.Inputf("invalid MaxiCode mode (2 - 6): %d", mode)
	}
	return append(gs2D.Clone(), 3, 0, symbolMaxiCode, 65, byte(mode)), nil
}

// MaxiCodeData returns the symbol storage command for the payload.
func (p Protocol) MaxiCodeData(data string) (escpos.Command, error) {
	lo, hi, err := escpos.FrameLength2(len(data), 3)
	if err != nil {
		return nil, err
	}
	cmd := append(gs2D.Clone(), lo, hi, symbolMaxiCode, symbolFnStore, symbolFnArg)
	return append(cmd, data...), nil
}

// MaxiCodePrint returns the print-symbol-data command.
func (p Protocol) MaxiCodePrint() escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolMaxiCode, symbolFnPrint, symbolFnArg)
}

// MaxiCode returns the ordered command sequence printing the symbol:
// mode, data, then print.
func (p Protocol) MaxiCode(data string, mode MaxiCodeMode) ([]escpos.Command, error) {
	modeCmd, err := p.MaxiCodeMode(mode)
	if err != nil {
		return nil, err
	}
	dataCmd, err := p.MaxiCodeData(data)
	if err != nil {
		return nil, err
	}
	return []escpos.Command{modeCmd, dataCmd, p.MaxiCodePrint()}, nil
}
