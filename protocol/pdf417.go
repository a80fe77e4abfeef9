package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

// Pdf417Type selects the standard or truncated symbol variant.
type Pdf417Type byte

const (
	Pdf417Standard Pdf417Type = iota
	Pdf417Truncated
)

// Pdf417Correction is the error correction setting, either a fixed level
// or a ratio. Build it with Pdf417CorrectionLevel or
// Pdf417CorrectionRatio.
type Pdf417Correction struct {
	mode  byte
	value byte
}

// Pdf417CorrectionLevel returns a fixed correction level setting (0-8).
func Pdf417CorrectionLevel(level byte) (Pdf417Correction, error) {
	if level > 8 {
		return Pdf417Correction{}, escpos.Inputf("invalid PDF417 correction level (0 - 8): %d", level)
	}
	return Pdf417Correction{mode: 48, value: 48 + level}, nil
}

// Pdf417CorrectionRatio returns a ratio correction setting (1-40).
func Pdf417CorrectionRatio(ratio byte) (Pdf417Correction, error) {
	if ratio < 1 || ratio > 40 {
		return Pdf417Correction{}, escpos.Inputf("invalid PDF417 correction ratio (1 - 40): %d", ratio)
	}
	return Pdf417Correction{mode: 49, value: ratio}, nil
}

// Pdf417Option groups the parameters of a printed PDF417 symbol.
type Pdf417Option struct {
	Columns    byte
	Rows       byte
	Width      byte
	RowHeight  byte
	Type       Pdf417Type
	Correction Pdf417Correction
}

// DefaultPdf417Option returns the options used when the caller does not
// specify any: automatic columns and rows, correction ratio 1.
func DefaultPdf417Option() Pdf417Option {
	return Pdf417Option{
		Columns:    0,
		Rows:       0,
		Width:      3,
		RowHeight:  3,
		Type:       Pdf417Standard,
		Correction: Pdf417Correction{mode: 49, value: 1},
	}
}

// Pdf417Columns returns the column count command (0-30, 0 = automatic).
func (p Protocol) Pdf417Columns(columns byte) (escpos.Command, error) {
	if columns > 30 {
		return nil, escpos.Inputf("invalid PDF417 number of columns (0 - 30): %d", columns)
	}
	return append(gs2D.Clone(), 3, 0, symbolPdf417, 65, columns), nil
}

// Pdf417Rows returns the row count command (0 = automatic, or 3-90).
func (p Protocol) Pdf417Rows(rows byte) (escpos.Command, error) {
	if rows != 0 && (rows < 3 || rows > 90) {
		return nil, escpos.Inputf("invalid PDF417 number of rows (0, 3 - 90): %d", rows)
	}
	return append(gs2D.Clone(), 3, 0, symbolPdf417, 66, rows), nil
}

// Pdf417Width returns the module width command.
func (p Protocol) Pdf417Width(width byte) escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolPdf417, 67, width)
}

// Pdf417RowHeight returns the row height command.
func (p Protocol) Pdf417RowHeight(height byte) escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolPdf417, 68, height)
}

// Pdf417CorrectionLevel returns the error correction command.
func (p Protocol) Pdf417CorrectionLevel(correction Pdf417Correction) escpos.Command {
	return append(gs2D.Clone(), 4, 0, symbolPdf417, 69, correction.mode, correction.value)
}

// Pdf417Type returns the symbol variant command.
func (p Protocol) Pdf417Type(codeType Pdf417Type) escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolPdf417, 70, byte(codeType))
}

// Pdf417Data returns the symbol storage command for the payload.
func (p Protocol) Pdf417Data(data string) (escpos.Command, error) {
	lo, hi, err := escpos.FrameLength2(len(data), 3)
	if err != nil {
		return nil, err
	}
	cmd := append(gs2D.Clone(), lo, hi, symbolPdf417, symbolFnStore, symbolFnArg)
	return append(cmd, data...), nil
}

// Pdf417Print returns the print-symbol-data command.
func (p Protocol) Pdf417Print() escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolPdf417, symbolFnPrint, symbolFnArg)
}

// Pdf417 returns the ordered command sequence printing the symbol:
// columns, rows, width, row height, correction, type, data, then print.
func (p Protocol) Pdf417(data string, option Pdf417Option) ([]escpos.Command, error) {
	columns, err := p.Pdf417Columns(option.Columns)
	if err != nil {
		return nil, err
	}
	rows, err := p.Pdf417Rows(option.Rows)
	if err != nil {
		return nil, err
	}
	dataCmd, err := p.Pdf417Data(data)
	if err != nil {
		return nil, err
	}

	return []escpos.Command{
		columns,
		rows,
		p.Pdf417Width(option.Width),
		p.Pdf417RowHeight(option.RowHeight),
		p.Pdf417CorrectionLevel(option.Correction),
		p.Pdf417Type(option.Type),
		dataCmd,
		p.Pdf417Print(),
	}, nil
}
