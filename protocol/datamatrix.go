package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

// DataMatrixType describes the symbol shape: a square with one side
// length, or a rectangle with a fixed (rows, columns) pair. 0 means
// automatic.
type DataMatrixType struct {
	rectangle bool
	d1        byte
	d2        byte
}

var dataMatrixSquareSides = []byte{
	0, 10, 12, 14, 16, 18, 20, 22, 24, 26, 32, 36, 40, 44, 48, 52,
	64, 72, 80, 88, 96, 104, 120, 132, 144,
}

var dataMatrixRectanglePairs = [][2]byte{
	{8, 0}, {8, 18}, {8, 32},
	{12, 0}, {12, 26}, {12, 36},
	{16, 0}, {16, 36}, {16, 48},
}

// DataMatrixSquare returns a square symbol shape. The side must be 0
// (automatic) or one of the legal DataMatrix side lengths.
func DataMatrixSquare(side byte) (DataMatrixType, error) {
	for _, v := range dataMatrixSquareSides {
		if side == v {
			return DataMatrixType{d1: side, d2: side}, nil
		}
	}
	return DataMatrixType{}, escpos.Inputf("invalid DataMatrix number of rows and columns: %d", side)
}

// DataMatrixRectangle returns a rectangular symbol shape. The pair must
// be one of the legal DataMatrix (rows, columns) combinations.
func DataMatrixRectangle(d1, d2 byte) (DataMatrixType, error) {
	for _, v := range dataMatrixRectanglePairs {
		if d1 == v[0] && d2 == v[1] {
			return DataMatrixType{rectangle: true, d1: d1, d2: d2}, nil
		}
	}
	return DataMatrixType{}, escpos.Inputf("invalid DataMatrix number of rows and columns: (%d, %d)", d1, d2)
}

// DataMatrixOption groups the parameters of a printed DataMatrix symbol.
type DataMatrixOption struct {
	Type DataMatrixType
	Size byte
}

// NewDataMatrixOption validates and builds a DataMatrixOption. The module
// size must be in 2..16.
func NewDataMatrixOption(codeType DataMatrixType, size byte) (DataMatrixOption, error) {
	if size < 2 || size > 16 {
		return DataMatrixOption{}, escpos.Inputf("invalid DataMatrix size (2 - 16): %d", size)
	}
	return DataMatrixOption{Type: codeType, Size: size}, nil
}

// DefaultDataMatrixOption returns the options used when the caller does
// not specify any: automatic square shape, module size 3.
func DefaultDataMatrixOption() DataMatrixOption {
	return DataMatrixOption{Size: 3}
}

// DataMatrixType returns the symbol shape command.
func (p Protocol) DataMatrixType(codeType DataMatrixType) escpos.Command {
	form := byte(0)
	if codeType.rectangle {
		form = 1
	}
	return append(gs2D.Clone(), 5, 0, symbolDataMatrix, 66, form, codeType.d1, codeType.d2)
}

// DataMatrixSize returns the module size command.
func (p Protocol) DataMatrixSize(size byte) (escpos.Command, error) {
	if size < 2 || size > 16 {
		return nil, escpos.Inputf("invalid DataMatrix size (2 - 16): %d", size)
	}
	return append(gs2D.Clone(), 3, 0, symbolDataMatrix, 67, size), nil
}

// DataMatrixData returns the symbol storage command for the payload.
func (p Protocol) DataMatrixData(data string) (escpos.Command, error) {
	lo, hi, err := escpos.FrameLength2(len(data), 3)
	if err != nil {
		return nil, err
	}
	cmd := append(gs2D.Clone(), lo, hi, symbolDataMatrix, symbolFnStore, symbolFnArg)
	return append(cmd, data...), nil
}

// DataMatrixPrint returns the print-symbol-data command.
func (p Protocol) DataMatrixPrint() escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolDataMatrix, symbolFnPrint, symbolFnArg)
}

// DataMatrix returns the ordered command sequence printing the symbol:
// shape, size, data, then print.
func (p Protocol) DataMatrix(data string, option DataMatrixOption) ([]escpos.Command, error) {
	size, err := p.DataMatrixSize(option.Size)
	if err != nil {
		return nil, err
	}
	dataCmd, err := p.DataMatrixData(data)
	if err != nil {
		return nil, err
	}
	return []escpos.Command{
		p.DataMatrixType(option.Type),
		size,
		dataCmd,
		p.DataMatrixPrint(),
	}, nil
}
