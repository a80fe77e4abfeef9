package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

const gs1ExpandedStackedValidChars = "0123456789ABCD !\"%$'()*+,-./:;<=>?_{"

// GS1DataBar2DType selects the stacked DataBar variant (wire values are
// the function type bytes of the data frame).
type GS1DataBar2DType byte

const (
	GS1DataBar2DStacked                GS1DataBar2DType = 72
	GS1DataBar2DStackedOmnidirectional GS1DataBar2DType = 73
	GS1DataBar2DExpandedStacked        GS1DataBar2DType = 76
)

func (t GS1DataBar2DType) String() string {
	switch t {
	case GS1DataBar2DStackedOmnidirectional:
		return "GS1 DataBar Stacked Omnidirectional"
	case GS1DataBar2DExpandedStacked:
		return "GS1 DataBar Expanded Stacked"
	default:
		return "GS1 DataBar Stacked"
	}
}

// GS1DataBar2DWidth is the named module width. The wire ordinals are not
// monotonic: S, M, L map to 2, 1, 4.
type GS1DataBar2DWidth byte

const (
	GS1DataBar2DWidthS GS1DataBar2DWidth = 2
	GS1DataBar2DWidthM GS1DataBar2DWidth = 1
	GS1DataBar2DWidthL GS1DataBar2DWidth = 4
)

// GS1DataBar2DOption groups the parameters of a printed DataBar symbol.
type GS1DataBar2DOption struct {
	Width GS1DataBar2DWidth
	Type  GS1DataBar2DType
}

// DefaultGS1DataBar2DOption returns the options used when the caller does
// not specify any.
func DefaultGS1DataBar2DOption() GS1DataBar2DOption {
	return GS1DataBar2DOption{Width: GS1DataBar2DWidthM, Type: GS1DataBar2DStacked}
}

// ValidateGS1DataBar2D checks a payload against its variant rules.
// Stacked variants require exactly 13 digits; Expanded Stacked accepts up
// to 255 characters from its restricted alphabet.
func ValidateGS1DataBar2D(data string, codeType GS1DataBar2DType) error {
	switch codeType {
	case GS1DataBar2DStacked, GS1DataBar2DStackedOmnidirectional:
		if allDigits(data) && len(data) == 13 {
			return nil
		}
		return escpos.Inputf("invalid %s data: %s", codeType, data)
	case GS1DataBar2DExpandedStacked:
		if len(data) < 256 && allIn(data, gs1ExpandedStackedValidChars) {
			return nil
		}
		return escpos.Inputf("invalid %s data: %s", codeType, data)
	default:
		return escpos.Inputf("unknown GS1 DataBar type: %d", codeType)
	}
}

// GS1DataBar2DWidth returns the module width command.
func (p Protocol) GS1DataBar2DWidth(width GS1DataBar2DWidth) escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolGS1DataBar, 67, byte(width))
}

// GS1DataBar2DExpandedWidth returns the expanded maximum width command.
// The device is always given the automatic (0, 0) pair.
func (p Protocol) GS1DataBar2DExpandedWidth() escpos.Command {
	return append(gs2D.Clone(), 4, 0, symbolGS1DataBar, 71, 0, 0)
}

// GS1DataBar2DData returns the symbol storage command for an already
// validated payload.
func (p Protocol) GS1DataBar2DData(data string, codeType GS1DataBar2DType) (escpos.Command, error) {
	lo, hi, err := escpos.FrameLength2(len(data), 4)
	if err != nil {
		return nil, err
	}
	cmd := append(gs2D.Clone(), lo, hi, symbolGS1DataBar, symbolFnStore, symbolFnArg, byte(codeType))
	return append(cmd, data...), nil
}

// GS1DataBar2DPrint returns the print-symbol-data command.
func (p Protocol) GS1DataBar2DPrint() escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolGS1DataBar, symbolFnPrint, symbolFnArg)
}

// GS1DataBar2D validates the payload and returns the ordered command
// sequence printing it: width, expanded width, data, then print.
func (p Protocol) GS1DataBar2D(data string, option GS1DataBar2DOption) ([]escpos.Command, error) {
	if err := ValidateGS1DataBar2D(data, option.Type); err != nil {
		return nil, err
	}
	dataCmd, err := p.GS1DataBar2DData(data, option.Type)
	if err != nil {
		return nil, err
	}
	return []escpos.Command{
		p.GS1DataBar2DWidth(option.Width),
		p.GS1DataBar2DExpandedWidth(),
		dataCmd,
		p.GS1DataBar2DPrint(),
	}, nil
}
