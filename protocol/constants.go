// Package protocol builds the byte-exact command frames understood by
// ESC/POS printers and decodes their real-time status responses.
package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

// Control bytes.
const (
	NUL byte = 0x00
	LF  byte = 0x0A
	CR  byte = 0x0D
	DLE byte = 0x10
	CAN byte = 0x18
	EOT byte = 0x04
	ESC byte = 0x1B
	GS  byte = 0x1D
)

// Hardware.
var (
	escHardwareInit  = escpos.Command{ESC, '@'}
	escHardwareReset = escpos.Command{ESC, '?', LF, 0}
)

// Cash drawer.
var (
	escCashDrawerPin2 = escpos.Command{ESC, 'p', 0}
	escCashDrawerPin5 = escpos.Command{ESC, 'p', 1}
)

// Paper.
var (
	gsPaperCutFull    = escpos.Command{GS, 'V', 'A', 0}
	gsPaperCutPartial = escpos.Command{GS, 'V', 'A', 1}
	escPaperFeed      = escpos.Command{ESC, 'd'}
)

// Character tables.
var (
	escCharacterPageCode = escpos.Command{ESC, 't'}
	escCharacterSet      = escpos.Command{ESC, 'R'}
)

// Text styling.
var (
	escTextEmphasisOff = escpos.Command{ESC, 'E', 0}
	escTextEmphasisOn  = escpos.Command{ESC, 'E', 1}

	escTextUnderlineNone   = escpos.Command{ESC, '-', 0}
	escTextUnderlineSimple = escpos.Command{ESC, '-', 1}
	escTextUnderlineDouble = escpos.Command{ESC, '-', 2}

	escTextDoubleStrikeOff = escpos.Command{ESC, 'G', 0}
	escTextDoubleStrikeOn  = escpos.Command{ESC, 'G', 1}

	escTextFontA = escpos.Command{ESC, 'M', 0}
	escTextFontB = escpos.Command{ESC, 'M', 1}
	escTextFontC = escpos.Command{ESC, 'M', 2}

	escTextFlipOff = escpos.Command{ESC, 'V', 0}
	escTextFlipOn  = escpos.Command{ESC, 'V', 1}

	escTextJustifyLeft   = escpos.Command{ESC, 'a', 0}
	escTextJustifyCenter = escpos.Command{ESC, 'a', 1}
	escTextJustifyRight  = escpos.Command{ESC, 'a', 2}

	gsTextReverseColoursOff = escpos.Command{GS, 'B', 0}
	gsTextReverseColoursOn  = escpos.Command{GS, 'B', 1}

	gsTextSmoothingOff = escpos.Command{GS, 'b', 0}
	gsTextSmoothingOn  = escpos.Command{GS, 'b', 1}

	escTextResetLineSpacing = escpos.Command{ESC, '2'}
	escTextLineSpacing      = escpos.Command{ESC, '3'}

	gsTextSizeSelect = escpos.Command{GS, '!'}

	escTextUpsideDownOff = escpos.Command{ESC, '{', 0}
	escTextUpsideDownOn  = escpos.Command{ESC, '{', 1}
)

// Motion units.
var gsSetMotionUnits = escpos.Command{GS, 'P'}

// Barcodes.
var (
	gsBarcodeFont     = escpos.Command{GS, 'f'}
	gsBarcodeHeight   = escpos.Command{GS, 'h'}
	gsBarcodeWidth    = escpos.Command{GS, 'w'}
	gsBarcodePosition = escpos.Command{GS, 'H'}
	gsBarcodePrint    = escpos.Command{GS, 'k'}
)

// 2D symbols share the GS ( k frame; the byte after the length pair
// selects the symbology.
var gs2D = escpos.Command{GS, '(', 'k'}

const (
	symbolPdf417     byte = 48
	symbolQRCode     byte = 49
	symbolMaxiCode   byte = 50
	symbolGS1DataBar byte = 51
	symbolAztec      byte = 53
	symbolDataMatrix byte = 54
	symbolFnStore    byte = 80
	symbolFnPrint    byte = 81
	symbolFnArg      byte = 48
)
