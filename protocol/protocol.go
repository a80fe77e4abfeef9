package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
	"github.com/fabienbellanger/escpos-go/charset"
)

// Protocol builds device command frames. Every method is pure: it
// validates its inputs and returns the exact bytes to send, without
// touching any transport.
type Protocol struct {
	encoder charset.Encoder
}

// New returns a Protocol using the given text encoder.
func New(encoder charset.Encoder) Protocol {
	return Protocol{encoder: encoder}
}

// Init returns the hardware initialization command.
func (p Protocol) Init() escpos.Command {
	return escHardwareInit.Clone()
}

// Reset returns the hardware reset command.
func (p Protocol) Reset() escpos.Command {
	return escHardwareReset.Clone()
}

// Cancel returns the cancel command.
func (p Protocol) Cancel() escpos.Command {
	return escpos.Command{CAN}
}

// Cut returns the paper cut command, full or partial.
func (p Protocol) Cut(partial bool) escpos.Command {
	if partial {
		return gsPaperCutPartial.Clone()
	}
	return gsPaperCutFull.Clone()
}

// PageCode returns the character page code selection command.
func (p Protocol) PageCode(pc charset.PageCode) escpos.Command {
	return append(escCharacterPageCode.Clone(), pc.Value())
}

// CharacterSet returns the international character set selection command.
func (p Protocol) CharacterSet(cs charset.CharacterSet) escpos.Command {
	return append(escCharacterSet.Clone(), cs.Value())
}

// Bold returns the emphasis toggle command.
func (p Protocol) Bold(enabled bool) escpos.Command {
	if enabled {
		return escTextEmphasisOn.Clone()
	}
	return escTextEmphasisOff.Clone()
}

// Underline returns the underline mode command.
func (p Protocol) Underline(mode UnderlineMode) escpos.Command {
	switch mode {
	case UnderlineSingle:
		return escTextUnderlineSimple.Clone()
	case UnderlineDouble:
		return escTextUnderlineDouble.Clone()
	default:
		return escTextUnderlineNone.Clone()
	}
}

// DoubleStrike returns the double strike toggle command.
func (p Protocol) DoubleStrike(enabled bool) escpos.Command {
	if enabled {
		return escTextDoubleStrikeOn.Clone()
	}
	return escTextDoubleStrikeOff.Clone()
}

// Font returns the font selection command.
func (p Protocol) Font(font Font) escpos.Command {
	switch font {
	case FontB:
		return escTextFontB.Clone()
	case FontC:
		return escTextFontC.Clone()
	default:
		return escTextFontA.Clone()
	}
}

// Flip returns the 90° clockwise rotation toggle command.
func (p Protocol) Flip(enabled bool) escpos.Command {
	if enabled {
		return escTextFlipOn.Clone()
	}
	return escTextFlipOff.Clone()
}

// Justify returns the justification command.
func (p Protocol) Justify(mode JustifyMode) escpos.Command {
	switch mode {
	case JustifyCenter:
		return escTextJustifyCenter.Clone()
	case JustifyRight:
		return escTextJustifyRight.Clone()
	default:
		return escTextJustifyLeft.Clone()
	}
}

// ReverseColours returns the white/black reverse toggle command.
func (p Protocol) ReverseColours(enabled bool) escpos.Command {
	if enabled {
		return gsTextReverseColoursOn.Clone()
	}
	return gsTextReverseColoursOff.Clone()
}

// Smoothing returns the smoothing mode toggle command.
func (p Protocol) Smoothing(enabled bool) escpos.Command {
	if enabled {
		return gsTextSmoothingOn.Clone()
	}
	return gsTextSmoothingOff.Clone()
}

// Feed returns the paper feed command for n lines.
func (p Protocol) Feed(lines byte) escpos.Command {
	return append(escPaperFeed.Clone(), lines)
}

// LineSpacing returns the line spacing command.
func (p Protocol) LineSpacing(value byte) escpos.Command {
	return append(escTextLineSpacing.Clone(), value)
}

// ResetLineSpacing returns the default line spacing command.
func (p Protocol) ResetLineSpacing() escpos.Command {
	return escTextResetLineSpacing.Clone()
}

// TextSize returns the character size command. Width and height are
// multipliers in 1..8.
func (p Protocol) TextSize(width, height byte) (escpos.Command, error) {
	if width < 1 || width > 8 {
		return nil, escpos.Inputf("invalid text size width (1 - 8): %d", width)
	}
	if height < 1 || height > 8 {
		return nil, escpos.Inputf("invalid text size height (1 - 8): %d", height)
	}
	return append(gsTextSizeSelect.Clone(), ((width-1)<<4)|(height-1)), nil
}

// UpsideDown returns the upside-down printing toggle command.
func (p Protocol) UpsideDown(enabled bool) escpos.Command {
	if enabled {
		return escTextUpsideDownOn.Clone()
	}
	return escTextUpsideDownOff.Clone()
}

// CashDrawer returns the drawer kick-out pulse command.
func (p Protocol) CashDrawer(pin CashDrawerPin) escpos.Command {
	if pin == CashDrawerPin5 {
		return escCashDrawerPin5.Clone()
	}
	return escCashDrawerPin2.Clone()
}

// MotionUnits returns the horizontal and vertical motion unit command.
func (p Protocol) MotionUnits(x, y byte) escpos.Command {
	return append(gsSetMotionUnits.Clone(), x, y)
}

// Text encodes text for printing. With a page code other than
// PageCodeNone the per-character table encoder is used, otherwise the
// generic byte encoder. maxLen <= 0 means no limit.
func (p Protocol) Text(text string, pc charset.PageCode, maxLen int) (escpos.Command, error) {
	var (
		encoded []byte
		err     error
	)
	if pc == charset.PageCodeNone {
		encoded, err = p.encoder.Encode(text, maxLen)
	} else {
		encoded, err = p.encoder.EncodeWithPageCode(text, pc, maxLen)
	}
	if err != nil {
		return nil, err
	}
	return escpos.Command(encoded), nil
}
