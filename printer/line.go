package printer

import (
	"strings"

	escpos "github.com/fabienbellanger/escpos-go"
	"github.com/fabienbellanger/escpos-go/charset"
	"github.com/fabienbellanger/escpos-go/protocol"
)

// LineStyle is the character pattern a horizontal line repeats.
type LineStyle string

const (
	LineStyleSimple LineStyle = "-"
	LineStyleDouble LineStyle = "="
	LineStyleDotted LineStyle = "."
	LineStyleDashed LineStyle = "- "
)

// CustomLineStyle builds a line style from an arbitrary pattern.
func CustomLineStyle(pattern string) LineStyle {
	return LineStyle(pattern)
}

// Line is a decorative horizontal rule. Unset style fields inherit the
// printer's current state and are restored after the line is drawn.
type Line struct {
	style   LineStyle
	font    *protocol.Font
	size    *[2]byte
	justify *protocol.JustifyMode
	width   *byte
	offset  byte
}

// NewLine returns a simple full-width line.
func NewLine() Line {
	return Line{style: LineStyleSimple}
}

// Style sets the repeated pattern.
func (l Line) Style(style LineStyle) Line {
	l.style = style
	return l
}

// Font overrides the font for the duration of the line.
func (l Line) Font(font protocol.Font) Line {
	l.font = &font
	return l
}

// Size overrides the text size for the duration of the line.
func (l Line) Size(width, height byte) Line {
	l.size = &[2]byte{width, height}
	return l
}

// Justify overrides the justification for the duration of the line.
func (l Line) Justify(mode protocol.JustifyMode) Line {
	l.justify = &mode
	return l
}

// Width caps the line at the given number of characters instead of the
// full paper width.
func (l Line) Width(width byte) Line {
	l.width = &width
	return l
}

// Offset shifts the line by the given number of space characters, on the
// left for left-justified lines and on the right otherwise.
func (l Line) Offset(offset byte) Line {
	l.offset = offset
	return l
}

// render returns the command sequence drawing the line: style overrides,
// the repeated pattern with its offset and a line feed, then the
// restoration of the previous style state.
func (l Line) render(proto protocol.Protocol, options Options, state StyleState) ([]escpos.Command, error) {
	var commands []escpos.Command

	if l.font != nil {
		commands = append(commands, proto.Font(*l.font))
	}
	if l.size != nil {
		cmd, err := proto.TextSize(l.size[0], l.size[1])
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	if l.justify != nil {
		commands = append(commands, proto.Justify(*l.justify))
	}

	textWidth := state.TextWidth
	if l.size != nil {
		textWidth = l.size[0]
	}
	if textWidth == 0 {
		textWidth = 1
	}
	charsNumber := int(options.CharsPerLine / textWidth)

	lineMaxWidth := charsNumber - int(l.offset)
	if lineMaxWidth < 0 {
		lineMaxWidth = 0
	}
	lineWidth := lineMaxWidth
	if l.width != nil && int(*l.width) < lineMaxWidth {
		lineWidth = int(*l.width)
	}

	pattern := string(l.style)
	if pattern == "" {
		pattern = string(LineStyleSimple)
	}
	repeats := (lineWidth + len(pattern) - 1) / len(pattern)
	text := strings.Repeat(pattern, repeats)
	if len(text) > lineWidth {
		text = text[:lineWidth]
	}

	justify := state.JustifyMode
	if l.justify != nil {
		justify = *l.justify
	}
	padding := strings.Repeat(" ", int(l.offset))
	if justify == protocol.JustifyLeft {
		text = padding + text
	} else {
		text += padding
	}

	textCmd, err := proto.Text(text, charset.PageCodeNone, charsNumber)
	if err != nil {
		return nil, err
	}
	commands = append(commands, textCmd, proto.Feed(1))

	if l.font != nil {
		commands = append(commands, proto.Font(state.Font))
	}
	if l.size != nil {
		cmd, err := proto.TextSize(state.TextWidth, state.TextHeight)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	if l.justify != nil {
		commands = append(commands, proto.Justify(state.JustifyMode))
	}

	return commands, nil
}
