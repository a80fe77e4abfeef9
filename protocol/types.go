package protocol

// UnderlineMode selects the underline thickness (ESC - argument).
type UnderlineMode byte

const (
	UnderlineNone UnderlineMode = iota
	UnderlineSingle
	UnderlineDouble
)

func (m UnderlineMode) String() string {
	switch m {
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	default:
		return "none"
	}
}

// Font selects one of the built-in character fonts (ESC M argument).
type Font byte

const (
	FontA Font = iota
	FontB
	FontC
)

func (f Font) String() string {
	switch f {
	case FontB:
		return "B"
	case FontC:
		return "C"
	default:
		return "A"
	}
}

// JustifyMode selects the horizontal alignment (ESC a argument).
type JustifyMode byte

const (
	JustifyLeft JustifyMode = iota
	JustifyCenter
	JustifyRight
)

func (m JustifyMode) String() string {
	switch m {
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "left"
	}
}

// CashDrawerPin selects the drawer kick-out connector pin (ESC p argument).
type CashDrawerPin byte

const (
	CashDrawerPin2 CashDrawerPin = iota
	CashDrawerPin5
)
