package printer

import (
	"go.uber.org/zap"

	escpos "github.com/fabienbellanger/escpos-go"
	"github.com/fabienbellanger/escpos-go/charset"
)

// DefaultCharsPerLine is the usual width of 80 mm roll paper in font A
// characters.
const DefaultCharsPerLine byte = 42

// Options configures a Printer.
type Options struct {
	// PageCode selects the character table used to encode text.
	// PageCodeNone uses the generic byte encoder.
	PageCode charset.PageCode

	// DebugMode enables instruction logging in the given rendering.
	DebugMode escpos.DebugMode

	// CharsPerLine is the number of font A characters fitting one line.
	CharsPerLine byte

	// Logger receives debug output. nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the options used when the caller does not
// specify any.
func DefaultOptions() Options {
	return Options{
		PageCode:     charset.PageCodeNone,
		DebugMode:    escpos.DebugNone,
		CharsPerLine: DefaultCharsPerLine,
	}
}
