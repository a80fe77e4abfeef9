package printer

import (
	goimage "image"

	"go.uber.org/zap"

	escpos "github.com/fabienbellanger/escpos-go"
	"github.com/fabienbellanger/escpos-go/charset"
	"github.com/fabienbellanger/escpos-go/image"
	"github.com/fabienbellanger/escpos-go/protocol"
)

// StyleState tracks the text styles currently active on the device, so
// composite builders can temporarily override and then restore them.
type StyleState struct {
	Bold          bool
	Reverse       bool
	Flip          bool
	DoubleStrike  bool
	Font          protocol.Font
	JustifyMode   protocol.JustifyMode
	UnderlineMode protocol.UnderlineMode
	TextWidth     byte
	TextHeight    byte
}

// DefaultStyleState is the device state right after initialization.
func DefaultStyleState() StyleState {
	return StyleState{TextWidth: 1, TextHeight: 1}
}

// Printer buffers instructions and writes them to its driver in one
// batch at Print time, so a validation failure mid-sequence never
// results in partially transmitted output.
type Printer struct {
	driver       Driver
	protocol     protocol.Protocol
	options      Options
	logger       *zap.Logger
	instructions []escpos.Instruction
	styleState   StyleState
}

// New builds a Printer over driver. nil options select DefaultOptions.
func New(driver Driver, proto protocol.Protocol, options *Options) *Printer {
	opts := DefaultOptions()
	if options != nil {
		opts = *options
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Printer{
		driver:     driver,
		protocol:   proto,
		options:    opts,
		logger:     logger,
		styleState: DefaultStyleState(),
	}
}

// Options returns the active printer options.
func (p *Printer) Options() Options {
	return p.options
}

// StyleState returns the currently tracked style state.
func (p *Printer) StyleState() StyleState {
	return p.styleState
}

// ResetStyleState forgets all tracked style overrides.
func (p *Printer) ResetStyleState() {
	p.styleState = DefaultStyleState()
}

// command queues one named instruction.
func (p *Printer) command(name string, commands ...escpos.Command) {
	instruction := escpos.NewInstruction(name, p.options.DebugMode, commands...)
	if name != "" && p.options.DebugMode != escpos.DebugNone {
		p.logger.Debug("instruction queued", zap.Stringer("instruction", instruction))
	}
	p.instructions = append(p.instructions, instruction)
}

// Print writes all buffered instructions to the driver in order and
// resets the buffer and style state. A write failure aborts the batch:
// nothing past the failure point is sent, and the aborted instructions
// are dropped.
func (p *Printer) Print() error {
	instructions := p.instructions
	p.instructions = nil
	p.ResetStyleState()

	for _, instruction := range instructions {
		if err := p.driver.Write(instruction.Flatten()); err != nil {
			p.logger.Error("batch aborted",
				zap.String("instruction", instruction.Name),
				zap.Error(err),
			)
			return err
		}
	}
	if err := p.driver.Flush(); err != nil {
		return err
	}
	p.logger.Debug("batch printed", zap.Int("instructions", len(instructions)))
	return nil
}

// PrintCut queues a full paper cut and prints the whole batch.
func (p *Printer) PrintCut() error {
	if err := p.Cut(); err != nil {
		return err
	}
	return p.Print()
}

// Close releases the underlying driver.
func (p *Printer) Close() error {
	return p.driver.Close()
}

// Init queues hardware initialization, followed by the configured page
// code selection if one is set.
func (p *Printer) Init() error {
	p.command("initialization", p.protocol.Init())
	if p.options.PageCode != charset.PageCodeNone {
		p.command("character page code", p.protocol.PageCode(p.options.PageCode))
	}
	return nil
}

// Reset queues a hardware reset.
func (p *Printer) Reset() error {
	p.command("reset", p.protocol.Reset())
	return nil
}

// Cancel queues a cancel command.
func (p *Printer) Cancel() error {
	p.command("cancel", p.protocol.Cancel())
	return nil
}

// Cut queues a full paper cut.
func (p *Printer) Cut() error {
	p.command("full paper cut", p.protocol.Cut(false))
	return nil
}

// PartialCut queues a partial paper cut.
func (p *Printer) PartialCut() error {
	p.command("partial paper cut", p.protocol.Cut(true))
	return nil
}

// PageCode queues a page code selection and makes it the active text
// encoding table.
func (p *Printer) PageCode(pc charset.PageCode) error {
	p.options.PageCode = pc
	p.command("character page code", p.protocol.PageCode(pc))
	return nil
}

// CharacterSet queues an international character set selection.
func (p *Printer) CharacterSet(cs charset.CharacterSet) error {
	p.command("international character set", p.protocol.CharacterSet(cs))
	return nil
}

// Bold queues an emphasis toggle.
func (p *Printer) Bold(enabled bool) error {
	p.styleState.Bold = enabled
	p.command("text bold", p.protocol.Bold(enabled))
	return nil
}

// Underline queues an underline mode change.
func (p *Printer) Underline(mode protocol.UnderlineMode) error {
	p.styleState.UnderlineMode = mode
	p.command("text underline", p.protocol.Underline(mode))
	return nil
}

// DoubleStrike queues a double strike toggle.
func (p *Printer) DoubleStrike(enabled bool) error {
	p.styleState.DoubleStrike = enabled
	p.command("text double strike", p.protocol.DoubleStrike(enabled))
	return nil
}

// Font queues a font selection.
func (p *Printer) Font(font protocol.Font) error {
	p.styleState.Font = font
	p.command("text font", p.protocol.Font(font))
	return nil
}

// Flip queues a flip toggle.
func (p *Printer) Flip(enabled bool) error {
	p.styleState.Flip = enabled
	p.command("text flip", p.protocol.Flip(enabled))
	return nil
}

// Justify queues a justification change.
func (p *Printer) Justify(mode protocol.JustifyMode) error {
	p.styleState.JustifyMode = mode
	p.command("text justify", p.protocol.Justify(mode))
	return nil
}

// Reverse queues a reverse colour toggle.
func (p *Printer) Reverse(enabled bool) error {
	p.styleState.Reverse = enabled
	p.command("text reverse colour", p.protocol.ReverseColours(enabled))
	return nil
}

// Smoothing queues a smoothing mode toggle.
func (p *Printer) Smoothing(enabled bool) error {
	p.command("smoothing mode", p.protocol.Smoothing(enabled))
	return nil
}

// Size queues a text size change. Width and height are multipliers in
// 1..8.
func (p *Printer) Size(width, height byte) error {
	cmd, err := p.protocol.TextSize(width, height)
	if err != nil {
		return err
	}
	p.styleState.TextWidth = width
	p.styleState.TextHeight = height
	p.command("text size", cmd)
	return nil
}

// ResetSize queues a return to the normal text size.
func (p *Printer) ResetSize() error {
	return p.Size(1, 1)
}

// UpsideDown queues an upside-down mode toggle.
func (p *Printer) UpsideDown(enabled bool) error {
	p.command("upside-down mode", p.protocol.UpsideDown(enabled))
	return nil
}

// Feed queues one line feed.
func (p *Printer) Feed() error {
	return p.Feeds(1)
}

// Feeds queues a paper feed of n lines.
func (p *Printer) Feeds(lines byte) error {
	p.command("line feeds", p.protocol.Feed(lines))
	return nil
}

// LineSpacing queues a line spacing change.
func (p *Printer) LineSpacing(value byte) error {
	p.command("line spacing", p.protocol.LineSpacing(value))
	return nil
}

// ResetLineSpacing queues a return to the default line spacing.
func (p *Printer) ResetLineSpacing() error {
	p.command("reset line spacing", p.protocol.ResetLineSpacing())
	return nil
}

// CashDrawer queues a drawer kick-out pulse.
func (p *Printer) CashDrawer(pin protocol.CashDrawerPin) error {
	p.command("cash drawer", p.protocol.CashDrawer(pin))
	return nil
}

// MotionUnits queues a motion unit change.
func (p *Printer) MotionUnits(x, y byte) error {
	p.command("set motion units", p.protocol.MotionUnits(x, y))
	return nil
}

// Write queues text encoded with the active page code.
func (p *Printer) Write(text string) error {
	cmd, err := p.protocol.Text(text, p.options.PageCode, 0)
	if err != nil {
		return err
	}
	p.command("text", cmd)
	return nil
}

// Writeln queues text followed by a line feed.
func (p *Printer) Writeln(text string) error {
	if err := p.Write(text); err != nil {
		return err
	}
	return p.Feed()
}

// Custom queues raw command bytes.
func (p *Printer) Custom(cmd []byte) error {
	p.command("custom command", escpos.Command(cmd).Clone())
	return nil
}

// CustomWithPageCode queues a page code selection followed by raw
// command bytes encoded for that table.
func (p *Printer) CustomWithPageCode(cmd []byte, pc charset.PageCode) error {
	if err := p.PageCode(pc); err != nil {
		return err
	}
	return p.Custom(cmd)
}

// Barcode queues a 1D barcode with default options.
func (p *Printer) Barcode(data string, system protocol.BarcodeSystem) error {
	return p.BarcodeWithOption(data, system, protocol.DefaultBarcodeOption())
}

// BarcodeWithOption queues a 1D barcode. Nothing is queued if the
// payload fails validation.
func (p *Printer) BarcodeWithOption(data string, system protocol.BarcodeSystem, option protocol.BarcodeOption) error {
	commands, err := p.protocol.Barcode(data, system, option)
	if err != nil {
		return err
	}
	p.command(system.String(), commands...)
	return nil
}

// QRCode queues a QR code with default options.
func (p *Printer) QRCode(data string) error {
	return p.QRCodeWithOption(data, protocol.DefaultQRCodeOption())
}

// QRCodeWithOption queues a QR code.
func (p *Printer) QRCodeWithOption(data string, option protocol.QRCodeOption) error {
	commands, err := p.protocol.QRCode(data, option)
	if err != nil {
		return err
	}
	p.command("qrcode", commands...)
	return nil
}

// Pdf417 queues a PDF417 symbol with default options.
func (p *Printer) Pdf417(data string) error {
	return p.Pdf417WithOption(data, protocol.DefaultPdf417Option())
}

// Pdf417WithOption queues a PDF417 symbol.
func (p *Printer) Pdf417WithOption(data string, option protocol.Pdf417Option) error {
	commands, err := p.protocol.Pdf417(data, option)
	if err != nil {
		return err
	}
	p.command("pdf417", commands...)
	return nil
}

// MaxiCode queues a MaxiCode symbol in mode 2.
func (p *Printer) MaxiCode(data string) error {
	return p.MaxiCodeWithMode(data, protocol.MaxiCodeMode2)
}

// MaxiCodeWithMode queues a MaxiCode symbol.
func (p *Printer) MaxiCodeWithMode(data string, mode protocol.MaxiCodeMode) error {
	commands, err := p.protocol.MaxiCode(data, mode)
	if err != nil {
		return err
	}
	p.command("maxi code", commands...)
	return nil
}

// DataMatrix queues a DataMatrix symbol with default options.
func (p *Printer) DataMatrix(data string) error {
	return p.DataMatrixWithOption(data, protocol.DefaultDataMatrixOption())
}

// DataMatrixWithOption queues a DataMatrix symbol.
func (p *Printer) DataMatrixWithOption(data string, option protocol.DataMatrixOption) error {
	commands, err := p.protocol.DataMatrix(data, option)
	if err != nil {
		return err
	}
	p.command("data matrix", commands...)
	return nil
}

// Aztec queues an Aztec symbol with default options.
func (p *Printer) Aztec(data string) error {
	return p.AztecWithOption(data, protocol.DefaultAztecOption())
}

// AztecWithOption queues an Aztec symbol.
func (p *Printer) AztecWithOption(data string, option protocol.AztecOption) error {
	commands, err := p.protocol.Aztec(data, option)
	if err != nil {
		return err
	}
	p.command("aztec", commands...)
	return nil
}

// GS1DataBar2D queues a stacked DataBar symbol with default options.
func (p *Printer) GS1DataBar2D(data string) error {
	return p.GS1DataBar2DWithOption(data, protocol.DefaultGS1DataBar2DOption())
}

// GS1DataBar2DWithOption queues a stacked DataBar symbol.
func (p *Printer) GS1DataBar2DWithOption(data string, option protocol.GS1DataBar2DOption) error {
	commands, err := p.protocol.GS1DataBar2D(data, option)
	if err != nil {
		return err
	}
	p.command("gs1 databar", commands...)
	return nil
}

// BitImage queues a bit image with default options.
func (p *Printer) BitImage(img goimage.Image) error {
	return p.BitImageWithOption(img, image.DefaultBitImageOption())
}

// BitImageWithOption queues a bit image.
func (p *Printer) BitImageWithOption(img goimage.Image, option image.BitImageOption) error {
	cmd, err := image.NewBitImage(img, option).Command()
	if err != nil {
		return err
	}
	p.command("bit image", cmd)
	return nil
}

// Graphics queues an image as GS 8 L graphics blocks, for images too
// tall for a single bit image frame.
func (p *Printer) Graphics(img goimage.Image, option image.BitImageOption) error {
	commands, err := image.NewBitImage(img, option).GraphicsCommands()
	if err != nil {
		return err
	}
	p.command("graphics", commands...)
	return nil
}

// Line queues a decorative horizontal line.
func (p *Printer) Line(line Line) error {
	commands, err := line.render(p.protocol, p.options, p.styleState)
	if err != nil {
		return err
	}
	p.command("line", commands...)
	return nil
}

// ReadStatus sends a real-time status request immediately, bypassing the
// instruction buffer, reads one response byte and decodes it against the
// request category.
func (p *Printer) ReadStatus(request protocol.RealTimeStatusRequest) (map[protocol.StatusFlag]bool, error) {
	cmd, err := p.protocol.RealTimeStatus(request)
	if err != nil {
		return nil, err
	}
	if err := p.driver.Write(cmd); err != nil {
		return nil, err
	}
	if err := p.driver.Flush(); err != nil {
		return nil, err
	}

	buf := make([]byte, 1)
	n, err := p.driver.Read(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, escpos.Protocolf("no status response for %s request", request)
	}
	return protocol.ParseStatus(request, buf[0])
}
