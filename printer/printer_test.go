package printer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	escpos "github.com/fabienbellanger/escpos-go"
	"github.com/fabienbellanger/escpos-go/charset"
	"github.com/fabienbellanger/escpos-go/protocol"
)

// recordDriver records writes in memory and serves canned status
// responses.
type recordDriver struct {
	writes   [][]byte
	flushes  int
	closed   bool
	response []byte
	writeErr error
}

func (d *recordDriver) Name() string { return "record" }

func (d *recordDriver) Write(data []byte) error {
	if d.writeErr != nil {
		return d.writeErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	d.writes = append(d.writes, buf)
	return nil
}

func (d *recordDriver) Read(p []byte) (int, error) {
	n := copy(p, d.response)
	d.response = d.response[n:]
	return n, nil
}

func (d *recordDriver) Flush() error {
	d.flushes++
	return nil
}

func (d *recordDriver) Close() error {
	d.closed = true
	return nil
}

func newTestPrinter(options *Options) (*Printer, *recordDriver) {
	driver := &recordDriver{}
	return New(driver, protocol.New(charset.Encoder{}), options), driver
}

func (d *recordDriver) written() []byte {
	var out []byte
	for _, w := range d.writes {
		out = append(out, w...)
	}
	return out
}

func TestPrinterBuffersUntilPrint(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Init())
	require.NoError(t, p.Writeln("hello"))
	assert.Empty(t, driver.writes)
	assert.Equal(t, 0, driver.flushes)

	require.NoError(t, p.Print())
	assert.Equal(t, []byte{27, 64, 'h', 'e', 'l', 'l', 'o', 27, 100, 1}, driver.written())
	assert.Equal(t, 1, driver.flushes)
}

func TestPrinterInitWithPageCode(t *testing.T) {
	options := DefaultOptions()
	options.PageCode = charset.PC858
	p, driver := newTestPrinter(&options)

	require.NoError(t, p.Init())
	require.NoError(t, p.Print())

	assert.Equal(t, []byte{27, 64, 27, 116, 19}, driver.written())
}

func TestPrinterWriteUsesActivePageCode(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.PageCode(charset.PC858))
	require.NoError(t, p.Write("café"))
	require.NoError(t, p.Print())

	assert.Equal(t, []byte{27, 116, 19, 'c', 'a', 'f', 0x82}, driver.written())
}

func TestPrinterPrintClearsQueue(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Init())
	require.NoError(t, p.Print())
	require.Len(t, driver.writes, 1)

	driver.writes = nil
	require.NoError(t, p.Print())
	assert.Empty(t, driver.writes)
}

func TestPrinterPrintResetsStyleState(t *testing.T) {
	p, _ := newTestPrinter(nil)

	require.NoError(t, p.Bold(true))
	require.NoError(t, p.Size(3, 2))
	require.NoError(t, p.Justify(protocol.JustifyCenter))

	state := p.StyleState()
	assert.True(t, state.Bold)
	assert.Equal(t, byte(3), state.TextWidth)
	assert.Equal(t, byte(2), state.TextHeight)
	assert.Equal(t, protocol.JustifyCenter, state.JustifyMode)

	require.NoError(t, p.Print())
	assert.Equal(t, DefaultStyleState(), p.StyleState())
}

func TestPrinterFailingBuilderQueuesNothing(t *testing.T) {
	p, driver := newTestPrinter(nil)

	assert.Error(t, p.Size(0, 1))
	assert.Error(t, p.Barcode("not digits", protocol.BarcodeEAN13))
	assert.Error(t, p.GS1DataBar2D("123"))

	require.NoError(t, p.Print())
	assert.Empty(t, driver.writes)
}

func TestPrinterWriteFailureAbortsBatch(t *testing.T) {
	p, driver := newTestPrinter(nil)
	sentinel := errors.New("device gone")
	driver.writeErr = sentinel

	require.NoError(t, p.Init())
	require.NoError(t, p.Writeln("hello"))

	err := p.Print()
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, driver.flushes)

	// The aborted batch is dropped, not retried.
	driver.writeErr = nil
	require.NoError(t, p.Print())
	assert.Empty(t, driver.writes)
}

func TestPrinterPrintCut(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Write("receipt"))
	require.NoError(t, p.PrintCut())

	assert.Equal(t, []byte{'r', 'e', 'c', 'e', 'i', 'p', 't', 29, 86, 65, 0}, driver.written())
	assert.Equal(t, 1, driver.flushes)
}

func TestPrinterCustom(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Custom([]byte{29, 86, 65, 1}))
	require.NoError(t, p.Print())

	assert.Equal(t, []byte{29, 86, 65, 1}, driver.written())
}

func TestPrinterBarcodeQueuesFullSequence(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Barcode("1234567890123", protocol.BarcodeEAN13))
	require.NoError(t, p.Print())

	want := []byte{
		29, 119, 3, // width
		29, 104, 102, // height
		29, 102, 0, // font
		29, 72, 2, // position
		29, 107, 2, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '1', '2', '3', 0,
	}
	assert.Equal(t, want, driver.written())
}

func TestPrinterQRCode(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.QRCode("test"))
	require.NoError(t, p.Print())

	want := []byte{
		29, 40, 107, 4, 0, 49, 65, 49, 0, // model
		29, 40, 107, 3, 0, 49, 67, 4, // size
		29, 40, 107, 3, 0, 49, 69, 51, // correction level
		29, 40, 107, 7, 0, 49, 80, 48, 't', 'e', 's', 't', // data
		29, 40, 107, 3, 0, 49, 81, 48, // print
	}
	assert.Equal(t, want, driver.written())
}

func TestPrinterReadStatusBypassesQueue(t *testing.T) {
	p, driver := newTestPrinter(nil)
	driver.response = []byte{0b00010110}

	flags, err := p.ReadStatus(protocol.StatusPrinter)
	require.NoError(t, err)

	require.Len(t, driver.writes, 1)
	assert.Equal(t, []byte{16, 4, 1, 0}, driver.writes[0])
	assert.Equal(t, 1, driver.flushes)

	assert.False(t, flags[protocol.FlagDrawerKickOutConnectorPin3Low])
	assert.True(t, flags[protocol.FlagOnline])
	assert.False(t, flags[protocol.FlagWaitingForOnlineRecovery])
	assert.False(t, flags[protocol.FlagPaperFeedButtonPressed])
}

func TestPrinterReadStatusNoResponse(t *testing.T) {
	p, _ := newTestPrinter(nil)

	_, err := p.ReadStatus(protocol.StatusPrinter)
	require.Error(t, err)

	var protoErr *escpos.ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}

func TestPrinterClose(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Close())
	assert.True(t, driver.closed)
}
