package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabienbellanger/escpos-go/protocol"
)

func TestLineDefault(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine()))
	require.NoError(t, p.Print())

	want := append(bytes.Repeat([]byte{'-'}, 42), 27, 100, 1)
	assert.Equal(t, want, driver.written())
}

func TestLineStyles(t *testing.T) {
	tests := []struct {
		style   LineStyle
		pattern byte
	}{
		{LineStyleSimple, '-'},
		{LineStyleDouble, '='},
		{LineStyleDotted, '.'},
	}
	for _, tt := range tests {
		p, driver := newTestPrinter(nil)
		require.NoError(t, p.Line(NewLine().Style(tt.style)))
		require.NoError(t, p.Print())

		want := append(bytes.Repeat([]byte{tt.pattern}, 42), 27, 100, 1)
		assert.Equal(t, want, driver.written())
	}
}

func TestLineDashedTruncatesPattern(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine().Style(LineStyleDashed).Width(5)))
	require.NoError(t, p.Print())

	assert.Equal(t, []byte{'-', ' ', '-', ' ', '-', 27, 100, 1}, driver.written())
}

func TestLineWidthCap(t *testing.T) {
	p, driver := newTestPrinter(nil)

	// A requested width beyond the paper is capped at the full line.
	require.NoError(t, p.Line(NewLine().Width(100)))
	require.NoError(t, p.Print())

	want := append(bytes.Repeat([]byte{'-'}, 42), 27, 100, 1)
	assert.Equal(t, want, driver.written())
}

func TestLineOffsetLeftJustified(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine().Width(10).Offset(4)))
	require.NoError(t, p.Print())

	want := append([]byte("    "), bytes.Repeat([]byte{'-'}, 10)...)
	want = append(want, 27, 100, 1)
	assert.Equal(t, want, driver.written())
}

func TestLineOffsetShrinksFullWidth(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine().Offset(2)))
	require.NoError(t, p.Print())

	// 2 offset spaces plus 40 pattern characters fill the 42-column line.
	want := append([]byte("  "), bytes.Repeat([]byte{'-'}, 40)...)
	want = append(want, 27, 100, 1)
	assert.Equal(t, want, driver.written())
}

func TestLineJustifyOverrideAndRestore(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine().Justify(protocol.JustifyCenter).Width(6).Offset(2)))
	require.NoError(t, p.Print())

	// Centered lines get their offset appended, and the previous
	// justification is restored after the feed.
	want := []byte{27, 97, 1}
	want = append(want, bytes.Repeat([]byte{'-'}, 6)...)
	want = append(want, ' ', ' ')
	want = append(want, 27, 100, 1)
	want = append(want, 27, 97, 0)
	assert.Equal(t, want, driver.written())
}

func TestLineSizeOverrideAndRestore(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine().Size(2, 2)))
	require.NoError(t, p.Print())

	// Double-width characters halve the number of columns.
	want := []byte{29, 33, 0x11}
	want = append(want, bytes.Repeat([]byte{'-'}, 21)...)
	want = append(want, 27, 100, 1)
	want = append(want, 29, 33, 0x00)
	assert.Equal(t, want, driver.written())
}

func TestLineFontOverrideAndRestore(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine().Font(protocol.FontB).Width(3)))
	require.NoError(t, p.Print())

	want := []byte{27, 77, 1, '-', '-', '-', 27, 100, 1, 27, 77, 0}
	assert.Equal(t, want, driver.written())
}

func TestLineRestoresModifiedState(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Size(2, 1))
	require.NoError(t, p.Justify(protocol.JustifyRight))
	driverLenBefore := len(driver.writes)
	require.NoError(t, p.Line(NewLine().Size(1, 1).Justify(protocol.JustifyLeft).Width(4)))
	require.Equal(t, driverLenBefore, len(driver.writes))
	require.NoError(t, p.Print())

	// The restore step brings back the size and justification that were
	// active before the line, not the defaults.
	want := []byte{29, 33, 0x10, 27, 97, 2}
	want = append(want, 29, 33, 0x00, 27, 97, 0)
	want = append(want, '-', '-', '-', '-')
	want = append(want, 27, 100, 1)
	want = append(want, 29, 33, 0x10, 27, 97, 2)
	assert.Equal(t, want, driver.written())
}

func TestCustomLineStyle(t *testing.T) {
	p, driver := newTestPrinter(nil)

	require.NoError(t, p.Line(NewLine().Style(CustomLineStyle("*~")).Width(5)))
	require.NoError(t, p.Print())

	assert.Equal(t, []byte{'*', '~', '*', '~', '*', 27, 100, 1}, driver.written())
}
