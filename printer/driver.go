// Package printer exposes the Printer orchestrator and the transport
// drivers carrying its command frames to a device.
package printer

import (
	"encoding/hex"
	"io"
	"net"
	"os"
	"time"

	escpos "github.com/fabienbellanger/escpos-go"
)

// Driver is the transport boundary. Implementations block; everything
// above them is synchronous and side-effect-free.
type Driver interface {
	// Name identifies the transport in errors and logs.
	Name() string
	// Write sends raw command bytes to the device.
	Write(data []byte) error
	// Read fills p with response bytes from the device.
	Read(p []byte) (int, error)
	// Flush pushes any transport-level buffer to the device.
	Flush() error
	// Close releases the transport.
	Close() error
}

func transportErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return &escpos.TransportError{Driver: name, Err: err}
}

// ================ Console driver ================

// ConsoleDriver writes command bytes to an io.Writer, raw or as a hex
// dump. Used for debugging without a device.
type ConsoleDriver struct {
	w       io.Writer
	hexDump bool
}

// NewConsoleDriver returns a console driver writing raw bytes to w, or to
// stdout when w is nil.
func NewConsoleDriver(w io.Writer) *ConsoleDriver {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleDriver{w: w}
}

// NewHexConsoleDriver returns a console driver rendering every write as a
// hex dump instead of raw bytes.
func NewHexConsoleDriver(w io.Writer) *ConsoleDriver {
	d := NewConsoleDriver(w)
	d.hexDump = true
	return d
}

func (d *ConsoleDriver) Name() string { return "console" }

func (d *ConsoleDriver) Write(data []byte) error {
	if d.hexDump {
		_, err := io.WriteString(d.w, hex.Dump(data))
		return transportErr(d.Name(), err)
	}
	_, err := d.w.Write(data)
	return transportErr(d.Name(), err)
}

func (d *ConsoleDriver) Read(p []byte) (int, error) {
	return 0, transportErr(d.Name(), io.EOF)
}

func (d *ConsoleDriver) Flush() error { return nil }
func (d *ConsoleDriver) Close() error { return nil }

// ================ Network driver ================

// NetworkDriver talks to a device over a TCP socket. Reads apply the
// configured timeout as a deadline.
type NetworkDriver struct {
	conn        net.Conn
	readTimeout time.Duration
}

// NewNetworkDriver dials addr (host:port). A zero readTimeout means
// reads block until the device answers.
func NewNetworkDriver(addr string, readTimeout time.Duration) (*NetworkDriver, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, transportErr("network", err)
	}
	return &NetworkDriver{conn: conn, readTimeout: readTimeout}, nil
}

func (d *NetworkDriver) Name() string { return "network" }

func (d *NetworkDriver) Write(data []byte) error {
	_, err := d.conn.Write(data)
	return transportErr(d.Name(), err)
}

func (d *NetworkDriver) Read(p []byte) (int, error) {
	if d.readTimeout > 0 {
		if err := d.conn.SetReadDeadline(time.Now().Add(d.readTimeout)); err != nil {
			return 0, transportErr(d.Name(), err)
		}
	}
	n, err := d.conn.Read(p)
	return n, transportErr(d.Name(), err)
}

func (d *NetworkDriver) Flush() error { return nil }

func (d *NetworkDriver) Close() error {
	return transportErr(d.Name(), d.conn.Close())
}

// ================ File driver ================

// FileDriver writes to a character device or spool file, e.g.
// /dev/usb/lp0.
type FileDriver struct {
	f *os.File
}

// NewFileDriver opens path for read/write.
func NewFileDriver(path string) (*FileDriver, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, transportErr("file", err)
	}
	return &FileDriver{f: f}, nil
}

func (d *FileDriver) Name() string { return "file" }

func (d *FileDriver) Write(data []byte) error {
	_, err := d.f.Write(data)
	return transportErr(d.Name(), err)
}

func (d *FileDriver) Read(p []byte) (int, error) {
	n, err := d.f.Read(p)
	return n, transportErr(d.Name(), err)
}

func (d *FileDriver) Flush() error {
	return transportErr(d.Name(), d.f.Sync())
}

func (d *FileDriver) Close() error {
	return transportErr(d.Name(), d.f.Close())
}

// ================ Generic read/writer driver ================

// RWDriver adapts any io.ReadWriter, e.g. an opened HID handle or an
// in-memory buffer in tests.
type RWDriver struct {
	name string
	rw   io.ReadWriter
}

// NewRWDriver wraps rw under the given name.
func NewRWDriver(name string, rw io.ReadWriter) *RWDriver {
	return &RWDriver{name: name, rw: rw}
}

func (d *RWDriver) Name() string { return d.name }

func (d *RWDriver) Write(data []byte) error {
	_, err := d.rw.Write(data)
	return transportErr(d.name, err)
}

func (d *RWDriver) Read(p []byte) (int, error) {
	n, err := d.rw.Read(p)
	return n, transportErr(d.name, err)
}

func (d *RWDriver) Flush() error { return nil }

func (d *RWDriver) Close() error {
	if c, ok := d.rw.(io.Closer); ok {
		return transportErr(d.name, c.Close())
	}
	return nil
}
