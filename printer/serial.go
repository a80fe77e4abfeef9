package printer

import (
	"time"

	"go.bug.st/serial"

	escpos "github.com/fabienbellanger/escpos-go"
)

// SerialDriver talks to a device over a serial port in 8N1 mode.
type SerialDriver struct {
	portName string
	port     serial.Port
}

// NewSerialDriver opens the named port at the given baud rate. The read
// timeout bounds status reads; zero blocks until the device answers.
func NewSerialDriver(portName string, baudRate int, readTimeout time.Duration) (*SerialDriver, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, transportErr("serial", err)
	}
	found := false
	for _, p := range ports {
		if p == portName {
			found = true
			break
		}
	}
	if !found {
		return nil, &escpos.TransportError{
			Driver: "serial",
			Err:    escpos.Inputf("serial port %s not found", portName),
		}
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, transportErr("serial", err)
	}
	if readTimeout > 0 {
		if err := port.SetReadTimeout(readTimeout); err != nil {
			port.Close()
			return nil, transportErr("serial", err)
		}
	}

	return &SerialDriver{portName: portName, port: port}, nil
}

func (d *SerialDriver) Name() string { return "serial" }

func (d *SerialDriver) Write(data []byte) error {
	_, err := d.port.Write(data)
	return transportErr(d.Name(), err)
}

func (d *SerialDriver) Read(p []byte) (int, error) {
	n, err := d.port.Read(p)
	return n, transportErr(d.Name(), err)
}

func (d *SerialDriver) Flush() error {
	return transportErr(d.Name(), d.port.Drain())
}

func (d *SerialDriver) Close() error {
	return transportErr(d.Name(), d.port.Close())
}
