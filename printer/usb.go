//go:build cgo

package printer

import (
	"io"

	"github.com/google/gousb"

	escpos "github.com/fabienbellanger/escpos-go"
)

// USBDriver talks to a device over a USB bulk endpoint pair.
type USBDriver struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  *gousb.OutEndpoint
	in   *gousb.InEndpoint
}

// NewUSBDriver opens the device with the given vendor and product IDs
// and claims its first printer interface. The in endpoint is optional;
// without one, reads fail.
func NewUSBDriver(vendorID, productID gousb.ID) (*USBDriver, error) {
	ctx := gousb.NewContext()
	dev, err := ctx.OpenDeviceWithVIDPID(vendorID, productID)
	if err != nil {
		ctx.Close()
		return nil, transportErr("usb", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, &escpos.TransportError{
			Driver: "usb",
			Err:    escpos.Inputf("device %s:%s not found", vendorID, productID),
		}
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, transportErr("usb", err)
	}

	cfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, transportErr("usb", err)
	}

	intf, err := cfg.Interface(0, 0)
	if err != nil {
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, transportErr("usb", err)
	}

	out, err := intf.OutEndpoint(1)
	if err != nil {
		intf.Close()
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, transportErr("usb", err)
	}

	// Some printers expose no in endpoint; status reads are then
	// unavailable.
	in, err := intf.InEndpoint(1)
	if err != nil {
		in = nil
	}

	return &USBDriver{ctx: ctx, dev: dev, cfg: cfg, intf: intf, out: out, in: in}, nil
}

func (d *USBDriver) Name() string { return "usb" }

func (d *USBDriver) Write(data []byte) error {
	_, err := d.out.Write(data)
	return transportErr(d.Name(), err)
}

func (d *USBDriver) Read(p []byte) (int, error) {
	if d.in == nil {
		return 0, transportErr(d.Name(), io.EOF)
	}
	n, err := d.in.Read(p)
	return n, transportErr(d.Name(), err)
}

func (d *USBDriver) Flush() error { return nil }

func (d *USBDriver) Close() error {
	if d.intf != nil {
		d.intf.Close()
	}
	if d.cfg != nil {
		d.cfg.Close()
	}
	if d.dev != nil {
		d.dev.Close()
	}
	if d.ctx != nil {
		return transportErr(d.Name(), d.ctx.Close())
	}
	return nil
}
