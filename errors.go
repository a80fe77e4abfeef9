// Package escpos holds the shared building blocks of the ESC/POS codec:
// the Command and Instruction types, the parameter-length codec and the
// error kinds used across all sub-packages.
package escpos

import "fmt"

// InputError reports an invalid parameter or payload. It is always local
// to the builder call that produced it and is never retried.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return "input error: " + e.Msg
}

// Inputf builds an InputError from a format string.
func Inputf(format string, args ...interface{}) error {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

// TransportError reports an I/O failure surfaced by a Driver. It aborts
// the whole pending batch at flush time.
type TransportError struct {
	Driver string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error (%s): %v", e.Driver, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a malformed response from the device, e.g. a
// status byte that does not match the fixed bit template.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Msg
}

// Protocolf builds a ProtocolError from a format string.
func Protocolf(format string, args ...interface{}) error {
	return &ProtocolError{Msg: fmt.Sprintf(format, args...)}
}
