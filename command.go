package escpos

import (
	"fmt"
	"strings"
)

// Command is one atomic device instruction fragment. It is treated as
// immutable once built.
type Command []byte

// Clone returns an independent copy, safe to append to.
func (c Command) Clone() Command {
	out := make(Command, len(c))
	copy(out, c)
	return out
}

// DebugMode selects how instruction bytes are rendered in diagnostic
// output. It never affects the bytes sent to the device.
type DebugMode int

const (
	// DebugNone disables diagnostic rendering.
	DebugNone DebugMode = iota
	// DebugDec renders command bytes as decimal values.
	DebugDec
	// DebugHex renders command bytes as hexadecimal values.
	DebugHex
)

// Instruction is a labelled, ordered list of Commands. Order is
// semantically required: e.g. a barcode's setup commands must precede its
// print command.
type Instruction struct {
	Name     string
	Commands []Command
	Debug    DebugMode
}

// NewInstruction builds an Instruction from ordered commands.
func NewInstruction(name string, debug DebugMode, commands ...Command) Instruction {
	cmds := make([]Command, len(commands))
	copy(cmds, commands)
	return Instruction{Name: name, Commands: cmds, Debug: debug}
}

// Flatten concatenates all commands into the byte sequence written to the
// device.
func (i Instruction) Flatten() []byte {
	n := 0
	for _, c := range i.Commands {
		n += len(c)
	}
	out := make([]byte, 0, n)
	for _, c := range i.Commands {
		out = append(out, c...)
	}
	return out
}

// String renders the instruction for diagnostics, honouring the debug
// mode. With DebugNone only the label is rendered.
func (i Instruction) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(i.Name)
	sb.WriteString("]")
	if i.Debug == DebugNone {
		return sb.String()
	}
	for _, c := range i.Commands {
		sb.WriteString(" ")
		sb.WriteString(renderBytes(c, i.Debug))
	}
	return sb.String()
}

func renderBytes(c Command, mode DebugMode) string {
	parts := make([]string, len(c))
	for n, b := range c {
		switch mode {
		case DebugDec:
			parts[n] = fmt.Sprintf("%d", b)
		case DebugHex:
			parts[n] = fmt.Sprintf("%02X", b)
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}
