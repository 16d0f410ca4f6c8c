package chip8

import (
	"errors"
	"fmt"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Sentinel errors of the interpreter, use errors.Is to check for them.
// The stack, memory and key errors are shared with the retrogolib CPU.
var (
	ErrRomTooLarge       = errors.New("rom does not fit into program memory")
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrStackOverflow     = cpu.ErrStackOverflow
	ErrStackUnderflow    = cpu.ErrStackUnderflow
	ErrAddressOutOfRange = cpu.ErrMemoryOutOfBounds
	ErrInvalidKey        = cpu.ErrKeyIndexOutOfBounds
	ErrBufferSize        = errors.New("invalid frame buffer size")
)

// LoadErrorKind classifies a ROM loading failure.
type LoadErrorKind int

const (
	// IoError is reported when the ROM file can not be opened or read.
	IoError LoadErrorKind = iota
	// RomTooLarge is reported when the ROM exceeds MaxROMSize.
	RomTooLarge
)

func (k LoadErrorKind) String() string {
	switch k {
	case IoError:
		return "io error"
	case RomTooLarge:
		return "rom too large"
	default:
		return fmt.Sprintf("LoadErrorKind(%d)", int(k))
	}
}

// LoadError is returned when a ROM could not be loaded.
// The interpreter state is left unchanged.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading rom: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("loading rom %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// OpcodeError is returned by ExecuteCycle for a fatal execution failure.
// PC is the address the opcode was fetched from.
type OpcodeError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("opcode %04X at %03X: %v", e.Opcode, e.PC, e.Err)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}
