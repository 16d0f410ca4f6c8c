package chip8

import (
	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Font glyphs and reserved interpreter area (512 bytes)
//	0x200-0xFFF: Program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address where ROMs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// MaxROMSize is the largest ROM image that fits into the program space.
	MaxROMSize = MemorySize - ProgramStart
)

// Display constants.
const (
	Width  = 64
	Height = 32

	// BytesPerPixel is the size of one RGBA8 pixel in a rendered frame.
	BytesPerPixel = 4

	// FrameSize is the size of a buffer passed to RenderInto.
	FrameSize = Width * Height * BytesPerPixel
)

// Register file constants.
const (
	RegisterCount = 16

	// FlagRegister is VF, written by arithmetic and draw instructions.
	FlagRegister = 0xF

	// StackDepth is the number of return addresses the call stack can hold.
	StackDepth = 16

	KeyCount = 16
)

// Timing constants.
const (
	// TimerFrequency is the rate in Hz at which the delay and sound timers decay.
	TimerFrequency = 60

	// DefaultClockSpeed is the number of cycles executed per second.
	DefaultClockSpeed = 600

	// debugSeed is used to seed the random source when tracing is enabled.
	debugSeed = 0
)

// glyphSize is the number of bytes per font glyph.
const glyphSize = 5

// Font contains the sprites for the hexadecimal digits 0-F,
// loaded at address 0x000.
var Font = loadFont()

// loadFont copies the standard glyphs that retrogolib places at the start
// of the memory of a new CPU.
func loadFont() [16 * glyphSize]byte {
	var font [16 * glyphSize]byte
	copy(font[:], cpu.New().Memory[:])
	return font
}
