// Package chip8 implements a CHIP-8 virtual machine interpreter.
//
// # Machine Overview
//
// The interpreter models the original COSMAC VIP CHIP-8 environment:
//   - 4KB of memory, 0x000-0x1FF holds the font glyphs, ProgramStart-MaxAddress the program
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as the flag register
//   - a 16-bit address register I and a 16-bit program counter
//   - a call stack of StackDepth return addresses
//   - a 64x32 monochrome display toggled by XOR sprite drawing
//   - delay and sound timers decaying at TimerFrequency regardless of clock speed
//
// # Execution Model
//
// The interpreter is driven by its owner. Every call to ExecuteCycle advances the
// timers by one cycle and executes at most one instruction. The key wait instruction
// (Fx0A) re-executes itself until a key is pressed, so hosts need to keep calling
// ExecuteCycle at a steady rate while feeding key state through UpdateKey.
//
// # Usage Example
//
//	interp := chip8.New(chip8.WithLogger(logger))
//	if err := interp.Load("pong.ch8"); err != nil {
//		return fmt.Errorf("loading rom: %w", err)
//	}
//
//	frame := make([]byte, chip8.FrameSize)
//	for range cyclesPerFrame {
//		if err := interp.ExecuteCycle(); err != nil {
//			return fmt.Errorf("executing cycle: %w", err)
//		}
//	}
//	if err := interp.RenderInto(frame); err != nil {
//		return fmt.Errorf("rendering: %w", err)
//	}
//
// # Error Handling
//
// Loading failures are reported as *LoadError and leave the interpreter untouched.
// Execution failures are reported as *OpcodeError and halt the machine until the
// next successful load.
package chip8
