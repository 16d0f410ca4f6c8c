// Package disasm provides CHIP-8 instruction disassembly based on the
// retrogolib CHIP-8 opcode definitions. It is used for the interpreter
// debug trace and for writing ROM listings.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Instruction is a disassembled CHIP-8 word.
type Instruction struct {
	Address  uint16
	Opcode   uint16
	Name     string // empty if the word is not a known instruction
	Operands string

	ins *chip8.Instruction
}

// Decode disassembles the word located at the given address.
func Decode(address, word uint16) Instruction {
	result := Instruction{
		Address: address,
		Opcode:  word,
	}

	op, ok := lookup(word)
	if !ok {
		return result
	}

	result.ins = op.Instruction
	result.Name = op.Instruction.Name
	result.Operands = operands(word)
	return result
}

// IsData returns true if the word does not decode to a known instruction.
func (i Instruction) IsData() bool {
	return i.ins == nil
}

// IsCall returns true if the instruction is a subroutine call.
func (i Instruction) IsCall() bool {
	return i.ins == chip8.CallInst
}

// IsReturn returns true if the instruction returns from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.ins == chip8.RetInst
}

// IsJump returns true if the instruction is an unconditional jump.
func (i Instruction) IsJump() bool {
	return i.ins == chip8.JpInst
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}

// Code returns the assembly text of the instruction.
func (i Instruction) Code() string {
	switch {
	case i.IsData():
		return fmt.Sprintf(".word $%04X", i.Opcode)
	case i.Operands == "":
		return i.Name
	default:
		return i.Name + " " + i.Operands
	}
}

func (i Instruction) String() string {
	return fmt.Sprintf("$%04X: %04X %s", i.Address, i.Opcode, i.Code())
}

// lookup returns the first retrogolib opcode definition matching the word.
func lookup(word uint16) (chip8.Opcode, bool) {
	opcodes := chip8.Opcodes[int(word>>12)]
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}

// operands formats the operands of a known instruction word.
func operands(word uint16) string {
	x := (word >> 8) & 0xF
	y := (word >> 4) & 0xF
	kk := word & 0xFF
	nnn := word & 0x0FFF
	n := word & 0xF

	switch word >> 12 {
	case 0x0:
		if word == 0x00E0 || word == 0x00EE {
			return ""
		}
		return fmt.Sprintf("$%03X", nnn)
	case 0x1, 0x2:
		return fmt.Sprintf("$%03X", nnn)
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", x, kk)
	case 0x5, 0x9:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0x8:
		if n == 0x6 || n == 0xE {
			return fmt.Sprintf("V%X", x)
		}
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", nnn)
	case 0xB:
		return fmt.Sprintf("V0, $%03X", nnn)
	case 0xD:
		return fmt.Sprintf("V%X, V%X, %d", x, y, n)
	case 0xE:
		return fmt.Sprintf("V%X", x)
	default:
		return timerOperands(x, kk)
	}
}

func timerOperands(x, kk uint16) string {
	switch kk {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	default:
		return fmt.Sprintf("V%X", x)
	}
}
