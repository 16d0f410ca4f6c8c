package disasm

import (
	"fmt"
	"io"
)

// Options controls the listing output.
type Options struct {
	HexComments bool // output opcode bytes and addresses as comments
	ZeroBytes   bool // output the trailing zero bytes of the ROM
}

// Writer writes CHIP-8 assembly listings.
type Writer struct {
	writer  io.Writer
	options Options
}

// NewWriter creates a new listing writer.
func NewWriter(writer io.Writer, options Options) *Writer {
	return &Writer{
		writer:  writer,
		options: options,
	}
}

const (
	funcNaming  = "_func_%03x"
	labelNaming = "_label_%03x"
)

// Write disassembles the ROM that is loaded at the base address and writes the listing.
func (w *Writer) Write(rom []byte, base uint16) error {
	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 ROM Disassembly\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, ".org $%03X\n\n", base); err != nil {
		return fmt.Errorf("writing org directive: %w", err)
	}

	end := w.endIndex(rom)
	code := decodeAll(rom[:end], base)
	labels := collectLabels(code, base, end)

	var previous Instruction
	for _, ins := range code {
		if name, ok := labels[ins.Address]; ok {
			if _, err := fmt.Fprintf(w.writer, "%s:\n", name); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}
		if err := w.writeCode(ins, previous.IsSkip()); err != nil {
			return err
		}
		previous = ins
	}

	if end%opcodeSize != 0 {
		address := base + uint16(end-1)
		if err := w.writeData(address, rom[end-1]); err != nil {
			return err
		}
	}
	return nil
}

// decodeAll decodes all complete words of the ROM.
func decodeAll(rom []byte, base uint16) []Instruction {
	code := make([]Instruction, 0, len(rom)/opcodeSize)
	for i := 0; i+1 < len(rom); i += opcodeSize {
		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		code = append(code, Decode(base+uint16(i), word))
	}
	return code
}

// collectLabels names all call and jump destinations inside the listing.
// A destination that is called and jumped to is named as function.
func collectLabels(code []Instruction, base uint16, end int) map[uint16]string {
	labels := map[uint16]string{}
	limit := uint32(base) + uint32(end)

	for _, ins := range code {
		// BNNN jumps relative to V0, its destination is unknown
		absoluteJump := ins.IsJump() && ins.Opcode>>12 == 0x1
		if !ins.IsCall() && !absoluteJump {
			continue
		}

		destination := ins.Opcode & 0x0FFF
		if destination < base || uint32(destination) >= limit {
			continue
		}
		if ins.IsCall() {
			labels[destination] = fmt.Sprintf(funcNaming, destination)
			continue
		}
		if _, ok := labels[destination]; !ok {
			labels[destination] = fmt.Sprintf(labelNaming, destination)
		}
	}
	return labels
}

// writeCode writes an instruction, followed by an empty line after
// instructions that do not continue to the next address. A jump or return
// that can be skipped by the previous instruction does not end a block.
func (w *Writer) writeCode(ins Instruction, skippable bool) error {
	line := "    " + ins.Code()

	if w.options.HexComments {
		comment := fmt.Sprintf("$%04X  %02X %02X", ins.Address, ins.Opcode>>8, ins.Opcode&0xFF)
		if _, err := fmt.Fprintf(w.writer, "%-32s ; %s\n", line, comment); err != nil {
			return fmt.Errorf("writing code with comment: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
			return fmt.Errorf("writing code: %w", err)
		}
	}

	if (ins.IsJump() || ins.IsReturn()) && !skippable {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing separator: %w", err)
		}
	}
	return nil
}

// writeData writes a single trailing byte that does not form a complete word.
func (w *Writer) writeData(address uint16, b byte) error {
	line := fmt.Sprintf("    .byte $%02X", b)

	if w.options.HexComments {
		if _, err := fmt.Fprintf(w.writer, "%-32s ; $%04X\n", line, address); err != nil {
			return fmt.Errorf("writing data with comment: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	return nil
}

// endIndex returns the index after the last non zero byte of the ROM,
// rounded up to a complete word.
func (w *Writer) endIndex(rom []byte) int {
	if w.options.ZeroBytes {
		return len(rom)
	}

	for i := len(rom) - 1; i >= 0; i-- {
		if rom[i] != 0 {
			end := i + 1
			if end%opcodeSize != 0 && end < len(rom) {
				end++
			}
			return end
		}
	}
	return 0
}
