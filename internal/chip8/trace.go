package chip8

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// trace logs the machine state before the instruction at the program counter is executed.
func (i *Interpreter) trace() {
	m := i.m
	pc := m.registers.PC
	fields := []log.Field{
		log.Int("cycle", int(m.cycles)+1),
		log.Hex("pc", pc),
	}

	opcode, err := m.memory.ReadWord(pc)
	if err != nil {
		fields = append(fields, log.Err(err))
	} else {
		ins := disasm.Decode(pc, opcode)
		fields = append(fields,
			log.Hex("opcode", opcode),
			log.String("instruction", ins.Code()),
		)
	}

	fields = append(fields,
		log.Hex("i", m.registers.I),
		log.String("registers", formatRegisters(m.registers.V)),
		log.String("stack", formatStack(m.stack.Entries())),
		log.Uint8("delay", m.timers.Delay.Value()),
		log.Uint8("sound", m.timers.Sound.Value()),
	)
	i.logger.Debug("Cycle", fields...)

	if i.debugLevel < 2 {
		return
	}

	i.logger.Debug("Memory", log.String("dump", "\n"+hex.Dump(m.memory[:])))
	i.logger.Debug("Display", log.String("dump", "\n"+m.display.String()))
}

func formatRegisters(v [RegisterCount]uint8) string {
	var sb strings.Builder
	for index, value := range v {
		if index > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "V%X=%02X", index, value)
	}
	return sb.String()
}

func formatStack(entries []uint16) string {
	parts := make([]string, len(entries))
	for index, address := range entries {
		parts[index] = fmt.Sprintf("%03X", address)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
