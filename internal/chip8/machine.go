package chip8

// machine is the complete mutable state of one interpreter run.
// A new machine is created for every loaded ROM.
type machine struct {
	memory    *Memory
	registers Registers
	stack     Stack
	display   Display
	timers    Timers
	keys      [KeyCount]bool
	random    Random

	runnable bool
	halted   bool
	cycles   uint64
}

func newMachine(font []byte, clockSpeed int, random Random) *machine {
	return &machine{
		memory:    newMemory(font),
		registers: newRegisters(),
		timers:    newTimers(clockSpeed),
		random:    random,
	}
}

// step executes a single cycle: timer update, fetch, decode and dispatch.
func (m *machine) step() error {
	m.timers.Advance(1)

	pc := m.registers.PC
	opcode, err := m.memory.ReadWord(pc)
	if err != nil {
		return &OpcodeError{PC: pc, Err: err}
	}
	m.registers.PC += opcodeSize
	m.cycles++

	t, ok := Lookup(opcode)
	if !ok {
		return &OpcodeError{PC: pc, Opcode: opcode, Err: ErrUnknownOpcode}
	}
	if err := t.execute(m, Decode(opcode)); err != nil {
		return &OpcodeError{PC: pc, Opcode: opcode, Err: err}
	}
	return nil
}
