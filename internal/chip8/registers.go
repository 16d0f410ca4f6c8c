package chip8

import "fmt"

// Registers is the register file of the machine.
type Registers struct {
	V  [RegisterCount]uint8
	I  uint16
	PC uint16
}

func newRegisters() Registers {
	return Registers{PC: ProgramStart}
}

// skip advances the program counter over the next instruction.
func (r *Registers) skip() {
	r.PC += opcodeSize
}

// Stack is the bounded call stack of return addresses.
type Stack struct {
	entries [StackDepth]uint16
	depth   int
}

// Push stores a return address, failing if the stack is full.
func (s *Stack) Push(address uint16) error {
	if s.depth == StackDepth {
		return fmt.Errorf("pushing %03X at depth %d: %w", address, s.depth, ErrStackOverflow)
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

// Pop removes and returns the most recent return address, failing if the stack is empty.
func (s *Stack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	address := s.entries[s.depth]
	s.entries[s.depth] = 0
	return address, nil
}

// Depth returns the number of stored return addresses.
func (s *Stack) Depth() int {
	return s.depth
}

// Entries returns a copy of the stored return addresses, oldest first.
func (s *Stack) Entries() []uint16 {
	entries := make([]uint16, s.depth)
	copy(entries, s.entries[:s.depth])
	return entries
}
