package chip8

import "fmt"

// Memory is the flat 4KB address space of the machine.
type Memory [MemorySize]byte

// newMemory returns a memory image with the given font loaded at address 0.
func newMemory(font []byte) *Memory {
	var m Memory
	copy(m[:], font)
	return &m
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, fmt.Errorf("reading %04X: %w", address, ErrAddressOutOfRange)
	}
	return m[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if address > MaxAddress {
		return fmt.Errorf("writing %04X: %w", address, ErrAddressOutOfRange)
	}
	m[address] = value
	return nil
}

// ReadWord returns the big-endian 16-bit word starting at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if address >= MaxAddress {
		return 0, fmt.Errorf("fetching word at %04X: %w", address, ErrAddressOutOfRange)
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}

// slice returns the memory range [address, address+length) after checking its bounds.
func (m *Memory) slice(address uint16, length int) ([]byte, error) {
	end := int(address) + length
	if end > MemorySize {
		return nil, fmt.Errorf("accessing %d bytes at %04X: %w", length, address, ErrAddressOutOfRange)
	}
	return m[address:end], nil
}

// loadProgram copies a ROM image into the program space.
func (m *Memory) loadProgram(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%d bytes exceed %d bytes: %w", len(rom), MaxROMSize, ErrRomTooLarge)
	}
	copy(m[ProgramStart:], rom)
	return nil
}
