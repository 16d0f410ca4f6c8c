package chip8

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// 00E0 - CLS
func (m *machine) clearDisplay(Fields) error {
	m.display.Clear()
	return nil
}

// 00EE - RET
func (m *machine) returnFromSubroutine(Fields) error {
	address, err := m.stack.Pop()
	if err != nil {
		return err
	}
	m.registers.PC = address
	return nil
}

// 0nnn - SYS addr, machine code routines of the host CPU are not supported and ignored.
func (m *machine) systemCall(Fields) error {
	return nil
}

// 1nnn - JP addr
func (m *machine) jump(f Fields) error {
	m.registers.PC = f.NNN
	return nil
}

// 2nnn - CALL addr
func (m *machine) call(f Fields) error {
	if err := m.stack.Push(m.registers.PC); err != nil {
		return err
	}
	m.registers.PC = f.NNN
	return nil
}

// 3xkk - SE Vx, byte
func (m *machine) skipEqualImmediate(f Fields) error {
	if m.registers.V[f.X] == f.KK {
		m.registers.skip()
	}
	return nil
}

// 4xkk - SNE Vx, byte
func (m *machine) skipNotEqualImmediate(f Fields) error {
	if m.registers.V[f.X] != f.KK {
		m.registers.skip()
	}
	return nil
}

// 5xy0 - SE Vx, Vy
func (m *machine) skipEqualRegister(f Fields) error {
	if m.registers.V[f.X] == m.registers.V[f.Y] {
		m.registers.skip()
	}
	return nil
}

// 6xkk - LD Vx, byte
func (m *machine) loadImmediate(f Fields) error {
	m.registers.V[f.X] = f.KK
	return nil
}

// 7xkk - ADD Vx, byte, does not affect VF.
func (m *machine) addImmediate(f Fields) error {
	m.registers.V[f.X] += f.KK
	return nil
}

// 8xy0 - LD Vx, Vy
func (m *machine) move(f Fields) error {
	m.registers.V[f.X] = m.registers.V[f.Y]
	return nil
}

// 8xy1 - OR Vx, Vy
func (m *machine) or(f Fields) error {
	m.registers.V[f.X] |= m.registers.V[f.Y]
	return nil
}

// 8xy2 - AND Vx, Vy
func (m *machine) and(f Fields) error {
	m.registers.V[f.X] &= m.registers.V[f.Y]
	return nil
}

// 8xy3 - XOR Vx, Vy
func (m *machine) xor(f Fields) error {
	m.registers.V[f.X] ^= m.registers.V[f.Y]
	return nil
}

// The flag setting ALU instructions write VF after the result,
// so the flag survives when Vx is VF.

// 8xy4 - ADD Vx, Vy
func (m *machine) addWithCarry(f Fields) error {
	sum := uint16(m.registers.V[f.X]) + uint16(m.registers.V[f.Y])
	m.registers.V[f.X] = uint8(sum)
	m.registers.V[FlagRegister] = boolToFlag(sum > 0xFF)
	return nil
}

// 8xy5 - SUB Vx, Vy, VF is set to NOT borrow.
func (m *machine) subtract(f Fields) error {
	vx, vy := m.registers.V[f.X], m.registers.V[f.Y]
	m.registers.V[f.X] = vx - vy
	m.registers.V[FlagRegister] = boolToFlag(vx >= vy)
	return nil
}

// 8xy6 - SHR Vx
func (m *machine) shiftRight(f Fields) error {
	vx := m.registers.V[f.X]
	m.registers.V[f.X] = vx >> 1
	m.registers.V[FlagRegister] = vx & 0x01
	return nil
}

// 8xy7 - SUBN Vx, Vy, VF is set to NOT borrow.
func (m *machine) subtractReverse(f Fields) error {
	vx, vy := m.registers.V[f.X], m.registers.V[f.Y]
	m.registers.V[f.X] = vy - vx
	m.registers.V[FlagRegister] = boolToFlag(vy >= vx)
	return nil
}

// 8xyE - SHL Vx
func (m *machine) shiftLeft(f Fields) error {
	vx := m.registers.V[f.X]
	m.registers.V[f.X] = vx << 1
	m.registers.V[FlagRegister] = vx >> 7
	return nil
}

// 9xy0 - SNE Vx, Vy
func (m *machine) skipNotEqualRegister(f Fields) error {
	if m.registers.V[f.X] != m.registers.V[f.Y] {
		m.registers.skip()
	}
	return nil
}

// Annn - LD I, addr
func (m *machine) loadAddress(f Fields) error {
	m.registers.I = f.NNN
	return nil
}

// Bnnn - JP V0, addr
func (m *machine) jumpIndexed(f Fields) error {
	m.registers.PC = f.NNN + uint16(m.registers.V[0])
	return nil
}

// Cxkk - RND Vx, byte
func (m *machine) loadRandom(f Fields) error {
	m.registers.V[f.X] = m.random.Byte() & f.KK
	return nil
}

// Dxyn - DRW Vx, Vy, nibble
func (m *machine) draw(f Fields) error {
	sprite, err := m.memory.slice(m.registers.I, int(f.N))
	if err != nil {
		return err
	}

	x := int(m.registers.V[f.X])
	y := int(m.registers.V[f.Y])
	m.registers.V[FlagRegister] = 0
	collision := m.display.DrawSprite(x, y, sprite)
	m.registers.V[FlagRegister] = boolToFlag(collision)
	return nil
}

// Ex9E - SKP Vx
func (m *machine) skipKeyPressed(f Fields) error {
	if m.keys[m.registers.V[f.X]&0xF] {
		m.registers.skip()
	}
	return nil
}

// ExA1 - SKNP Vx
func (m *machine) skipKeyNotPressed(f Fields) error {
	if !m.keys[m.registers.V[f.X]&0xF] {
		m.registers.skip()
	}
	return nil
}

// Fx07 - LD Vx, DT
func (m *machine) readDelayTimer(f Fields) error {
	m.registers.V[f.X] = m.timers.Delay.Value()
	return nil
}

// Fx0A - LD Vx, K. Without a pressed key the program counter is moved back
// so that the instruction gets executed again in the next cycle.
func (m *machine) waitForKey(f Fields) error {
	for key, pressed := range m.keys {
		if pressed {
			m.registers.V[f.X] = uint8(key)
			return nil
		}
	}
	m.registers.PC -= opcodeSize
	return nil
}

// Fx15 - LD DT, Vx
func (m *machine) setDelayTimer(f Fields) error {
	m.timers.Delay.Set(m.registers.V[f.X])
	return nil
}

// Fx18 - LD ST, Vx
func (m *machine) setSoundTimer(f Fields) error {
	m.timers.Sound.Set(m.registers.V[f.X])
	return nil
}

// Fx1E - ADD I, Vx
func (m *machine) addAddress(f Fields) error {
	m.registers.I += uint16(m.registers.V[f.X])
	return nil
}

// Fx29 - LD F, Vx
func (m *machine) loadGlyphAddress(f Fields) error {
	m.registers.I = uint16(m.registers.V[f.X]) * glyphSize
	return nil
}

// Fx33 - LD B, Vx
func (m *machine) storeBCD(f Fields) error {
	digits, err := m.memory.slice(m.registers.I, 3)
	if err != nil {
		return err
	}
	vx := m.registers.V[f.X]
	digits[0] = vx / 100
	digits[1] = vx / 10 % 10
	digits[2] = vx % 10
	return nil
}

// Fx55 - LD [I], Vx, stores V0 through Vx and advances I past the stored bytes.
func (m *machine) storeRegisters(f Fields) error {
	count := int(f.X) + 1
	mem, err := m.memory.slice(m.registers.I, count)
	if err != nil {
		return err
	}
	copy(mem, m.registers.V[:count])
	m.registers.I += uint16(count)
	return nil
}

// Fx65 - LD Vx, [I], loads V0 through Vx and advances I past the loaded bytes.
func (m *machine) loadRegisters(f Fields) error {
	count := int(f.X) + 1
	mem, err := m.memory.slice(m.registers.I, count)
	if err != nil {
		return err
	}
	copy(m.registers.V[:count], mem)
	m.registers.I += uint16(count)
	return nil
}
