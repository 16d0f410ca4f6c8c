package chip8

import "fmt"

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Fields contains the bit fields of a decoded opcode. The fields overlap,
// the instruction template defines which of them are meaningful.
type Fields struct {
	Opcode uint16
	Group  uint8  // bits 12-15
	X      uint8  // bits 8-11
	Y      uint8  // bits 4-7
	KK     uint8  // bits 0-7
	NNN    uint16 // bits 0-11
	N      uint8  // bits 0-3
}

// Decode splits an opcode into its fields.
func Decode(opcode uint16) Fields {
	return Fields{
		Opcode: opcode,
		Group:  uint8(opcode >> 12),
		X:      uint8(opcode>>8) & 0xF,
		Y:      uint8(opcode>>4) & 0xF,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
		N:      uint8(opcode) & 0xF,
	}
}

type handler func(m *machine, f Fields) error

// Template describes an instruction by a pattern of 4 nibbles. Every nibble
// is either a hex digit that has to match or one of the wildcards
// x, y (register index), k (immediate byte) and n (address or final nibble).
type Template struct {
	Pattern string
	Mask    uint16 // set for every literal nibble
	Value   uint16 // literal nibbles, wildcards are zero

	execute handler
}

// Matches returns whether the opcode matches all literal nibbles of the template.
func (t *Template) Matches(opcode uint16) bool {
	return opcode&t.Mask == t.Value
}

// instructions is the dispatch table. It is searched in order and the first
// matching template wins, so the specific 00E0 and 00EE have to precede 0nnn.
var instructions = []*Template{
	mustTemplate("00e0", (*machine).clearDisplay),
	mustTemplate("00ee", (*machine).returnFromSubroutine),
	mustTemplate("1nnn", (*machine).jump),
	mustTemplate("2nnn", (*machine).call),
	mustTemplate("3xkk", (*machine).skipEqualImmediate),
	mustTemplate("4xkk", (*machine).skipNotEqualImmediate),
	mustTemplate("5xy0", (*machine).skipEqualRegister),
	mustTemplate("6xkk", (*machine).loadImmediate),
	mustTemplate("7xkk", (*machine).addImmediate),
	mustTemplate("8xy0", (*machine).move),
	mustTemplate("8xy1", (*machine).or),
	mustTemplate("8xy2", (*machine).and),
	mustTemplate("8xy3", (*machine).xor),
	mustTemplate("8xy4", (*machine).addWithCarry),
	mustTemplate("8xy5", (*machine).subtract),
	mustTemplate("8xy6", (*machine).shiftRight),
	mustTemplate("8xy7", (*machine).subtractReverse),
	mustTemplate("8xye", (*machine).shiftLeft),
	mustTemplate("9xy0", (*machine).skipNotEqualRegister),
	mustTemplate("annn", (*machine).loadAddress),
	mustTemplate("bnnn", (*machine).jumpIndexed),
	mustTemplate("cxkk", (*machine).loadRandom),
	mustTemplate("dxyn", (*machine).draw),
	mustTemplate("ex9e", (*machine).skipKeyPressed),
	mustTemplate("exa1", (*machine).skipKeyNotPressed),
	mustTemplate("fx07", (*machine).readDelayTimer),
	mustTemplate("fx0a", (*machine).waitForKey),
	mustTemplate("fx15", (*machine).setDelayTimer),
	mustTemplate("fx18", (*machine).setSoundTimer),
	mustTemplate("fx1e", (*machine).addAddress),
	mustTemplate("fx29", (*machine).loadGlyphAddress),
	mustTemplate("fx33", (*machine).storeBCD),
	mustTemplate("fx55", (*machine).storeRegisters),
	mustTemplate("fx65", (*machine).loadRegisters),
	mustTemplate("0nnn", (*machine).systemCall),
}

// Lookup returns the first template matching the opcode.
func Lookup(opcode uint16) (*Template, bool) {
	for _, t := range instructions {
		if t.Matches(opcode) {
			return t, true
		}
	}
	return nil, false
}

// Templates returns the dispatch table in priority order.
func Templates() []*Template {
	templates := make([]*Template, len(instructions))
	copy(templates, instructions)
	return templates
}

// compileTemplate converts a pattern into its literal mask and value.
func compileTemplate(pattern string) (mask, value uint16, err error) {
	if len(pattern) != 4 {
		return 0, 0, fmt.Errorf("pattern '%s' has %d nibbles instead of 4", pattern, len(pattern))
	}

	for _, c := range []byte(pattern) {
		mask <<= 4
		value <<= 4

		switch {
		case c >= '0' && c <= '9':
			value |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			value |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			value |= uint16(c-'A') + 10
		case c == 'x', c == 'y', c == 'k', c == 'n':
			continue
		default:
			return 0, 0, fmt.Errorf("pattern '%s' contains invalid nibble '%c'", pattern, c)
		}
		mask |= 0xF
	}
	return mask, value, nil
}

func mustTemplate(pattern string, execute handler) *Template {
	mask, value, err := compileTemplate(pattern)
	if err != nil {
		panic(err)
	}
	return &Template{
		Pattern: pattern,
		Mask:    mask,
		Value:   value,
		execute: execute,
	}
}
