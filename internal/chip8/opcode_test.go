package chip8

import (
	"testing"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	f := Decode(0xD12F)

	assert.Equal(t, uint16(0xD12F), f.Opcode)
	assert.Equal(t, uint8(0xD), f.Group)
	assert.Equal(t, uint8(0x1), f.X)
	assert.Equal(t, uint8(0x2), f.Y)
	assert.Equal(t, uint8(0x2F), f.KK)
	assert.Equal(t, uint16(0x12F), f.NNN)
	assert.Equal(t, uint8(0xF), f.N)
}

func TestCompileTemplate(t *testing.T) {
	tests := []struct {
		pattern string
		mask    uint16
		value   uint16
		wantErr bool
	}{
		{pattern: "00e0", mask: 0xFFFF, value: 0x00E0},
		{pattern: "00EE", mask: 0xFFFF, value: 0x00EE},
		{pattern: "1nnn", mask: 0xF000, value: 0x1000},
		{pattern: "8xy4", mask: 0xF00F, value: 0x8004},
		{pattern: "Dxyn", mask: 0xF000, value: 0xD000},
		{pattern: "fx1e", mask: 0xF0FF, value: 0xF01E},
		{pattern: "3xkk", mask: 0xF000, value: 0x3000},
		{pattern: "00e", wantErr: true},
		{pattern: "00e0e", wantErr: true},
		{pattern: "0g00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			mask, value, err := compileTemplate(tt.pattern)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.mask, mask)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestTemplates(t *testing.T) {
	templates := Templates()
	assert.Len(t, templates, 35)

	seen := map[string]bool{}
	for _, tmpl := range templates {
		assert.False(t, seen[tmpl.Pattern], "duplicate pattern %s", tmpl.Pattern)
		seen[tmpl.Pattern] = true
		assert.NotNil(t, tmpl.execute)
		assert.True(t, tmpl.Matches(tmpl.Value))
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		opcode  uint16
		pattern string
	}{
		{0x00E0, "00e0"},
		{0x00EE, "00ee"},
		{0x0000, "0nnn"},
		{0x0123, "0nnn"},
		{0x1FFF, "1nnn"},
		{0x2200, "2nnn"},
		{0x5AB0, "5xy0"},
		{0x8AB4, "8xy4"},
		{0x8ABE, "8xye"},
		{0xD015, "dxyn"},
		{0xE59E, "ex9e"},
		{0xE5A1, "exa1"},
		{0xF00A, "fx0a"},
		{0xFF65, "fx65"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tmpl, ok := Lookup(tt.opcode)
			assert.True(t, ok)
			assert.Equal(t, tt.pattern, tmpl.Pattern)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, opcode := range []uint16{0x5121, 0x8008, 0x800F, 0x9001, 0xE000, 0xE09F, 0xF000, 0xF0FF, 0xFFFF} {
		_, ok := Lookup(opcode)
		assert.False(t, ok, "opcode %04X", opcode)
	}
}

// Only the clear screen and return opcodes overlap with another template,
// the table order resolves them.
func TestTemplates_Overlap(t *testing.T) {
	templates := Templates()

	for opcode := range 0x10000 {
		var matches []string
		for _, tmpl := range templates {
			if tmpl.Matches(uint16(opcode)) {
				matches = append(matches, tmpl.Pattern)
			}
		}

		switch opcode {
		case 0x00E0, 0x00EE:
			assert.Len(t, matches, 2)
		default:
			if len(matches) > 1 {
				t.Fatalf("opcode %04X matches %v", opcode, matches)
			}
		}
	}
}

func TestTemplatesMatchCPUOpcodes(t *testing.T) {
	var definitions int
	for _, opcodes := range cpu.Opcodes {
		definitions += len(opcodes)
	}

	shared := 0
	for _, tmpl := range instructions {
		found := false
		for _, op := range cpu.Opcodes[tmpl.Value>>12] {
			if op.Info.Mask == tmpl.Mask && op.Info.Value == tmpl.Value {
				found = true
				break
			}
		}

		// SYS is not defined by the CPU and executes as no-op
		if tmpl.Pattern == "0nnn" {
			assert.False(t, found)
			continue
		}
		assert.True(t, found, "template %s", tmpl.Pattern)
		shared++
	}

	assert.Equal(t, len(instructions)-1, shared)
	assert.Equal(t, definitions, shared)
}
