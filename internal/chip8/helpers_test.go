package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// program converts instruction words into a ROM image.
func program(words ...uint16) []byte {
	rom := make([]byte, 0, len(words)*opcodeSize)
	for _, word := range words {
		rom = append(rom, byte(word>>8), byte(word))
	}
	return rom
}

// newLoaded returns an interpreter with a deterministic random source
// running the given instruction words.
func newLoaded(t *testing.T, words ...uint16) *Interpreter {
	t.Helper()
	interp := New(WithRandom(NewSeededRandom(1)))
	assert.NoError(t, interp.LoadBytes(program(words...)))
	return interp
}

// run executes the given number of cycles and expects all of them to succeed.
func run(t *testing.T, interp *Interpreter, cycles int) {
	t.Helper()
	for range cycles {
		assert.NoError(t, interp.ExecuteCycle())
	}
}
