package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func frameWith(pixels ...[2]int) []byte {
	frame := make([]byte, chip8.FrameSize)
	for i := 0; i < len(frame); i += chip8.BytesPerPixel {
		copy(frame[i:], chip8.PixelOff[:])
	}
	for _, p := range pixels {
		offset := (p[1]*chip8.Width + p[0]) * chip8.BytesPerPixel
		copy(frame[offset:], chip8.PixelOn[:])
	}
	return frame
}

func TestPresent(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf)

	frame := frameWith([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 0}, [2]int{2, 1})
	assert.NoError(t, term.Present(frame))

	lines := strings.Split(buf.String(), "\n")
	assert.Len(t, lines, chip8.Height/2+1)
	assert.Equal(t, chip8.Width, len([]rune(lines[0])))
	assert.True(t, strings.HasPrefix(lines[0], "▀▄█ "))
	assert.Equal(t, strings.Repeat(" ", chip8.Width), lines[1])
	assert.False(t, strings.Contains(buf.String(), "\x1b"))
	assert.Equal(t, 1, term.Frames())
}

func TestPresentSkipsUnchanged(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf)

	frame := frameWith([2]int{5, 5})
	assert.NoError(t, term.Present(frame))
	size := buf.Len()

	assert.NoError(t, term.Present(frame))
	assert.Equal(t, size, buf.Len())
	assert.Equal(t, 1, term.Frames())

	assert.NoError(t, term.Present(frameWith([2]int{6, 5})))
	assert.Equal(t, 2*size, buf.Len())
	assert.Equal(t, 2, term.Frames())
}

func TestPresentANSI(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf)
	term.ansi = true

	assert.NoError(t, term.Present(frameWith()))
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen+cursorHome))

	buf.Reset()
	assert.NoError(t, term.Present(frameWith([2]int{0, 0})))
	assert.True(t, strings.HasPrefix(buf.String(), cursorHome))
	assert.False(t, strings.Contains(buf.String(), clearScreen))
}

func TestPresentInvalidFrame(t *testing.T) {
	term := NewWriter(&bytes.Buffer{})
	err := term.Present(make([]byte, 10))
	assert.True(t, errors.Is(err, chip8.ErrBufferSize))
	assert.Equal(t, 0, term.Frames())
}

func TestFitsNonTerminal(t *testing.T) {
	term := NewWriter(&bytes.Buffer{})
	assert.True(t, term.Fits())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPresentWriteError(t *testing.T) {
	term := NewWriter(failingWriter{})
	err := term.Present(frameWith())
	assert.ErrorContains(t, err, "writing frame")
	assert.Equal(t, 0, term.Frames())
}
