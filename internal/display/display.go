// Package display presents rendered CHIP-8 frames on a terminal.
package display

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"golang.org/x/term"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"

	// each text row shows two display rows using half block characters
	textRows = chip8.Height / 2
)

// Terminal presents frames as text using half block characters.
type Terminal struct {
	out  io.Writer
	fd   int
	ansi bool

	buf    bytes.Buffer
	last   []byte
	frames int
}

// New returns a presenter writing to the given file. Cursor control
// sequences are only emitted if the file is a terminal.
func New(file *os.File) *Terminal {
	fd := int(file.Fd())
	return &Terminal{
		out:  file,
		fd:   fd,
		ansi: term.IsTerminal(fd),
	}
}

// NewWriter returns a presenter writing plain frames to w.
func NewWriter(w io.Writer) *Terminal {
	return &Terminal{
		out: w,
		fd:  -1,
	}
}

// Fits returns whether the terminal is large enough to show a full frame.
// Non terminal outputs always fit.
func (t *Terminal) Fits() bool {
	if !t.ansi {
		return true
	}
	width, height, err := term.GetSize(t.fd)
	if err != nil {
		return true
	}
	return width >= chip8.Width && height > textRows
}

// Frames returns the number of frames that were written.
func (t *Terminal) Frames() int {
	return t.frames
}

// Present writes the frame if it differs from the previously presented one.
func (t *Terminal) Present(frame []byte) error {
	if len(frame) != chip8.FrameSize {
		return fmt.Errorf("%w: got %d bytes, expected %d", chip8.ErrBufferSize, len(frame), chip8.FrameSize)
	}
	if t.last != nil && bytes.Equal(t.last, frame) {
		return nil
	}

	t.buf.Reset()
	if t.ansi {
		if t.last == nil {
			t.buf.WriteString(clearScreen)
		}
		t.buf.WriteString(cursorHome)
	}
	t.render(frame)

	if _, err := t.out.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	if t.last == nil {
		t.last = make([]byte, len(frame))
	}
	copy(t.last, frame)
	t.frames++
	return nil
}

func (t *Terminal) render(frame []byte) {
	for row := range textRows {
		for x := range chip8.Width {
			upper := lit(frame, x, row*2)
			lower := lit(frame, x, row*2+1)

			switch {
			case upper && lower:
				t.buf.WriteRune('█')
			case upper:
				t.buf.WriteRune('▀')
			case lower:
				t.buf.WriteRune('▄')
			default:
				t.buf.WriteByte(' ')
			}
		}
		t.buf.WriteByte('\n')
	}
}

// lit returns whether the pixel at the given position is set, judged by
// its red channel.
func lit(frame []byte, x, y int) bool {
	offset := (y*chip8.Width + x) * chip8.BytesPerPixel
	return frame[offset] != 0
}
