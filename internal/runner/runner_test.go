package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fakeMachine struct {
	cycles   int
	failAt   int
	halted   bool
	beepFrom int
	keys     map[int]bool
	renders  int
}

func (m *fakeMachine) ExecuteCycle() error {
	m.cycles++
	if m.failAt > 0 && m.cycles == m.failAt {
		m.halted = true
		return &chip8.OpcodeError{PC: 0x200, Opcode: 0x5121, Err: chip8.ErrUnknownOpcode}
	}
	return nil
}

func (m *fakeMachine) RenderInto(frame []byte) error {
	if len(frame) != chip8.FrameSize {
		return chip8.ErrBufferSize
	}
	m.renders++
	return nil
}

func (m *fakeMachine) ShouldBeep() bool {
	return m.beepFrom > 0 && m.cycles >= m.beepFrom
}

func (m *fakeMachine) UpdateKey(index int, pressed bool) error {
	if index < 0 || index >= chip8.KeyCount {
		return chip8.ErrInvalidKey
	}
	if m.keys == nil {
		m.keys = map[int]bool{}
	}
	m.keys[index] = pressed
	return nil
}

func (m *fakeMachine) Halted() bool {
	return m.halted
}

type fakePresenter struct {
	frames int
	err    error
}

func (p *fakePresenter) Present(frame []byte) error {
	if p.err != nil {
		return p.err
	}
	p.frames++
	return nil
}

func TestCyclesPerFrame(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want int
	}{
		{"defaults", Options{ClockSpeed: 600, FPS: 60}, 10},
		{"unpaced", Options{ClockSpeed: 1200}, 20},
		{"fast frames", Options{ClockSpeed: 30, FPS: 60}, 1},
		{"invalid clock speed", Options{FPS: 60}, 10},
		{"negative frame rate", Options{ClockSpeed: 600, FPS: -5}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(log.NewTestLogger(t), &fakeMachine{}, nil, tt.opts)
			assert.Equal(t, tt.want, r.CyclesPerFrame())
		})
	}
}

func TestRunFrames(t *testing.T) {
	m := &fakeMachine{}
	p := &fakePresenter{}
	r := New(log.NewTestLogger(t), m, p, Options{ClockSpeed: 600, Frames: 5})

	stats, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, stats.Frames)
	assert.Equal(t, 50, stats.Cycles)
	assert.Equal(t, 50, m.cycles)
	assert.Equal(t, 5, p.frames)
	assert.Equal(t, 5, m.renders)
}

func TestRunPaced(t *testing.T) {
	m := &fakeMachine{}
	r := New(log.NewTestLogger(t), m, nil, Options{ClockSpeed: 1000, FPS: 1000, Frames: 3})

	stats, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Frames)
	assert.Equal(t, 3, m.cycles)
	assert.Equal(t, 0, m.renders)
}

func TestRunKeys(t *testing.T) {
	m := &fakeMachine{}
	r := New(log.NewTestLogger(t), m, nil, Options{Frames: 1, Keys: []int{1, 0xF}})

	_, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.True(t, m.keys[1])
	assert.True(t, m.keys[0xF])
	assert.False(t, m.keys[2])
}

func TestRunInvalidKey(t *testing.T) {
	r := New(log.NewTestLogger(t), &fakeMachine{}, nil, Options{Frames: 1, Keys: []int{16}})

	_, err := r.Run(context.Background())
	assert.True(t, errors.Is(err, chip8.ErrInvalidKey))
}

func TestRunFault(t *testing.T) {
	m := &fakeMachine{failAt: 15}
	p := &fakePresenter{}
	r := New(log.NewTestLogger(t), m, p, Options{ClockSpeed: 600, Frames: 10})

	stats, err := r.Run(context.Background())
	assert.True(t, errors.Is(err, chip8.ErrUnknownOpcode))
	assert.ErrorContains(t, err, "executing cycle")
	assert.Equal(t, 1, stats.Frames)
	assert.Equal(t, 15, stats.Cycles)
	assert.Equal(t, 1, p.frames)
}

func TestRunStopsWhenHalted(t *testing.T) {
	m := &fakeMachine{halted: true}
	r := New(log.NewTestLogger(t), m, nil, Options{})

	stats, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Frames)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &fakeMachine{}
	r := New(log.NewTestLogger(t), m, nil, Options{})

	stats, err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, stats.Frames)
	assert.Equal(t, 0, m.cycles)
}

func TestRunCancelledPaced(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(log.NewTestLogger(t), &fakeMachine{}, nil, Options{FPS: 1})

	_, err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunPresenterError(t *testing.T) {
	p := &fakePresenter{err: errors.New("closed")}
	r := New(log.NewTestLogger(t), &fakeMachine{}, p, Options{Frames: 3})

	stats, err := r.Run(context.Background())
	assert.ErrorContains(t, err, "presenting frame")
	assert.Equal(t, 1, stats.Frames)
}

func TestRunBeep(t *testing.T) {
	m := &fakeMachine{beepFrom: 15}
	r := New(log.NewTestLogger(t), m, nil, Options{ClockSpeed: 600, Frames: 2})

	_, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.True(t, r.beeping)
}

func TestRunFaultIsReturnedOnce(t *testing.T) {
	m := &fakeMachine{failAt: 1}
	r := New(log.NewTestLogger(t), m, nil, Options{Frames: 1})

	stats, err := r.Run(context.Background())
	assert.ErrorContains(t, err, "opcode 5121 at 200")
	assert.Equal(t, 0, stats.Frames)
	assert.Equal(t, 1, stats.Cycles)
}
