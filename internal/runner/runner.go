// Package runner drives an interpreter at a fixed clock speed and presents
// its display at a fixed frame rate.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Machine is the interpreter interface used by the runner.
type Machine interface {
	ExecuteCycle() error
	RenderInto(frame []byte) error
	ShouldBeep() bool
	UpdateKey(index int, pressed bool) error
	Halted() bool
}

// Presenter shows rendered frames.
type Presenter interface {
	Present(frame []byte) error
}

// Options controls the pacing of a run.
type Options struct {
	ClockSpeed int   // cycles per second
	FPS        int   // frames per second, 0 runs unpaced
	Frames     int   // frames to run, 0 runs until cancelled
	Keys       []int // keys held down for the whole run
}

// Stats summarizes a finished run.
type Stats struct {
	Frames int
	Cycles int
}

// Runner executes a machine frame by frame.
type Runner struct {
	logger    *log.Logger
	machine   Machine
	presenter Presenter
	opts      Options

	frame    []byte
	beeping  bool
	interval time.Duration
	perFrame int
}

// New returns a runner. The presenter can be nil to run without output.
func New(logger *log.Logger, machine Machine, presenter Presenter, opts Options) *Runner {
	if opts.ClockSpeed <= 0 {
		opts.ClockSpeed = chip8.DefaultClockSpeed
	}
	if opts.FPS < 0 {
		opts.FPS = 0
	}

	r := &Runner{
		logger:    logger,
		machine:   machine,
		presenter: presenter,
		opts:      opts,
		frame:     make([]byte, chip8.FrameSize),
	}

	rate := opts.FPS
	if rate == 0 {
		rate = chip8.TimerFrequency
	} else {
		r.interval = time.Second / time.Duration(opts.FPS)
	}
	r.perFrame = max(opts.ClockSpeed/rate, 1)
	return r
}

// CyclesPerFrame returns the number of cycles executed between two frames.
func (r *Runner) CyclesPerFrame() int {
	return r.perFrame
}

// Run executes frames until the context is cancelled, the frame limit is
// reached or the machine halts. An interpreter fault is returned as error.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	for _, key := range r.opts.Keys {
		if err := r.machine.UpdateKey(key, true); err != nil {
			return stats, fmt.Errorf("pressing key: %w", err)
		}
	}

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for r.opts.Frames == 0 || stats.Frames < r.opts.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return stats, fmt.Errorf("running: %w", ctx.Err())
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("running: %w", err)
		}

		cycles, err := r.runFrame()
		stats.Cycles += cycles
		if err != nil {
			return stats, err
		}
		stats.Frames++

		if err := r.present(); err != nil {
			return stats, err
		}
		if r.machine.Halted() {
			r.logger.Debug("Machine halted", log.Int("frames", stats.Frames))
			return stats, nil
		}
	}

	return stats, nil
}

func (r *Runner) runFrame() (int, error) {
	for i := range r.perFrame {
		if err := r.machine.ExecuteCycle(); err != nil {
			var opErr *chip8.OpcodeError
			if errors.As(err, &opErr) {
				r.logger.Debug("Interpreter fault",
					log.Hex("pc", opErr.PC),
					log.Hex("opcode", opErr.Opcode),
				)
			}
			return i + 1, fmt.Errorf("executing cycle: %w", err)
		}
	}

	beeping := r.machine.ShouldBeep()
	if beeping != r.beeping {
		r.beeping = beeping
		if beeping {
			r.logger.Debug("Beep started")
		} else {
			r.logger.Debug("Beep stopped")
		}
	}
	return r.perFrame, nil
}

func (r *Runner) present() error {
	if r.presenter == nil {
		return nil
	}
	if err := r.machine.RenderInto(r.frame); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	if err := r.presenter.Present(r.frame); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	return nil
}
