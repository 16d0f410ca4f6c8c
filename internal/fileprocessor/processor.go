// Package fileprocessor handles ROM file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete workflow for a ROM file, it either
// writes a disassembly listing or runs the ROM.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, output io.Writer) error {
	if opts.Disasm {
		return Disassemble(logger, opts, output)
	}
	return Run(ctx, logger, opts, output)
}

// Disassemble writes a listing of the ROM to the output.
func Disassemble(logger *log.Logger, opts options.Program, output io.Writer) error {
	rom, err := loader.New(chip8.MaxROMSize).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	logger.Debug("Disassembling ROM", log.String("file", opts.Input), log.Int("size", len(rom)))

	writer := disasm.NewWriter(output, disasm.Options{
		HexComments: !opts.NoHexComments,
		ZeroBytes:   opts.ZeroBytes,
	})
	if err := writer.Write(rom, chip8.ProgramStart); err != nil {
		return fmt.Errorf("writing disassembly: %w", err)
	}
	return nil
}

// Run loads the ROM into a new interpreter and executes it until the context
// is cancelled, the frame limit is reached or the interpreter faults.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, output io.Writer) error {
	interp := createInterpreter(logger, opts)
	if err := interp.Load(opts.Input); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	interp.SetDebugLevel(opts.DebugLevel)

	presenter := createPresenter(logger, opts, output)
	r := runner.New(logger, interp, presenter, runner.Options{
		ClockSpeed: opts.ClockSpeed,
		FPS:        opts.FPS,
		Frames:     opts.Frames,
		Keys:       opts.KeyList,
	})

	if !opts.Quiet {
		logger.Info("Running CHIP-8 ROM",
			log.String("file", opts.Input),
			log.Int("speed", opts.ClockSpeed),
			log.Int("fps", opts.FPS),
		)
	}

	stats, err := r.Run(ctx)
	logger.Debug("Run finished",
		log.Int("frames", stats.Frames),
		log.Int("cycles", stats.Cycles),
		log.Hex("pc", interp.PC()),
	)
	if err != nil {
		return fmt.Errorf("running ROM: %w", err)
	}
	return nil
}

func createInterpreter(logger *log.Logger, opts options.Program) *chip8.Interpreter {
	interpOptions := []chip8.Option{
		chip8.WithLogger(logger),
		chip8.WithClockSpeed(opts.ClockSpeed),
	}
	if opts.Seed >= 0 {
		interpOptions = append(interpOptions, chip8.WithRandom(chip8.NewSeededRandom(uint64(opts.Seed))))
	}
	return chip8.New(interpOptions...)
}

// createPresenter returns the frame presenter for the output, or nil if
// the display is disabled.
func createPresenter(logger *log.Logger, opts options.Program, output io.Writer) runner.Presenter {
	if opts.NoDisplay {
		return nil
	}

	file, ok := output.(*os.File)
	if !ok {
		return display.NewWriter(output)
	}

	term := display.New(file)
	if !term.Fits() {
		logger.Warn("Terminal is smaller than the display, output will be cut off",
			log.Int("width", chip8.Width),
			log.Int("height", chip8.Height/2+1),
		)
	}
	return term
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
