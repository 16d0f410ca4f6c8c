// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/cli"
)

const programName = "retrochip8"

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	var opts options.Program
	flags := cli.NewFlagSet(programName)
	flags.AddSection("Interpreter options", &opts.Flags)
	flags.AddSection("Output options", &opts.OutputFlags)
	flags.AddPositional(&opts.Parameters)

	remaining, err := flags.Parse(os.Args[1:])
	if err != nil {
		var missingArgs *cli.MissingArgsError
		if errors.As(err, &missingArgs) {
			return opts, &UsageError{flags: flags}
		}
		// the flag set already printed the usage for help requests and
		// malformed flags
		return opts, &UsageError{msg: err.Error()}
	}

	if err := validateArgs(remaining); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *cli.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	if e.flags != nil {
		e.flags.ShowUsage()
	}
}

// validateArgs checks the arguments that remain after the ROM file
func validateArgs(args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 0 {
		return &UsageError{
			msg: fmt.Sprintf("Only one ROM file can be run, got %d", len(args)+1),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.DebugLevel < 0 {
		return fmt.Errorf("invalid debug level %d, must not be negative", opts.DebugLevel)
	}
	if opts.ClockSpeed <= 0 {
		return fmt.Errorf("invalid clock speed %d, must be positive", opts.ClockSpeed)
	}
	if opts.FPS < 0 {
		return fmt.Errorf("invalid frame rate %d, must not be negative", opts.FPS)
	}
	if opts.FPS > opts.ClockSpeed {
		return fmt.Errorf("frame rate %d exceeds clock speed %d", opts.FPS, opts.ClockSpeed)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d, must not be negative", opts.Frames)
	}

	keys, err := parseKeys(opts.Keys)
	if err != nil {
		return err
	}
	opts.KeyList = keys
	return nil
}

// parseKeys parses a comma separated list of hexadecimal keypad keys.
func parseKeys(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	keys := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		key, err := strconv.ParseUint(part, 16, 8)
		if err != nil || key >= chip8.KeyCount {
			return nil, fmt.Errorf("invalid key '%s', valid keys are 0-F", part)
		}
		keys = append(keys, int(key))
	}
	return keys, nil
}
