// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"CHIP-8 ROM file to run" required:"true"`
}

// Flags contains behavior options.
type Flags struct {
	DebugLevel int    `flag:"d" usage:"debug level: 0 off, 1 trace every cycle, 2 also dump memory and display"`
	ClockSpeed int    `flag:"speed" usage:"cycles executed per second" default:"600"`
	FPS        int    `flag:"fps" usage:"frames presented per second, 0 runs unthrottled" default:"60"`
	Frames     int    `flag:"frames" usage:"stop after the given number of frames, 0 runs until interrupted"`
	Seed       int64  `flag:"seed" usage:"seed for the random number generator, negative uses system entropy" default:"-1"`
	Keys       string `flag:"keys" usage:"comma separated hex keys held down during the run, for example 1,4,f"`
	Quiet      bool   `flag:"q" usage:"perform operations quietly"`
}

// OutputFlags contains output options.
type OutputFlags struct {
	Disasm        bool `flag:"disasm" usage:"print a disassembly of the ROM instead of running it"`
	NoHexComments bool `flag:"nohexcomments" usage:"do not output addresses and opcode bytes as comments in the disassembly"`
	ZeroBytes     bool `flag:"z" usage:"output the trailing zero bytes in the disassembly"`
	NoDisplay     bool `flag:"nodisplay" usage:"do not draw the display on the terminal"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	OutputFlags

	KeyList []int // parsed Keys
}
