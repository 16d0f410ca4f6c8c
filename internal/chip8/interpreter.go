package chip8

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrogolib/log"
)

// Interpreter is a CHIP-8 virtual machine. It is not safe for concurrent use,
// the owner drives it by calling ExecuteCycle at its chosen clock speed.
type Interpreter struct {
	logger     *log.Logger
	loader     *loader.Loader
	random     Random
	font       []byte
	clockSpeed int
	debugLevel int

	m *machine
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used for load messages and the debug trace.
func WithLogger(logger *log.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithRandom sets the random source of the RND instruction.
// A nil source is ignored.
func WithRandom(random Random) Option {
	return func(i *Interpreter) {
		if random != nil {
			i.random = random
		}
	}
}

// WithClockSpeed sets the number of cycles that the owner executes per second.
// It determines how many cycles make up one timer tick.
func WithClockSpeed(hz int) Option {
	return func(i *Interpreter) {
		if hz > 0 {
			i.clockSpeed = hz
		}
	}
}

// WithFont replaces the font set that is loaded at address 0x000.
// Data beyond the reserved area is ignored.
func WithFont(font []byte) Option {
	return func(i *Interpreter) {
		i.font = font[:min(len(font), ProgramStart)]
	}
}

// New returns a new interpreter that has no ROM loaded.
func New(options ...Option) *Interpreter {
	i := &Interpreter{
		loader:     loader.New(MaxROMSize),
		random:     NewRandom(),
		font:       Font[:],
		clockSpeed: DefaultClockSpeed,
	}
	for _, option := range options {
		option(i)
	}
	i.m = newMachine(i.font, i.clockSpeed, i.random)
	return i
}

// Load resets the machine and loads the ROM file at ProgramStart.
// On failure a *LoadError is returned and the machine is left unchanged.
func (i *Interpreter) Load(path string) error {
	rom, err := i.loader.Load(path)
	if err != nil {
		if errors.Is(err, loader.ErrTooLarge) {
			return &LoadError{Kind: RomTooLarge, Path: path, Err: fmt.Errorf("%w: %w", ErrRomTooLarge, err)}
		}
		return &LoadError{Kind: IoError, Path: path, Err: err}
	}

	if err := i.install(rom); err != nil {
		err.Path = path
		return err
	}

	if i.logger != nil {
		i.logger.Debug("ROM loaded",
			log.String("file", path),
			log.Int("size", len(rom)))
	}
	return nil
}

// LoadBytes resets the machine and loads the ROM image at ProgramStart.
// On failure a *LoadError is returned and the machine is left unchanged.
func (i *Interpreter) LoadBytes(rom []byte) error {
	if err := i.install(rom); err != nil {
		return err
	}
	return nil
}

// install replaces the current machine with a fresh one running the ROM.
func (i *Interpreter) install(rom []byte) *LoadError {
	m := newMachine(i.font, i.clockSpeed, i.random)
	if err := m.memory.loadProgram(rom); err != nil {
		return &LoadError{Kind: RomTooLarge, Err: err}
	}
	m.runnable = true
	i.m = m
	return nil
}

// SetDebugLevel sets the trace verbosity: 0 disables tracing, 1 traces the
// registers, stack and opcode of every cycle and 2 or higher additionally
// dumps memory and display. Enabling tracing reseeds the random source so
// that traces are reproducible.
func (i *Interpreter) SetDebugLevel(level int) {
	i.debugLevel = max(level, 0)
	if i.debugLevel > 0 {
		i.random.Seed(debugSeed)
	}
	if i.logger != nil {
		i.logger.Debug("Debug level set", log.Int("level", i.debugLevel))
	}
}

// DebugLevel returns the trace verbosity.
func (i *Interpreter) DebugLevel() int {
	return i.debugLevel
}

// ExecuteCycle advances the timers by one cycle and executes one instruction.
// It does nothing if no ROM is loaded or the machine was halted by an error.
// Execution errors are returned as *OpcodeError and halt the machine.
func (i *Interpreter) ExecuteCycle() error {
	if !i.Runnable() {
		return nil
	}

	if i.debugLevel > 0 && i.logger != nil {
		i.trace()
	}

	if err := i.m.step(); err != nil {
		i.m.halted = true
		return err
	}
	return nil
}

// UpdateKey sets the pressed state of one of the 16 keypad keys.
func (i *Interpreter) UpdateKey(index int, pressed bool) error {
	if index < 0 || index >= KeyCount {
		return fmt.Errorf("key %d: %w", index, ErrInvalidKey)
	}
	i.m.keys[index] = pressed
	return nil
}

// ShouldBeep returns whether the sound timer is active.
func (i *Interpreter) ShouldBeep() bool {
	return i.m.timers.Sound.Value() > 0
}

// RenderInto writes the display as RGBA8 pixels into frame,
// which has to be exactly FrameSize bytes long.
func (i *Interpreter) RenderInto(frame []byte) error {
	if err := i.m.display.Render(frame); err != nil {
		return fmt.Errorf("frame of %d bytes, expected %d: %w", len(frame), FrameSize, err)
	}
	return nil
}

// Runnable returns whether a ROM is loaded and the machine is not halted.
func (i *Interpreter) Runnable() bool {
	return i.m.runnable && !i.m.halted
}

// Halted returns whether execution was stopped by an error.
func (i *Interpreter) Halted() bool {
	return i.m.halted
}

// PC returns the program counter.
func (i *Interpreter) PC() uint16 {
	return i.m.registers.PC
}

// I returns the address register.
func (i *Interpreter) I() uint16 {
	return i.m.registers.I
}

// Register returns the value of register V0-VF. Only the low nibble of
// the index is used, the same way opcodes address registers.
func (i *Interpreter) Register(index int) uint8 {
	return i.m.registers.V[index&0xF]
}

// Registers returns a copy of the register file.
func (i *Interpreter) Registers() Registers {
	return i.m.registers
}

// StackDepth returns the number of return addresses on the call stack.
func (i *Interpreter) StackDepth() int {
	return i.m.stack.Depth()
}

// DelayTimer returns the delay timer value.
func (i *Interpreter) DelayTimer() uint8 {
	return i.m.timers.Delay.Value()
}

// SoundTimer returns the sound timer value.
func (i *Interpreter) SoundTimer() uint8 {
	return i.m.timers.Sound.Value()
}

// Pixel returns whether the display pixel at x, y is lit.
func (i *Interpreter) Pixel(x, y int) bool {
	return i.m.display.Pixel(x, y)
}

// Display returns a copy of the display buffer.
func (i *Interpreter) Display() Display {
	return i.m.display
}

// Memory returns a copy of the memory.
func (i *Interpreter) Memory() Memory {
	return *i.m.memory
}

// Cycles returns the number of instructions executed since the last load.
func (i *Interpreter) Cycles() uint64 {
	return i.m.cycles
}
