package chip8

// Timer is an 8-bit counter that decays at TimerFrequency.
//
// Elapsed time is accumulated in units of 1/(TimerFrequency*clockSpeed) seconds:
// every cycle adds TimerFrequency units and every decrement consumes clockSpeed
// units. This keeps the decay rate exact for any clock speed and independent of
// how the cycles are split across calls.
type Timer struct {
	value       uint8
	accumulator uint64
}

// Value returns the current counter value.
func (t *Timer) Value() uint8 {
	return t.value
}

// Set loads the counter and restarts its tick period.
func (t *Timer) Set(value uint8) {
	t.value = value
	t.accumulator = 0
}

// advance accounts for the given number of executed cycles at clockSpeed.
func (t *Timer) advance(cycles, clockSpeed uint64) {
	if t.value == 0 {
		return
	}

	t.accumulator += cycles * TimerFrequency
	for t.accumulator >= clockSpeed && t.value > 0 {
		t.accumulator -= clockSpeed
		t.value--
	}
	if t.value == 0 {
		t.accumulator = 0
	}
}

// Timers holds the delay and sound timers.
type Timers struct {
	Delay Timer
	Sound Timer

	clockSpeed uint64
}

func newTimers(clockSpeed int) Timers {
	return Timers{clockSpeed: uint64(clockSpeed)}
}

// Advance accounts for the given number of executed cycles on both timers.
func (t *Timers) Advance(cycles int) {
	if cycles <= 0 {
		return
	}
	t.Delay.advance(uint64(cycles), t.clockSpeed)
	t.Sound.advance(uint64(cycles), t.clockSpeed)
}
