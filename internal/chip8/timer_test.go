package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimers_DecayIndependentOfCallSplit(t *testing.T) {
	// 6000 cycles over 100ms
	const clockSpeed = 60000
	const cycles = 6000

	single := newTimers(clockSpeed)
	single.Delay.Set(200)
	single.Sound.Set(100)
	single.Advance(cycles)

	split := newTimers(clockSpeed)
	split.Delay.Set(200)
	split.Sound.Set(100)
	for range cycles {
		split.Advance(1)
	}

	assert.Equal(t, uint8(194), single.Delay.Value())
	assert.Equal(t, uint8(94), single.Sound.Value())
	assert.Equal(t, single.Delay.Value(), split.Delay.Value())
	assert.Equal(t, single.Sound.Value(), split.Sound.Value())
}

func TestTimers_TickRate(t *testing.T) {
	timers := newTimers(DefaultClockSpeed)
	timers.Delay.Set(3)

	cyclesPerTick := DefaultClockSpeed / TimerFrequency
	timers.Advance(cyclesPerTick - 1)
	assert.Equal(t, uint8(3), timers.Delay.Value())
	timers.Advance(1)
	assert.Equal(t, uint8(2), timers.Delay.Value())
	timers.Advance(cyclesPerTick)
	assert.Equal(t, uint8(1), timers.Delay.Value())
}

func TestTimers_Saturate(t *testing.T) {
	timers := newTimers(DefaultClockSpeed)
	timers.Delay.Set(2)
	timers.Sound.Set(1)

	timers.Advance(1_000_000)
	assert.Equal(t, uint8(0), timers.Delay.Value())
	assert.Equal(t, uint8(0), timers.Sound.Value())

	timers.Advance(1_000_000)
	assert.Equal(t, uint8(0), timers.Delay.Value())
}

func TestTimers_StoppedTimerDoesNotAccumulate(t *testing.T) {
	timers := newTimers(DefaultClockSpeed)

	timers.Advance(DefaultClockSpeed/TimerFrequency - 1)
	timers.Delay.Set(1)
	timers.Advance(1)
	assert.Equal(t, uint8(1), timers.Delay.Value())
}

func TestTimer_SetRestartsPeriod(t *testing.T) {
	timers := newTimers(DefaultClockSpeed)
	timers.Sound.Set(5)

	timers.Advance(DefaultClockSpeed/TimerFrequency - 1)
	timers.Sound.Set(5)
	timers.Advance(1)
	assert.Equal(t, uint8(5), timers.Sound.Value())
}

func TestTimers_AdvanceIgnoresNonPositive(t *testing.T) {
	timers := newTimers(DefaultClockSpeed)
	timers.Delay.Set(1)

	timers.Advance(0)
	timers.Advance(-100)
	assert.Equal(t, uint64(0), timers.Delay.accumulator)
	assert.Equal(t, uint8(1), timers.Delay.Value())
}
