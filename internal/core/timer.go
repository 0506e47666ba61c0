package core

import "time"

const (
	// MinRate is the slowest supported stepping rate in steps per second.
	MinRate = 1
	// MaxRate is the fastest supported stepping rate in steps per second.
	MaxRate = 999
)

// StepClock gates simulation steps to a target steps-per-second rate,
// independent of how often the render loop asks.
type StepClock struct {
	rate int
	step time.Duration
	last time.Time
}

// NewStepClock constructs a StepClock targeting the given rate.
func NewStepClock(rate int) *StepClock {
	c := &StepClock{}
	c.SetRate(rate)
	return c
}

// ClampRate pins rate to [MinRate, MaxRate].
func ClampRate(rate int) int {
	return clampInt(rate, MinRate, MaxRate)
}

// SetRate changes the step rate, clamping it first, and returns the stored
// value.
func (c *StepClock) SetRate(rate int) int {
	c.rate = ClampRate(rate)
	c.step = time.Second / time.Duration(c.rate)
	return c.rate
}

// Rate reports the current steps-per-second rate.
func (c *StepClock) Rate() int { return c.rate }

// Interval is the minimum wall-clock time between two steps.
func (c *StepClock) Interval() time.Duration { return c.step }

// Last returns the timestamp of the last recorded step.
func (c *StepClock) Last() time.Time { return c.last }

// Mark records now as the time of the most recent step.
func (c *StepClock) Mark(now time.Time) { c.last = now }

// Due reports whether enough time has elapsed since the last mark to step.
func (c *StepClock) Due(now time.Time) bool {
	return now.Sub(c.last) >= c.step
}
