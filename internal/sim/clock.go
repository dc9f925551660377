package sim

import (
	"math"

	"github.com/vovakirdan/neon-dash/internal/config"
)

// Clock turns raw frame deltas into bounded, dilated simulation steps.
// Dilation eases toward its target a fixed fraction per Advance call, which
// is how the slow-motion after a fatal hit is produced.
type Clock struct {
	maxDelta float64
	fallback float64
	easing   float64
	dilation float64
	target   float64
}

// NewClock creates a clock running at normal speed.
func NewClock(cfg config.ClockConfig) *Clock {
	c := &Clock{
		maxDelta: cfg.MaxDelta,
		fallback: cfg.FallbackDelta,
		easing:   cfg.Easing,
	}
	c.Reset()
	return c
}

// Reset restores normal speed immediately.
func (c *Clock) Reset() {
	c.dilation = 1
	c.target = 1
}

// Advance converts a raw delta in seconds into the simulated delta.
// NaN, infinite, zero and negative deltas are replaced by the fallback frame.
// The result is always finite and non-negative.
func (c *Clock) Advance(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw <= 0 {
		raw = c.fallback
	}
	if raw > c.maxDelta {
		raw = c.maxDelta
	}

	c.dilation += (c.target - c.dilation) * c.easing
	return raw * c.dilation
}

// SetTarget sets the dilation the clock eases toward.
func (c *Clock) SetTarget(target float64) {
	if math.IsNaN(target) || target < 0 {
		target = 0
	}
	c.target = target
}

// Dilation returns the current time multiplier.
func (c *Clock) Dilation() float64 {
	return c.dilation
}

// Target returns the multiplier the clock is easing toward.
func (c *Clock) Target() float64 {
	return c.target
}
