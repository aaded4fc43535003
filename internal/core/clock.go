package core

import "time"

// NominalRate is the update rate at which one frame equals one delta unit.
const NominalRate = 60

// MaxDelta caps a single frame's delta so a stalled terminal does not
// teleport entities.
const MaxDelta = 5.0

// Clock converts wall-clock time between frames into delta units.
type Clock struct {
	last    time.Time
	started bool
}

// Tick returns the delta scale for the frame ending at now.
// The first tick returns 1.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 1
	}
	dt := now.Sub(c.last).Seconds() * NominalRate
	c.last = now
	return ClampF(dt, 0, MaxDelta)
}

// Reset forgets the last tick so the next one returns 1.
func (c *Clock) Reset() {
	c.started = false
}

// FixedDelta returns the delta scale of a fixed tick rate.
func FixedDelta(tickRate int) float64 {
	if tickRate <= 0 {
		return 1
	}
	return float64(NominalRate) / float64(tickRate)
}
