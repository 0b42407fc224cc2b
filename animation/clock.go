package animation

import "math"

// FrameClock is the result of one clock sample.
type FrameClock struct {
	LastSampleMillis float64
	DeltaMillis      float64
	DeltaPhase       float64 // 2π per elapsed second
}

// Clock turns an elapsed-millisecond counter into per-frame deltas.
type Clock struct {
	source  func() float64
	last    float64
	started bool
}

// NewClock creates a clock reading milliseconds from source.
func NewClock(source func() float64) *Clock {
	return &Clock{source: source}
}

// Sample reads the time source once and returns the delta since the previous
// sample. The delta is new minus old; the first sample only primes the clock
// and reports zero, and a source that steps backwards reports zero as well.
func (c *Clock) Sample() FrameClock {
	now := c.source()
	var delta float64
	if c.started {
		delta = now - c.last
		if delta < 0 {
			delta = 0
		}
	}
	c.last = now
	c.started = true

	return FrameClock{
		LastSampleMillis: now,
		DeltaMillis:      delta,
		DeltaPhase:       PhaseForMillis(delta),
	}
}

// PhaseForMillis converts a duration in milliseconds to radians of a 1Hz cycle.
func PhaseForMillis(ms float64) float64 {
	return 2 * math.Pi * ms / 1000.0
}

// SyntheticSource returns a time source that advances by step milliseconds on
// every read, starting at zero. Offscreen recording uses it to get a fixed
// frame rate independent of wall time.
func SyntheticSource(step float64) func() float64 {
	var now float64
	first := true
	return func() float64 {
		if first {
			first = false
			return now
		}
		now += step
		return now
	}
}
