package animation

// FpsCounter tracks frame throughput over windows of at least one second.
type FpsCounter struct {
	frames      int
	windowStart float64
	started     bool
	window      float64
}

// NewFpsCounter creates a counter with a one second window.
func NewFpsCounter() *FpsCounter {
	return &FpsCounter{window: 1000}
}

// Tick counts one frame at nowMillis. When more than a window has passed since
// the last report it returns the frame rate and starts a new window.
func (f *FpsCounter) Tick(nowMillis float64) (float64, bool) {
	if !f.started {
		f.windowStart = nowMillis
		f.started = true
	}
	f.frames++

	elapsed := nowMillis - f.windowStart
	if elapsed <= f.window {
		return 0, false
	}

	fps := float64(f.frames) * 1000.0 / elapsed
	f.windowStart = nowMillis
	f.frames = 0
	return fps, true
}
