package cube

import (
	"log"

	"github.com/richinsley/shadercube/animation"
)

// Lifecycle is the process-level state of the demo.
type Lifecycle int

const (
	Uninitialized Lifecycle = iota
	Running
	Terminated
)

func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Frame is the mutable per-process animation context. It is owned by the
// Driver and only touched from the event loop thread.
type Frame struct {
	Clock *animation.Clock
	State *animation.State
	Fps   *animation.FpsCounter
	Last  animation.FrameClock
	Count int64
}

// NewFrame creates a context reading time from source, in milliseconds.
func NewFrame(source func() float64) *Frame {
	return &Frame{
		Clock: animation.NewClock(source),
		State: animation.NewState(),
		Fps:   animation.NewFpsCounter(),
	}
}

// Events is the input side of the window toolkit.
type Events interface {
	ShouldClose() bool
	PollEvents()
}

// Driver runs the update-then-render loop.
type Driver struct {
	frame     *Frame
	renderer  *FrameRenderer
	events    Events
	lifecycle Lifecycle
	// ReportFps is called with every completed throughput window.
	ReportFps func(fps float64)
}

// NewDriver creates a driver. The driver is Running once created, since the
// GPU program and context it needs already exist.
func NewDriver(frame *Frame, renderer *FrameRenderer, events Events) *Driver {
	return &Driver{
		frame:     frame,
		renderer:  renderer,
		events:    events,
		lifecycle: Running,
		ReportFps: func(fps float64) {
			log.Printf("FPS:%4.2f", fps)
		},
	}
}

// Frame returns the animation context.
func (d *Driver) Frame() *Frame {
	return d.frame
}

// Lifecycle reports the driver state.
func (d *Driver) Lifecycle() Lifecycle {
	return d.lifecycle
}

// Key applies a character command from the keyboard.
func (d *Driver) Key(r rune) {
	if d.frame.State.HandleKey(r) {
		s := d.frame.State
		log.Printf("rotate x=%t y=%t z=%t zoom=%t", s.RotateX, s.RotateY, s.RotateZ, s.Zoom)
	}
}

// Refresh redraws without advancing the animation.
func (d *Driver) Refresh() {
	if d.lifecycle != Running {
		return
	}
	d.renderer.RenderFrame(d.frame.State)
}

// Step advances the animation by one clock sample and renders a frame.
func (d *Driver) Step() {
	if d.lifecycle != Running {
		return
	}
	fc := d.frame.Clock.Sample()
	d.frame.Last = fc
	if fps, ok := d.frame.Fps.Tick(fc.LastSampleMillis); ok && d.ReportFps != nil {
		d.ReportFps(fps)
	}
	d.frame.State.Update(fc.DeltaPhase)
	d.renderer.RenderFrame(d.frame.State)
	d.frame.Count++
}

// Run steps until the window asks to close.
func (d *Driver) Run() {
	for d.lifecycle == Running && !d.events.ShouldClose() {
		d.Step()
		d.events.PollEvents()
	}
	d.Stop()
}

// Stop moves the driver to Terminated. Later steps are ignored.
func (d *Driver) Stop() {
	if d.lifecycle == Running {
		log.Printf("Render loop finished after %d frames", d.frame.Count)
	}
	d.lifecycle = Terminated
}
