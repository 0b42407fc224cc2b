package animation

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestToggleIsSelfInverse(t *testing.T) {
	s := NewState()
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		before := s.Rotating(axis)
		s.ToggleAxis(axis)
		if s.Rotating(axis) == before {
			t.Fatalf("ToggleAxis(%v) did not flip", axis)
		}
		s.ToggleAxis(axis)
		if s.Rotating(axis) != before {
			t.Fatalf("ToggleAxis(%v) twice\nhave %v\nwant %v", axis, s.Rotating(axis), before)
		}
	}

	s.ToggleZoom()
	s.ToggleZoom()
	if s.Zoom {
		t.Fatal("ToggleZoom twice left zoom enabled")
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     rune
		handled bool
		check   func(*State) bool
	}{
		{'i', true, func(s *State) bool { return s.RotateX }},
		{'j', true, func(s *State) bool { return s.RotateY }},
		{'k', true, func(s *State) bool { return s.RotateZ }},
		{'z', true, func(s *State) bool { return s.Zoom }},
		{'q', false, func(s *State) bool { return !s.RotateX && !s.RotateY && !s.RotateZ && !s.Zoom }},
		{'I', false, func(s *State) bool { return !s.RotateX }},
	}
	for _, tt := range tests {
		s := NewState()
		if got := s.HandleKey(tt.key); got != tt.handled {
			t.Errorf("HandleKey(%q) = %v, want %v", tt.key, got, tt.handled)
		}
		if !tt.check(s) {
			t.Errorf("HandleKey(%q) left unexpected state %+v", tt.key, *s)
		}
	}
}

func TestFrozenPhaseNeverChanges(t *testing.T) {
	s := NewState()
	s.ToggleAxis(AxisY)
	deltas := []float64{0, 0.1, 3, 0.25, 12}
	prevY := s.PhaseY
	for _, d := range deltas {
		s.Update(d)
		if s.PhaseX != 0 || s.PhaseZ != 0 || s.PhaseZoom != 0 {
			t.Fatalf("frozen phase moved: %+v", *s)
		}
		if s.PhaseY < prevY {
			t.Fatalf("active phase decreased: have %v, previous %v", s.PhaseY, prevY)
		}
		prevY = s.PhaseY
	}
}

func TestResumeFromFrozenPhase(t *testing.T) {
	s := NewState()
	s.ToggleAxis(AxisZ)
	s.Update(2 * math.Pi)
	s.ToggleAxis(AxisZ)
	s.Update(100)
	if !near(s.PhaseZ, math.Pi/2) || !near(s.RotZ, math.Pi/2) {
		t.Fatalf("frozen Z\nhave phase %v angle %v\nwant %v", s.PhaseZ, s.RotZ, math.Pi/2)
	}
	s.ToggleAxis(AxisZ)
	s.Update(2 * math.Pi)
	if !near(s.RotZ, math.Pi) {
		t.Fatalf("resumed Z\nhave %v\nwant %v", s.RotZ, math.Pi)
	}
}

func TestZoomBounds(t *testing.T) {
	for phase := -50.0; phase < 50; phase += 0.037 {
		z := ZoomAt(phase)
		if z < 0.2-eps || z > 2.0+eps {
			t.Fatalf("ZoomAt(%v) = %v, outside [0.2, 2.0]", phase, z)
		}
	}
	if !near(ZoomAt(0), RestZoom) {
		t.Fatalf("ZoomAt(0) = %v, want %v", ZoomAt(0), RestZoom)
	}
	if !near(ZoomAt(math.Pi), 0.2) {
		t.Fatalf("ZoomAt(π) = %v, want 0.2", ZoomAt(math.Pi))
	}
}

func TestUpdateScenarios(t *testing.T) {
	// idle
	s := NewState()
	s.Update(0)
	if s.RotX != 0 || s.RotY != 0 || s.RotZ != 0 || !near(s.ZoomFactor, 2.0) {
		t.Fatalf("idle update\nhave %+v", *s)
	}

	// one X step
	s = NewState()
	s.ToggleAxis(AxisX)
	s.Update(4 * math.Pi)
	if !near(s.PhaseX, math.Pi) || !near(s.RotX, math.Pi) {
		t.Fatalf("X step\nhave phase %v angle %v\nwant π", s.PhaseX, s.RotX)
	}
	if s.RotY != 0 || s.RotZ != 0 {
		t.Fatalf("X step moved other axes: %+v", *s)
	}

	// a full zoom cycle in thirds
	s = NewState()
	s.ToggleZoom()
	for i := 0; i < 3; i++ {
		s.Update(2 * math.Pi / 3)
	}
	if !near(s.PhaseZoom, 2*math.Pi) {
		t.Fatalf("zoom phase\nhave %v\nwant 2π", s.PhaseZoom)
	}
	if !near(s.ZoomFactor, 2.0) {
		t.Fatalf("zoom factor\nhave %v\nwant 2.0", s.ZoomFactor)
	}
}

func TestClockSample(t *testing.T) {
	readings := []float64{500, 516, 532, 530, 1532}
	i := 0
	c := NewClock(func() float64 {
		v := readings[i]
		i++
		return v
	})

	want := []float64{0, 16, 16, 0, 1002}
	for n, w := range want {
		fc := c.Sample()
		if !near(fc.DeltaMillis, w) {
			t.Fatalf("sample %d: delta\nhave %v\nwant %v", n, fc.DeltaMillis, w)
		}
		if !near(fc.DeltaPhase, 2*math.Pi*w/1000) {
			t.Fatalf("sample %d: phase\nhave %v\nwant %v", n, fc.DeltaPhase, 2*math.Pi*w/1000)
		}
		if fc.LastSampleMillis != readings[n] {
			t.Fatalf("sample %d: last\nhave %v\nwant %v", n, fc.LastSampleMillis, readings[n])
		}
	}
}

func TestSyntheticSource(t *testing.T) {
	c := NewClock(SyntheticSource(40))
	if fc := c.Sample(); fc.DeltaMillis != 0 {
		t.Fatalf("first synthetic delta = %v, want 0", fc.DeltaMillis)
	}
	for i := 0; i < 5; i++ {
		if fc := c.Sample(); fc.DeltaMillis != 40 {
			t.Fatalf("synthetic delta = %v, want 40", fc.DeltaMillis)
		}
	}
}

func TestFpsCounter(t *testing.T) {
	f := NewFpsCounter()
	var reports []float64
	// 60 frames per second for a little over two seconds
	for i := 0; i <= 130; i++ {
		now := 1000 + float64(i)*1000.0/60
		if fps, ok := f.Tick(now); ok {
			reports = append(reports, fps)
		}
	}
	if len(reports) != 2 {
		t.Fatalf("reports\nhave %d\nwant 2", len(reports))
	}
	for _, fps := range reports {
		if fps < 59 || fps > 62 {
			t.Fatalf("fps = %v, want about 60", fps)
		}
	}
}

func TestFpsCounterNeedsFullWindow(t *testing.T) {
	f := NewFpsCounter()
	if _, ok := f.Tick(0); ok {
		t.Fatal("reported on first frame")
	}
	if _, ok := f.Tick(1000); ok {
		t.Fatal("reported at exactly one second")
	}
	fps, ok := f.Tick(1001)
	if !ok {
		t.Fatal("no report after one second")
	}
	if want := 3 * 1000.0 / 1001; !near(fps, want) {
		t.Fatalf("fps\nhave %v\nwant %v", fps, want)
	}
}
