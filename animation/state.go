package animation

import "math"

// Axis selects one of the three rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

const (
	// RestZoom is the zoom factor before zooming is ever enabled. It equals
	// ZoomAt(0).
	RestZoom = 2.0

	zoomBase      = 1.1
	zoomAmplitude = 0.9

	// rotation runs at a quarter of the zoom cadence
	rotationRate = 0.25
)

// State holds the keyboard toggles and the phase accumulators they drive.
// The zero value is the startup state.
type State struct {
	RotateX, RotateY, RotateZ bool
	Zoom                      bool

	PhaseX, PhaseY, PhaseZ float64
	PhaseZoom              float64

	// Derived outputs. Angles are in radians and are not wrapped.
	RotX, RotY, RotZ float64
	ZoomFactor       float64
}

// NewState returns the startup state: all toggles off, all phases zero.
func NewState() *State {
	return &State{ZoomFactor: RestZoom}
}

// ToggleAxis flips rotation about axis.
func (s *State) ToggleAxis(axis Axis) {
	switch axis {
	case AxisX:
		s.RotateX = !s.RotateX
	case AxisY:
		s.RotateY = !s.RotateY
	case AxisZ:
		s.RotateZ = !s.RotateZ
	}
}

// ToggleZoom flips the zoom pulse.
func (s *State) ToggleZoom() {
	s.Zoom = !s.Zoom
}

// Rotating reports whether rotation about axis is enabled.
func (s *State) Rotating(axis Axis) bool {
	switch axis {
	case AxisX:
		return s.RotateX
	case AxisY:
		return s.RotateY
	case AxisZ:
		return s.RotateZ
	}
	return false
}

// HandleKey applies a single-character command. It returns false for keys
// that carry no command.
func (s *State) HandleKey(r rune) bool {
	switch r {
	case 'i':
		s.ToggleAxis(AxisX)
	case 'j':
		s.ToggleAxis(AxisY)
	case 'k':
		s.ToggleAxis(AxisZ)
	case 'z':
		s.ToggleZoom()
	default:
		return false
	}
	return true
}

// Update advances every enabled accumulator by deltaPhase and recomputes the
// outputs it drives. Disabled accumulators keep their phase so re-enabling
// resumes without a jump.
func (s *State) Update(deltaPhase float64) {
	if s.RotateX {
		s.PhaseX += deltaPhase * rotationRate
		s.RotX = s.PhaseX
	}
	if s.RotateY {
		s.PhaseY += deltaPhase * rotationRate
		s.RotY = s.PhaseY
	}
	if s.RotateZ {
		s.PhaseZ += deltaPhase * rotationRate
		s.RotZ = s.PhaseZ
	}
	if s.Zoom {
		s.PhaseZoom += deltaPhase
		s.ZoomFactor = ZoomAt(s.PhaseZoom)
	}
}

// ZoomAt is the zoom factor for a zoom phase. It stays within [0.2, 2.0].
func ZoomAt(phase float64) float64 {
	return zoomBase + zoomAmplitude*math.Cos(phase)
}
