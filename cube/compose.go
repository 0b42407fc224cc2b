package cube

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/shadercube/animation"
)

// Frustum parameters of the fixed projection.
const (
	FieldOfView = 60.0 // degrees, vertical
	Aspect      = 1.0
	Near        = 1.0
	Far         = 10.0
)

// Camera is the fixed viewpoint.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// DefaultCamera looks at the origin from the (+,+,+) octant.
var DefaultCamera = Camera{
	Eye:    mgl32.Vec3{1.5, 1.5, 1.5},
	Target: mgl32.Vec3{0, 0, 0},
	Up:     mgl32.Vec3{0, 1, 0},
}

// Palette holds the effect constants.
type Palette struct {
	Center      mgl32.Vec2
	InnerColor  mgl32.Vec3
	OuterColor1 mgl32.Vec3
	OuterColor2 mgl32.Vec3
}

// DefaultPalette is black inside the set fading orange to red outside.
var DefaultPalette = Palette{
	InnerColor:  mgl32.Vec3{0, 0, 0},
	OuterColor1: mgl32.Vec3{1, 0.5, 0},
	OuterColor2: mgl32.Vec3{1, 0, 0},
}

// Projection returns the fixed perspective matrix.
func Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), Aspect, Near, Far)
}

// Composer builds the per-face uniform blocks. Its fields are set once by
// NewComposer and only read afterwards.
type Composer struct {
	projection mgl32.Mat4
	camera     Camera
	palette    Palette
}

// NewComposer creates a composer with the fixed projection.
func NewComposer(camera Camera, palette Palette) *Composer {
	return &Composer{
		projection: Projection(),
		camera:     camera,
		palette:    palette,
	}
}

// ComposeForFace returns the two uniform blocks for drawing face f in state s.
// It has no side effects, so the result depends only on f and s.
func (c *Composer) ComposeForFace(f int, s *animation.State) (TransformUniforms, EffectUniforms) {
	tu := TransformUniforms{
		Projection: c.projection,
		Model:      FaceMatrix(f),
		RotX:       float32(s.RotX),
		RotY:       float32(s.RotY),
		RotZ:       float32(s.RotZ),
		Eye:        c.camera.Eye,
		Target:     c.camera.Target,
		Up:         c.camera.Up,
	}
	eu := EffectUniforms{
		Zoom:        float32(s.ZoomFactor),
		Center:      c.palette.Center,
		InnerColor:  c.palette.InnerColor,
		OuterColor1: c.palette.OuterColor1,
		OuterColor2: c.palette.OuterColor2,
	}
	return tu, eu
}
