package cube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// LayoutVersion identifies the uniform block layouts below. Shader sources
// declare the same fields in the same order; bump it when a field moves.
const LayoutVersion = 1

// Field is one named member of a uniform block, measured in float32 slots.
type Field struct {
	Name       string
	Offset     int
	Components int
}

// Layout is the ordered field table of a uniform block.
type Layout struct {
	Name   string
	Fields []Field
}

// Size returns the number of float32 slots the block occupies.
func (l Layout) Size() int {
	if len(l.Fields) == 0 {
		return 0
	}
	last := l.Fields[len(l.Fields)-1]
	return last.Offset + last.Components
}

// Field looks up a member by name.
func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks that fields are packed back to back with no gaps.
func (l Layout) Validate() error {
	next := 0
	for _, f := range l.Fields {
		if f.Offset != next {
			return fmt.Errorf("%s block: field %s at offset %d, expected %d", l.Name, f.Name, f.Offset, next)
		}
		if f.Components <= 0 {
			return fmt.Errorf("%s block: field %s has %d components", l.Name, f.Name, f.Components)
		}
		next += f.Components
	}
	return nil
}

const (
	TransformFloats = 16 + 16 + 3 + 9
	EffectFloats    = 1 + 2 + 9
)

// TransformLayout is the vertex stage block.
var TransformLayout = Layout{
	Name: "transform",
	Fields: []Field{
		{Name: "proj", Offset: 0, Components: 16},
		{Name: "model", Offset: 16, Components: 16},
		{Name: "rotx", Offset: 32, Components: 1},
		{Name: "roty", Offset: 33, Components: 1},
		{Name: "rotz", Offset: 34, Components: 1},
		{Name: "from", Offset: 35, Components: 3},
		{Name: "to", Offset: 38, Components: 3},
		{Name: "up", Offset: 41, Components: 3},
	},
}

// EffectLayout is the fragment stage block.
var EffectLayout = Layout{
	Name: "effect",
	Fields: []Field{
		{Name: "zoom", Offset: 0, Components: 1},
		{Name: "center", Offset: 1, Components: 2},
		{Name: "innerColor", Offset: 3, Components: 3},
		{Name: "outerColor1", Offset: 6, Components: 3},
		{Name: "outerColor2", Offset: 9, Components: 3},
	},
}

// TransformUniforms feeds the vertex stage.
type TransformUniforms struct {
	Projection mgl32.Mat4
	Model      mgl32.Mat4
	RotX       float32
	RotY       float32
	RotZ       float32
	Eye        mgl32.Vec3
	Target     mgl32.Vec3
	Up         mgl32.Vec3
}

// Pack flattens the block in TransformLayout order.
func (u *TransformUniforms) Pack() [TransformFloats]float32 {
	var p [TransformFloats]float32
	copy(p[0:16], u.Projection[:])
	copy(p[16:32], u.Model[:])
	p[32] = u.RotX
	p[33] = u.RotY
	p[34] = u.RotZ
	copy(p[35:38], u.Eye[:])
	copy(p[38:41], u.Target[:])
	copy(p[41:44], u.Up[:])
	return p
}

// EffectUniforms feeds the fragment stage.
type EffectUniforms struct {
	Zoom        float32
	Center      mgl32.Vec2
	InnerColor  mgl32.Vec3
	OuterColor1 mgl32.Vec3
	OuterColor2 mgl32.Vec3
}

// Pack flattens the block in EffectLayout order.
func (u *EffectUniforms) Pack() [EffectFloats]float32 {
	var p [EffectFloats]float32
	p[0] = u.Zoom
	copy(p[1:3], u.Center[:])
	copy(p[3:6], u.InnerColor[:])
	copy(p[6:9], u.OuterColor1[:])
	copy(p[9:12], u.OuterColor2[:])
	return p
}
