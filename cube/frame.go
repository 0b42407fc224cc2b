package cube

import "github.com/richinsley/shadercube/animation"

// Surface is the draw target.
type Surface interface {
	// Clear clears colour and depth.
	Clear()
	// DrawQuad draws the shared quad with the current program and uniforms.
	DrawQuad()
}

// UniformProgram is a linked GPU program that accepts the two uniform blocks.
type UniformProgram interface {
	Use()
	SetTransform(u *TransformUniforms)
	SetEffect(u *EffectUniforms)
}

// Presenter shows a finished frame, by swapping buffers or by handing it to
// an encoder.
type Presenter interface {
	Present()
}

// FrameRenderer draws the six faces of the cube.
type FrameRenderer struct {
	composer  *Composer
	program   UniformProgram
	surface   Surface
	presenter Presenter
}

// NewFrameRenderer creates a renderer drawing with program onto surface.
func NewFrameRenderer(composer *Composer, program UniformProgram, surface Surface, presenter Presenter) *FrameRenderer {
	return &FrameRenderer{
		composer:  composer,
		program:   program,
		surface:   surface,
		presenter: presenter,
	}
}

// RenderFrame draws one frame from the current state and presents it. It does
// not touch the state, so it may be called again between updates.
func (fr *FrameRenderer) RenderFrame(s *animation.State) {
	fr.surface.Clear()
	fr.program.Use()
	for f := 0; f < NumFaces; f++ {
		tu, eu := fr.composer.ComposeForFace(f, s)
		fr.program.SetTransform(&tu)
		fr.program.SetEffect(&eu)
		fr.surface.DrawQuad()
	}
	fr.presenter.Present()
}
