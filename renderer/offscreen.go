package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/shadercube/animation"
	"github.com/richinsley/shadercube/cube"
	"github.com/richinsley/shadercube/encoder"
)

// OffscreenRenderer is a framebuffer the cube is drawn into when recording.
type OffscreenRenderer struct {
	fbo               uint32
	colorRenderbuffer uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{
		width:  width,
		height: height,
	}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)

	gl.GenRenderbuffers(1, &or.colorRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.colorRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, or.colorRenderbuffer)

	gl.GenRenderbuffers(1, &or.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, or.depthRenderbuffer)

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete")
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	return or, nil
}

func (or *OffscreenRenderer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.Viewport(0, 0, int32(or.width), int32(or.height))
}

func (or *OffscreenRenderer) Destroy() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.DeleteRenderbuffers(1, &or.colorRenderbuffer)
	gl.DeleteRenderbuffers(1, &or.depthRenderbuffer)
	gl.DeleteFramebuffers(1, &or.fbo)
}

// readPixels returns the framebuffer contents as bottom-up RGBA rows.
func (or *OffscreenRenderer) readPixels(pixels []byte) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// recordPresenter hands every finished frame to the encoder instead of
// swapping buffers. The first failure stops the recording.
type recordPresenter struct {
	offscreen *OffscreenRenderer
	encoder   *encoder.Encoder
	pts       int64
	err       error
}

func (p *recordPresenter) Present() {
	if p.err != nil {
		return
	}
	pixels := make([]byte, p.encoder.FrameSize())
	p.offscreen.readPixels(pixels)
	p.err = p.encoder.WriteFrame(&encoder.Frame{Pixels: pixels, PTS: p.pts})
	p.pts++
}

// RunOffscreen renders Duration seconds at a fixed FPS into an offscreen
// framebuffer and encodes the frames to OutputFile.
func (r *Renderer) RunOffscreen() error {
	size := *r.options.Size
	fps := *r.options.FPS
	totalFrames := int(*r.options.Duration * float64(fps))

	offscreen, err := NewOffscreenRenderer(size, size)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer offscreen.Destroy()
	offscreen.Bind()

	enc, err := encoder.New(size, size, fps, *r.options.OutputFile, *r.options.FFMPEGPath)
	if err != nil {
		return err
	}

	presenter := &recordPresenter{offscreen: offscreen, encoder: enc}
	fr := cube.NewFrameRenderer(r.composer, r.program, r.quad, presenter)
	frame := r.newFrame(animation.SyntheticSource(1000.0 / float64(fps)))
	driver := cube.NewDriver(frame, fr, r.context)

	log.Printf("Recording %d frames...", totalFrames)
	for i := 0; i < totalFrames && presenter.err == nil; i++ {
		driver.Step()
	}
	driver.Stop()

	closeErr := enc.Close()
	if presenter.err != nil {
		return presenter.err
	}
	if closeErr != nil {
		return closeErr
	}
	log.Printf("Encoded %d frames", enc.Frames())
	return nil
}
