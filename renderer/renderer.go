package renderer

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/shadercube/cube"
	"github.com/richinsley/shadercube/graphics"
	"github.com/richinsley/shadercube/options"
	"github.com/richinsley/shadercube/shader"
	xlate "github.com/richinsley/shadercube/translator"
)

// Ensure gl.Init() is called only once.
var glInitOnce sync.Once

const (
	requiredMajor = 4
	requiredMinor = 1
)

// InputSource is implemented by window contexts that deliver character and
// refresh events.
type InputSource interface {
	RegisterCharCallback(r rune, f func())
	RegisterRefreshCallback(f func())
}

type Renderer struct {
	context  graphics.Context
	options  *options.CubeOptions
	program  *Program
	quad     *Quad
	composer *cube.Composer
}

// NewRenderer brings up OpenGL on ctx and builds the shader program. Every
// error it returns is fatal for the process.
func NewRenderer(opts *options.CubeOptions, ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{
		context:  ctx,
		options:  opts,
		composer: cube.NewComposer(cube.DefaultCamera, cube.DefaultPalette),
	}

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	if err := checkVersion(version); err != nil {
		return nil, err
	}
	log.Printf("OpenGL %s", version)

	tr, err := xlate.New()
	if err != nil {
		return nil, err
	}
	src, err := shader.Load(*opts.VertexShader, *opts.FragmentShader, tr)
	if err != nil {
		return nil, fmt.Errorf("failed to load shaders: %w", err)
	}
	r.program, err = NewProgram(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	log.Printf("Shader program ready (uniform layout v%d)", cube.LayoutVersion)

	r.quad = NewQuad()
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	return r, nil
}

// checkVersion accepts GL_VERSION strings of 4.1 and later, e.g.
// "4.1 Metal - 83.1" or "4.6.0 NVIDIA 535.54".
func checkVersion(version string) error {
	var major, minor int
	if _, err := fmt.Sscanf(strings.TrimSpace(version), "%d.%d", &major, &minor); err != nil {
		return fmt.Errorf("unrecognized OpenGL version %q", version)
	}
	if major < requiredMajor || (major == requiredMajor && minor < requiredMinor) {
		return fmt.Errorf("OpenGL %d.%d is required, have %s", requiredMajor, requiredMinor, version)
	}
	return nil
}

func (r *Renderer) Shutdown() {
	if r.program != nil {
		r.program.Delete()
	}
	if r.quad != nil {
		r.quad.Destroy()
	}
}

// newFrame creates the animation context with the toggles requested on the
// command line already applied.
func (r *Renderer) newFrame(source func() float64) *cube.Frame {
	frame := cube.NewFrame(source)
	if r.options.Rotate != nil {
		for _, axis := range *r.options.Rotate {
			switch axis {
			case 'x':
				frame.State.HandleKey('i')
			case 'y':
				frame.State.HandleKey('j')
			case 'z':
				frame.State.HandleKey('k')
			}
		}
	}
	if r.options.Zoom != nil && *r.options.Zoom {
		frame.State.ToggleZoom()
	}
	return frame
}

type swapPresenter struct {
	context graphics.Context
}

func (p swapPresenter) Present() {
	p.context.SwapBuffers()
}

// Run drives the interactive window until it is closed.
func (r *Renderer) Run() {
	width, height := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	fr := cube.NewFrameRenderer(r.composer, r.program, r.quad, swapPresenter{context: r.context})
	driver := cube.NewDriver(r.newFrame(r.context.ElapsedMillis), fr, r.context)

	if in, ok := r.context.(InputSource); ok {
		for _, key := range []rune{'i', 'j', 'k', 'z'} {
			in.RegisterCharCallback(key, func() { driver.Key(key) })
		}
		in.RegisterRefreshCallback(driver.Refresh)
	}

	log.Println("Keys: i/j/k toggle rotation about x/y/z, z toggles zoom, Esc quits")
	driver.Run()
}
