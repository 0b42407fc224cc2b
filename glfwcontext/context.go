package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	options "github.com/richinsley/shadercube/options"
)

// Context wraps a GLFW window and its OpenGL 4.1 core context.
type Context struct {
	window *glfw.Window
	// Functions to be called on character input, keyed by the character.
	charCallbacks   map[rune]func()
	refreshCallback func()
}

// New creates and initializes a new GLFW window and returns a Context object.
// A hidden window is used for offscreen recording.
func New(options *options.CubeOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Size, *options.Size, "shadercube", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("OpenGL 4.1 core context is required: %w", err)
	}

	c := &Context{
		window:        win,
		charCallbacks: make(map[rune]func()),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCharCallback(c.glfwCharCallback)
	win.SetRefreshCallback(c.glfwRefreshCallback)

	return c, nil
}

// RegisterCharCallback registers a function to be called when the character r is typed.
func (c *Context) RegisterCharCallback(r rune, f func()) {
	c.charCallbacks[r] = f
}

// RegisterRefreshCallback registers a function to be called when the window
// contents need to be redrawn without a new frame, e.g. after being uncovered.
func (c *Context) RegisterRefreshCallback(f func()) {
	c.refreshCallback = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// Character input is used rather than key codes so the commands follow the
// keyboard layout. Unregistered characters are ignored.
func (c *Context) glfwCharCallback(w *glfw.Window, char rune) {
	if callback, ok := c.charCallbacks[char]; ok {
		callback()
	}
}

func (c *Context) glfwRefreshCallback(w *glfw.Window) {
	if c.refreshCallback != nil {
		c.refreshCallback()
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// SetVSync sets the swap interval of the current context.
func (c *Context) SetVSync(on bool) {
	if on {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) ElapsedMillis() float64 {
	return glfw.GetTime() * 1000.0
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
