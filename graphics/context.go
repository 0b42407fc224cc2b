package graphics

// Context defines the interface for an OpenGL context and the window that owns it.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// SwapBuffers presents the back buffer, blocking on vsync.
	SwapBuffers()
	// PollEvents dispatches pending input. It must not be called from a callback.
	PollEvents()
	GetFramebufferSize() (int, int)
	// ElapsedMillis is the time since the toolkit was initialized.
	ElapsedMillis() float64
}
