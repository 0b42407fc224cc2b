package options

type CubeOptions struct {
	Help           *bool
	Size           *int    // window edge in pixels; the window is always square
	VertexShader   *string // path to the vertex stage source
	FragmentShader *string // path to the fragment stage source
	Record         *bool
	Duration       *float64
	FPS            *int
	OutputFile     *string
	FFMPEGPath     *string
	Rotate         *string // initial rotation axes, any of "xyz"
	Zoom           *bool   // start with the zoom pulse enabled
	VSync          *bool
}
