package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	glfwcontext "github.com/richinsley/shadercube/glfwcontext"
	options "github.com/richinsley/shadercube/options"
	renderer "github.com/richinsley/shadercube/renderer"
	shader "github.com/richinsley/shadercube/shader"
)

func runCube(opts *options.CubeOptions) {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	// If recording, the window is hidden and only hosts the GL context.
	ctx, err := glfwcontext.New(opts, !*opts.Record)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(opts, ctx)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if *opts.Record {
		log.Println("Starting offscreen render loop...")
		if err := r.RunOffscreen(); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return
	}

	ctx.SetVSync(*opts.VSync)
	log.Println("Starting interactive render loop...")
	r.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.CubeOptions{
		Help:           flag.Bool("help", false, "Show help message"),
		Size:           flag.Int("size", 1000, "Width and height of the window in pixels"),
		VertexShader:   flag.String("vs", shader.DefaultVertexPath, "Vertex shader source (WebGL2 GLSL ES 3.00)"),
		FragmentShader: flag.String("fs", shader.DefaultFragmentPath, "Fragment shader source (WebGL2 GLSL ES 3.00)"),
		Rotate:         flag.String("rotate", "", "Axes to start rotating, any of \"xyz\""),
		Zoom:           flag.Bool("zoom", false, "Start with the zoom pulse enabled"),
		VSync:          flag.Bool("vsync", true, "Wait for vertical sync on buffer swap"),

		// Recording flags
		Record:     flag.Bool("record", false, "Render offscreen and encode to a video file"),
		Duration:   flag.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:        flag.Int("fps", 60, "Frames per second for recording"),
		OutputFile: flag.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath: flag.String("ffmpeg", "", "Path to ffmpeg executable (from SHADERCUBE_FFMPEG env var if not set)"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("Shader cube demo")
		flag.PrintDefaults()
		return
	}

	if *opts.FFMPEGPath == "" {
		*opts.FFMPEGPath = os.Getenv("SHADERCUBE_FFMPEG")
	}
	if *opts.Size <= 0 {
		log.Fatalf("Invalid window size %d", *opts.Size)
	}
	for _, axis := range *opts.Rotate {
		if axis != 'x' && axis != 'y' && axis != 'z' {
			log.Fatalf("Invalid rotation axis %q in -rotate", axis)
		}
	}

	runCube(opts)
}
