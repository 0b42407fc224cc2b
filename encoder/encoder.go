package encoder

import (
	"fmt"
	"io"
	"log"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered video frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// BytesPerPixel of the RGBA readback fed to ffmpeg.
const BytesPerPixel = 4

// Encoder pipes raw RGBA frames into an ffmpeg process.
type Encoder struct {
	width  int
	height int
	frames int64
	pipe   io.WriteCloser
	done   <-chan error
}

// Args returns the ffmpeg input and output arguments for a width×height
// stream at fps. Frames arrive bottom-up from GL, so they are flipped.
func Args(width, height, fps int) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": strconv.Itoa(fps),
	}
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"r":       strconv.Itoa(fps),
	}
	return
}

// New starts ffmpeg writing to outputFile. ffmpegPath may be empty to use the
// binary found on PATH.
func New(width, height, fps int, outputFile, ffmpegPath string) (*Encoder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", fps)
	}

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := Args(width, height, fps)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(outputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if ffmpegPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(ffmpegPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// unblock a writer if ffmpeg exits early
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	log.Printf("Encoding %dx%d@%d to %s", width, height, fps, outputFile)
	return newEncoder(width, height, pipeWriter, errc), nil
}

func newEncoder(width, height int, pipe io.WriteCloser, done <-chan error) *Encoder {
	return &Encoder{
		width:  width,
		height: height,
		pipe:   pipe,
		done:   done,
	}
}

// FrameSize is the byte length of one frame.
func (e *Encoder) FrameSize() int {
	return e.width * e.height * BytesPerPixel
}

// WriteFrame sends one frame to ffmpeg.
func (e *Encoder) WriteFrame(frame *Frame) error {
	if len(frame.Pixels) != e.FrameSize() {
		return fmt.Errorf("frame %d has %d bytes, expected %d", frame.PTS, len(frame.Pixels), e.FrameSize())
	}
	if _, err := e.pipe.Write(frame.Pixels); err != nil {
		return fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
	}
	e.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (e *Encoder) Frames() int64 {
	return e.frames
}

// Close ends the stream and waits for ffmpeg to finish.
func (e *Encoder) Close() error {
	if err := e.pipe.Close(); err != nil {
		return err
	}
	if err := <-e.done; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
