package encoder

import (
	"bytes"
	"errors"
	"testing"
)

type bufferPipe struct {
	bytes.Buffer
	closed bool
}

func (b *bufferPipe) Close() error {
	b.closed = true
	return nil
}

func TestArgs(t *testing.T) {
	in, out := Args(640, 480, 30)
	want := map[string]string{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         "640x480",
		"framerate": "30",
	}
	for k, v := range want {
		if in[k] != v {
			t.Fatalf("input %s\nhave %v\nwant %v", k, in[k], v)
		}
	}
	if out["vf"] != "vflip" || out["pix_fmt"] != "yuv420p" || out["c:v"] != "libx264" || out["r"] != "30" {
		t.Fatalf("unexpected output args %v", out)
	}
}

func TestWriteFrame(t *testing.T) {
	pipe := &bufferPipe{}
	done := make(chan error, 1)
	e := newEncoder(2, 2, pipe, done)

	if err := e.WriteFrame(&Frame{Pixels: make([]byte, 15), PTS: 0}); err == nil {
		t.Fatal("WriteFrame accepted a short frame")
	}
	for i := 0; i < 3; i++ {
		if err := e.WriteFrame(&Frame{Pixels: make([]byte, 16), PTS: int64(i)}); err != nil {
			t.Fatalf("WriteFrame(%d): %v", i, err)
		}
	}
	if e.Frames() != 3 || pipe.Len() != 48 {
		t.Fatalf("wrote %d frames / %d bytes, want 3 / 48", e.Frames(), pipe.Len())
	}

	done <- nil
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !pipe.closed {
		t.Fatal("Close did not close the pipe")
	}
}

func TestCloseReportsFfmpegError(t *testing.T) {
	done := make(chan error, 1)
	e := newEncoder(1, 1, &bufferPipe{}, done)
	done <- errors.New("exit status 1")
	if err := e.Close(); err == nil {
		t.Fatal("Close swallowed the ffmpeg error")
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(0, 10, 30, "out.mp4", ""); err == nil {
		t.Fatal("New accepted zero width")
	}
	if _, err := New(10, 10, 0, "out.mp4", ""); err == nil {
		t.Fatal("New accepted zero fps")
	}
}
