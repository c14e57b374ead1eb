// Package ppm streams sunburst frames as binary PPM (P6) images.
//
// Every frame is written as a complete image: the header
// "P6\n<width> <height>\n255\n" followed by the raw RGB bytes of the
// canvas. Concatenated P6 images form a stream that tools such as
// ffmpeg (-f image2pipe -c:v ppm) or ffplay read directly:
//
//	go run ./cmd/sunburst -renderer ppm | ffplay -f image2pipe -c:v ppm -
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/sunburst"
	"github.com/gogpu/sunburst/renderer"
)

// Kind is the registry name of the PPM renderer.
const Kind = "ppm"

func init() {
	renderer.Register(Kind, func(target string, _, _ int) (sunburst.Renderer, error) {
		return Create(target)
	})
}

// Renderer writes one P6 image per presented frame. It never asks the
// sketch to stop; a write failure is returned as an error instead.
type Renderer struct {
	w      *bufio.Writer
	closer io.Closer
	frames uint64
}

// New returns a renderer writing to w. Closing the renderer does not
// close w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: bufio.NewWriter(w)}
}

// Create opens target for writing. An empty target or "-" selects
// standard output; anything else is created or truncated as a file.
func Create(target string) (*Renderer, error) {
	if IsStdout(target) {
		return New(os.Stdout), nil
	}
	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	r := New(f)
	r.closer = f
	return r, nil
}

// IsStdout reports whether Create would write target to standard output.
func IsStdout(target string) bool {
	return target == "" || target == "-"
}

// Present writes the canvas as one P6 image and flushes it.
func (r *Renderer) Present(c *sunburst.Canvas) (bool, error) {
	if err := Encode(r.w, c.Pixmap()); err != nil {
		return false, err
	}
	if err := r.w.Flush(); err != nil {
		return false, fmt.Errorf("ppm: flush frame %d: %w", r.frames, err)
	}
	r.frames++
	return true, nil
}

// Frames returns the number of frames written.
func (r *Renderer) Frames() uint64 { return r.frames }

// Close flushes buffered output and closes the file opened by Create.
func (r *Renderer) Close() error {
	err := r.w.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
		r.closer = nil
	}
	if err != nil {
		return fmt.Errorf("ppm: close: %w", err)
	}
	sunburst.Logger().Debug("ppm renderer closed", "frames", r.frames)
	return nil
}

// Encode writes pm to w as a single binary PPM image.
func Encode(w io.Writer, pm *sunburst.Pixmap) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", pm.Width(), pm.Height()); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}
	if _, err := w.Write(pm.Data()); err != nil {
		return fmt.Errorf("ppm: write pixels: %w", err)
	}
	return nil
}
