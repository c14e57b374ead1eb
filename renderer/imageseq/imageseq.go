// Package imageseq writes every sunburst frame to its own image file.
//
// The target is a fmt pattern with one integer verb, for example
// "out/frame-%05d.png". The file extension selects the encoder:
//
//	.png         image/png
//	.bmp         golang.org/x/image/bmp
//	.tif, .tiff  golang.org/x/image/tiff (deflate compressed)
package imageseq

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/sunburst"
	"github.com/gogpu/sunburst/renderer"
)

// Kind is the registry name of the image sequence renderer.
const Kind = "imageseq"

// DefaultPattern is used when the target is empty.
const DefaultPattern = "frame-%05d.png"

var (
	// ErrUnsupportedFormat is returned for a pattern with an unknown extension.
	ErrUnsupportedFormat = errors.New("imageseq: unsupported image format")

	// ErrBadPattern is returned when the pattern has no integer verb.
	ErrBadPattern = errors.New("imageseq: pattern needs one integer verb")
)

func init() {
	renderer.Register(Kind, func(target string, _, _ int) (sunburst.Renderer, error) {
		return New(target)
	})
}

// Encoder writes one image.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Renderer saves each presented frame as a numbered image file.
type Renderer struct {
	pattern string
	encode  Encoder
	next    int
}

// New returns a renderer for pattern. Frames are numbered from 0.
func New(pattern string) (*Renderer, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !strings.Contains(pattern, "%") {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	ext := strings.ToLower(filepath.Ext(pattern))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &Renderer{pattern: pattern, encode: enc}, nil
}

// Path returns the file name used for frame n.
func (r *Renderer) Path(n int) string {
	return fmt.Sprintf(r.pattern, n)
}

// Present encodes the canvas into the next file of the sequence.
func (r *Renderer) Present(c *sunburst.Canvas) (bool, error) {
	path := r.Path(r.next)
	if err := r.write(path, c.Pixmap().ToImage()); err != nil {
		return false, err
	}
	r.next++
	return true, nil
}

func (r *Renderer) write(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageseq: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("imageseq: close %s: %w", path, cerr)
		}
	}()
	if err := r.encode(f, img); err != nil {
		return fmt.Errorf("imageseq: encode %s: %w", path, err)
	}
	return nil
}

// Frames returns the number of files written.
func (r *Renderer) Frames() int { return r.next }
