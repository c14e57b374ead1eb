package sunburst

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// bytesPerPixel is the stride of one pixel in Pixmap data.
const bytesPerPixel = 3

// Pixmap is a fixed-size RGB pixel buffer.
//
// Pixels are stored row-major, channel-interleaved (R, G, B) with no
// padding, so Data can be written out as-is by stream renderers.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions, filled white.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
	p.Clear(White)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format).
// The slice aliases the pixmap; its length never changes.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// offset returns the byte offset of (x, y), or -1 when the pixel lies
// outside the buffer.
func (p *Pixmap) offset(x, y int) int {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return -1
	}
	i := bytesPerPixel * (y*p.width + x)
	if i >= len(p.data) {
		return -1
	}
	return i
}

// SetPixel sets the color of a single pixel.
// Writes outside the pixmap are silently discarded.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	i := p.offset(x, y)
	if i < 0 {
		return
	}
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// Pixel returns the color of a single pixel and whether (x, y) is inside
// the pixmap.
func (p *Pixmap) Pixel(x, y int) (Color, bool) {
	i := p.offset(x, y)
	if i < 0 {
		return Color{}, false
	}
	return Color{R: p.data[i], G: p.data[i+1], B: p.data[i+2]}, true
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i+2 < len(p.data); i += bytesPerPixel {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
	}
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for src, dst := 0, 0; src < len(p.data); src, dst = src+bytesPerPixel, dst+4 {
		img.Pix[dst+0] = p.data[src+0]
		img.Pix[dst+1] = p.data[src+1]
		img.Pix[dst+2] = p.data[src+2]
		img.Pix[dst+3] = 0xff
	}
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c, ok := p.Pixel(x, y)
	if !ok {
		return color.RGBA{}
	}
	return c
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
