package sunburst

import "github.com/gogpu/sunburst/text"

// TextStyle holds the font size (in points) and weight used by DrawText.
type TextStyle struct {
	Size   int
	Weight text.Weight
}

// DefaultTextStyle is the text style of a new Canvas.
var DefaultTextStyle = TextStyle{Size: 16, Weight: text.Regular}

// colorSource selects which paint attribute a pixel write uses.
type colorSource int

const (
	sourceFill colorSource = iota
	sourceStroke
)

// Canvas is an immediate-mode raster surface with fill and stroke paint.
//
// Fill and stroke are independently optional. A drawing operation that
// needs an unset paint skips that part of the shape. All pixel writes are
// clipped by the underlying Pixmap.
type Canvas struct {
	pixmap     *Pixmap
	fill       *Color
	stroke     *Color
	background Color
	textStyle  TextStyle
}

// NewCanvas creates a canvas with a black stroke, no fill, a white
// background and the default text style.
func NewCanvas(width, height int) *Canvas {
	stroke := Black
	return &Canvas{
		pixmap:     NewPixmap(width, height),
		stroke:     &stroke,
		background: White,
		textStyle:  DefaultTextStyle,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pixmap.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pixmap.Height() }

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// Data returns the raw RGB bytes of the canvas.
func (c *Canvas) Data() []uint8 { return c.pixmap.Data() }

// SetFill sets the fill color.
func (c *Canvas) SetFill(col Color) { c.fill = &col }

// NoFill disables filling.
func (c *Canvas) NoFill() { c.fill = nil }

// FillColor returns the fill color and whether filling is enabled.
func (c *Canvas) FillColor() (Color, bool) {
	if c.fill == nil {
		return Color{}, false
	}
	return *c.fill, true
}

// SetStroke sets the stroke color.
func (c *Canvas) SetStroke(col Color) { c.stroke = &col }

// NoStroke disables stroking.
func (c *Canvas) NoStroke() { c.stroke = nil }

// StrokeColor returns the stroke color and whether stroking is enabled.
func (c *Canvas) StrokeColor() (Color, bool) {
	if c.stroke == nil {
		return Color{}, false
	}
	return *c.stroke, true
}

// SetBackground sets the color used by Clear.
func (c *Canvas) SetBackground(col Color) { c.background = col }

// Background returns the color used by Clear.
func (c *Canvas) Background() Color { return c.background }

// SetFontSize sets the text size in points.
func (c *Canvas) SetFontSize(size int) { c.textStyle.Size = size }

// SetFontWeight sets the text weight.
func (c *Canvas) SetFontWeight(w text.Weight) { c.textStyle.Weight = w }

// TextStyle returns the current text style.
func (c *Canvas) TextStyle() TextStyle { return c.textStyle }

// Clear fills the whole canvas with the background color.
func (c *Canvas) Clear() {
	c.pixmap.Clear(c.background)
}

// plot writes one pixel with the selected paint, if that paint is set.
func (c *Canvas) plot(x, y int, src colorSource) {
	var col *Color
	switch src {
	case sourceFill:
		col = c.fill
	case sourceStroke:
		col = c.stroke
	}
	if col == nil {
		return
	}
	c.pixmap.SetPixel(x, y, *col)
}
