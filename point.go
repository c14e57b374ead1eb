package sunburst

import "image"

// IntPoint is an integer pixel coordinate.
type IntPoint struct {
	X, Y int
}

// Pt is a convenience function to create an IntPoint.
func Pt(x, y int) IntPoint {
	return IntPoint{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p IntPoint) Add(q IntPoint) IntPoint {
	return IntPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p IntPoint) Sub(q IntPoint) IntPoint {
	return IntPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// IntRect is an axis-aligned rectangle anchored at its top-left corner.
// Width and Height are never negative.
type IntRect struct {
	Location IntPoint
	Width    int
	Height   int
}

// NewIntRect creates a rectangle. A negative width or height is normalized
// by moving the location and negating the dimension, so the rectangle covers
// the same area regardless of sign.
func NewIntRect(loc IntPoint, width, height int) IntRect {
	if width < 0 {
		loc.X += width
		width = -width
	}
	if height < 0 {
		loc.Y += height
		height = -height
	}
	return IntRect{Location: loc, Width: width, Height: height}
}

// X returns the left edge.
func (r IntRect) X() int { return r.Location.X }

// Y returns the top edge.
func (r IntRect) Y() int { return r.Location.Y }

// Max returns the bottom-right corner, X()+Width and Y()+Height.
func (r IntRect) Max() IntPoint {
	return IntPoint{X: r.Location.X + r.Width, Y: r.Location.Y + r.Height}
}

// Bounds converts the rectangle to an image.Rectangle.
func (r IntRect) Bounds() image.Rectangle {
	m := r.Max()
	return image.Rect(r.Location.X, r.Location.Y, m.X, m.Y)
}
