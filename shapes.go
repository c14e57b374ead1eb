package sunburst

// DrawPoint strokes a single pixel.
func (c *Canvas) DrawPoint(p IntPoint) {
	c.plot(p.X, p.Y, sourceStroke)
}

// DrawLine strokes an 8-connected line from start to end, both inclusive,
// using integer Bresenham stepping along the dominant axis.
func (c *Canvas) DrawLine(start, end IntPoint) {
	// Axis-aligned fast paths. The general pass below still runs and
	// rewrites the same pixels, including the far endpoint.
	if start.X == end.X {
		for y := min(start.Y, end.Y); y < max(start.Y, end.Y); y++ {
			c.plot(start.X, y, sourceStroke)
		}
	}
	if start.Y == end.Y {
		for x := min(start.X, end.X); x < max(start.X, end.X); x++ {
			c.plot(x, start.Y, sourceStroke)
		}
	}

	p1, p2 := start, end
	if abs(p2.X-p1.X) > abs(p2.Y-p1.Y) {
		if p1.X > p2.X {
			p1, p2 = p2, p1
		}
	} else if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	acc := 0

	if dx > dy {
		// x dominant, dx > 0.
		step := sign(dy)
		delta := 2 * abs(dy)
		y := p1.Y
		for x := p1.X; x <= p2.X; x++ {
			c.plot(x, y, sourceStroke)
			acc += delta
			if acc >= dx {
				y += step
				acc -= 2 * dx
			}
		}
		return
	}

	// y dominant, dy >= 0.
	step := sign(dx)
	delta := 2 * abs(dx)
	x := p1.X
	for y := p1.Y; y <= p2.Y; y++ {
		c.plot(x, y, sourceStroke)
		acc += delta
		if acc >= dy {
			x += step
			acc -= 2 * dy
		}
	}
}

// DrawRect fills and strokes a rectangle.
//
// The fill covers [X, X+Width] x [Y, Y+Height] with both bounds inclusive,
// one column and one row more than Width x Height. The stroke is drawn as
// four lines along the same inclusive edges.
func (c *Canvas) DrawRect(r IntRect) {
	r = NewIntRect(r.Location, r.Width, r.Height)
	far := r.Max()

	if c.fill != nil {
		for x := r.X(); x <= far.X; x++ {
			for y := r.Y(); y <= far.Y; y++ {
				c.plot(x, y, sourceFill)
			}
		}
	}

	if c.stroke != nil {
		topRight := Pt(far.X, r.Y())
		lowerLeft := Pt(r.X(), far.Y)
		lowerRight := far

		c.DrawLine(r.Location, topRight)
		c.DrawLine(topRight, lowerRight)
		c.DrawLine(lowerRight, lowerLeft)
		c.DrawLine(lowerLeft, r.Location)
	}
}

// DrawSquare draws the rectangle at origin with both sides equal to size.
func (c *Canvas) DrawSquare(origin IntPoint, size int) {
	c.DrawRect(NewIntRect(origin, size, size))
}

// DrawEllipse draws an axis-aligned ellipse with horizontal radius width
// and vertical radius height around center.
//
// Rows are scanned outwards from the center. Each row's half-width is the
// largest x with x²·h² + y²·w² ≤ h²·w², searched downwards from the
// previous row. The interior of every row is filled and the two end pixels
// are stroked; rows above and below the center are mirrored, so the result
// is symmetric about both axes through center.
func (c *Canvas) DrawEllipse(center IntPoint, width, height int) {
	w := abs(width)
	h := abs(height)
	hh := h * h
	ww := w * w
	hhww := hh * ww

	for x := -(w - 1); x < w; x++ {
		c.plot(center.X+x, center.Y, sourceFill)
	}
	c.plot(center.X-w, center.Y, sourceStroke)
	c.plot(center.X+w, center.Y, sourceStroke)

	x0 := w
	dx := 0
	for y := 1; y <= h; y++ {
		// The half-width shrinks at least as fast as it did on the
		// previous row, so the search can start just above x0-dx.
		x1 := x0 - (dx - 1)
		for ; x1 > 0; x1-- {
			if x1*x1*hh+y*y*ww <= hhww {
				break
			}
		}
		dx = x0 - x1
		x0 = x1

		for x := -(x0 - 1); x < x0; x++ {
			c.plot(center.X+x, center.Y-y, sourceFill)
			c.plot(center.X+x, center.Y+y, sourceFill)
		}
		c.plot(center.X+x0, center.Y-y, sourceStroke)
		c.plot(center.X+x0, center.Y+y, sourceStroke)
		c.plot(center.X-x0, center.Y+y, sourceStroke)
		c.plot(center.X-x0, center.Y-y, sourceStroke)
	}
}

// DrawCircle draws a circle of radius r around center.
func (c *Canvas) DrawCircle(center IntPoint, r int) {
	c.DrawEllipse(center, r, r)
}

// DrawPath strokes every LineTo segment of p.
//
// The cursor starts at the origin; MoveTo relocates it without drawing.
// A path that does not begin with MoveTo draws its first line from (0, 0).
func (c *Canvas) DrawPath(p *Path) {
	if p == nil || c.stroke == nil {
		return
	}
	var cursor IntPoint
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case MoveTo:
			cursor = s.Point
		case LineTo:
			c.DrawLine(cursor, s.Point)
			cursor = s.Point
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
