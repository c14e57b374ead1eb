package sunburst

// PathSegment represents a single segment in a path.
type PathSegment interface {
	isPathSegment()
}

// MoveTo moves the cursor to a point without drawing.
type MoveTo struct {
	Point IntPoint
}

func (MoveTo) isPathSegment() {}

// LineTo draws a line from the cursor to a point.
type LineTo struct {
	Point IntPoint
}

func (LineTo) isPathSegment() {}

// Path is an ordered, append-only log of move and line segments.
//
// A Path never prunes itself. Code that extends a path every frame owns its
// growth and must call Clear when the trail is no longer needed.
type Path struct {
	segments []PathSegment
	current  IntPoint
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]PathSegment, 0, 16),
	}
}

// MoveTo appends a move to pt.
func (p *Path) MoveTo(pt IntPoint) {
	p.segments = append(p.segments, MoveTo{Point: pt})
	p.current = pt
}

// LineTo appends a line to pt.
func (p *Path) LineTo(pt IntPoint) {
	p.segments = append(p.segments, LineTo{Point: pt})
	p.current = pt
}

// Clear removes all segments, keeping the allocated capacity.
func (p *Path) Clear() {
	clear(p.segments)
	p.segments = p.segments[:0]
	p.current = IntPoint{}
}

// Segments returns the path segments in insertion order.
func (p *Path) Segments() []PathSegment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// CurrentPoint returns the end point of the last segment, or the origin
// for an empty path.
func (p *Path) CurrentPoint() IntPoint {
	return p.current
}
