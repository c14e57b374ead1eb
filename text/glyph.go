package text

// Glyph is a fixed-size intensity bitmap for a single character.
// Pix holds Width*Height bytes, row-major.
type Glyph struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the intensity at column col, row row, or 0 outside the glyph.
func (g Glyph) At(col, row int) uint8 {
	if col < 0 || row < 0 || col >= g.Width || row >= g.Height {
		return 0
	}
	return g.Pix[row*g.Width+col]
}

// Empty reports whether no pixel of the glyph has any coverage.
func (g Glyph) Empty() bool {
	for _, v := range g.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}
