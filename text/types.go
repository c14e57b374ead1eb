package text

import "fmt"

// Weight selects the stroke thickness of a face.
type Weight int

// Supported weights.
const (
	Light Weight = iota
	Regular
	Bold
)

// String returns the weight name.
func (w Weight) String() string {
	switch w {
	case Light:
		return "Light"
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// ParseWeight parses a weight name (case-sensitive lower or title case).
func ParseWeight(s string) (Weight, error) {
	switch s {
	case "light", "Light":
		return Light, nil
	case "regular", "Regular", "":
		return Regular, nil
	case "bold", "Bold":
		return Bold, nil
	}
	return Regular, fmt.Errorf("text: unknown weight %q", s)
}

// Height is a supported bitmap height in pixels.
// It doubles as the line advance of the face.
type Height int

// Supported bitmap heights.
const (
	Size14 Height = 14
	Size16 Height = 16
	Size18 Height = 18
	Size20 Height = 20
	Size22 Height = 22
	Size24 Height = 24
	Size32 Height = 32
	Size64 Height = 64
)

var heights = [...]Height{Size14, Size16, Size18, Size20, Size22, Size24, Size32, Size64}

// Heights returns all supported bitmap heights in ascending order.
func Heights() []Height {
	out := make([]Height, len(heights))
	copy(out, heights[:])
	return out
}

// HeightFor maps a point size to the smallest bitmap height that can hold it.
// Sizes above 32 all map to Size64.
func HeightFor(size int) Height {
	for _, h := range heights[:len(heights)-1] {
		if size <= int(h) {
			return h
		}
	}
	return Size64
}

// Valid reports whether h is one of the supported heights.
func (h Height) Valid() bool {
	for _, v := range heights {
		if v == h {
			return true
		}
	}
	return false
}
