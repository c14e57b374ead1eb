package sunburst

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned (wrapped in a *HexError) when a hex color
// string cannot be parsed.
var ErrInvalidHex = errors.New("sunburst: invalid hex color")

// HexError describes a hex color string that could not be parsed.
type HexError struct {
	Input  string
	Reason string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("sunburst: invalid hex color %q: %s", e.Input, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidHex).
func (e *HexError) Unwrap() error {
	return ErrInvalidHex
}

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses a color in "#rgb" or "#rrggbb" form.
// In the short form every nibble is duplicated, so "#f80" equals "#ff8800".
func Hex(s string) (Color, error) {
	if s == "" || s[0] != '#' {
		return Color{}, &HexError{Input: s, Reason: "missing '#' prefix"}
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, &HexError{Input: s, Reason: "want 3 or 6 hex digits"}
	}

	var v uint32
	for i := 0; i < len(digits); i++ {
		n, ok := hexDigit(digits[i])
		if !ok {
			return Color{}, &HexError{Input: s, Reason: fmt.Sprintf("bad digit %q", digits[i])}
		}
		v = v<<4 | uint32(n)
	}

	if len(digits) == 3 {
		r := uint8((v >> 8) & 0xF)
		g := uint8((v >> 4) & 0xF)
		b := uint8(v & 0xF)
		return RGB(r|r<<4, g|g<<4, b|b<<4), nil
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustHex is like Hex but panics on malformed input.
// Intended for package-level palettes.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Lerp interpolates from c towards to by amount.
// Each channel is clamped to [0, 254] before truncation.
func (c Color) Lerp(to Color, amount float64) Color {
	return Color{
		R: lerpChannel(c.R, to.R, amount),
		G: lerpChannel(c.G, to.G, amount),
		B: lerpChannel(c.B, to.B, amount),
	}
}

func lerpChannel(start, end uint8, amount float64) uint8 {
	v := float64(start) + (float64(end)-float64(start))*amount
	return uint8(clamp(v, 0, 254))
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// String returns the color in "#rrggbb" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor converts a standard color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
