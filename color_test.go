package sunburst

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", RGB(255, 255, 255)},
		{"#000", RGB(0, 0, 0)},
		{"#f80", RGB(255, 136, 0)},
		{"#ff00ff", RGB(255, 0, 255)},
		{"#1A2b3C", RGB(0x1a, 0x2b, 0x3c)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "nothex", "fff", "#ff", "#ffff", "#12345", "#1234567", "#ggg", "#12x456"} {
		t.Run(in, func(t *testing.T) {
			_, err := Hex(in)
			if err == nil {
				t.Fatalf("Hex(%q) succeeded, want error", in)
			}
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("Hex(%q) error = %v, want ErrInvalidHex", in, err)
			}
			var he *HexError
			if !errors.As(err, &he) || he.Input != in {
				t.Errorf("Hex(%q) error %v is not a *HexError for the input", in, err)
			}
		})
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex(\"bad\") did not panic")
		}
	}()
	MustHex("bad")
}

func TestColorLerp(t *testing.T) {
	tests := []struct {
		name   string
		from   Color
		to     Color
		amount float64
		want   Color
	}{
		{"start", RGB(10, 20, 30), RGB(200, 200, 200), 0, RGB(10, 20, 30)},
		{"half", Black, White, 0.5, RGB(127, 127, 127)},
		{"end clamps to 254", Black, White, 1, RGB(254, 254, 254)},
		{"overshoot clamps", Black, White, 2, RGB(254, 254, 254)},
		{"undershoot clamps", White, Black, 2, RGB(0, 0, 0)},
		{"down", White, Black, 1, RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Lerp(tt.to, tt.amount); got != tt.want {
				t.Errorf("Lerp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorRGBAOpaque(t *testing.T) {
	r, g, b, a := RGB(255, 128, 0).RGBA()
	if r != 0xffff || g != 128*0x101 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255}); got != RGB(1, 2, 3) {
		t.Errorf("FromColor() = %v, want #010203", got)
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(255, 136, 0).String(); got != "#ff8800" {
		t.Errorf("String() = %q, want #ff8800", got)
	}
}
