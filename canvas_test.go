package sunburst

import (
	"testing"

	"github.com/gogpu/sunburst/text"
)

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas(8, 6)

	if c.Width() != 8 || c.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", c.Width(), c.Height())
	}
	if col, ok := c.StrokeColor(); !ok || col != Black {
		t.Errorf("StrokeColor() = %v, %v, want black", col, ok)
	}
	if _, ok := c.FillColor(); ok {
		t.Error("FillColor() set on a new canvas")
	}
	if c.Background() != White {
		t.Errorf("Background() = %v, want white", c.Background())
	}
	if c.TextStyle() != DefaultTextStyle {
		t.Errorf("TextStyle() = %+v, want %+v", c.TextStyle(), DefaultTextStyle)
	}
	if got := painted(c); len(got) != 0 {
		t.Errorf("new canvas has %d non-background pixels", len(got))
	}
}

func TestCanvasPaintToggles(t *testing.T) {
	c := NewCanvas(4, 4)

	c.SetFill(Red)
	if col, ok := c.FillColor(); !ok || col != Red {
		t.Errorf("FillColor() = %v, %v", col, ok)
	}
	c.NoFill()
	if _, ok := c.FillColor(); ok {
		t.Error("FillColor() still set after NoFill")
	}

	c.NoStroke()
	if _, ok := c.StrokeColor(); ok {
		t.Error("StrokeColor() still set after NoStroke")
	}
	c.SetStroke(Green)
	if col, ok := c.StrokeColor(); !ok || col != Green {
		t.Errorf("StrokeColor() = %v, %v", col, ok)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(5, 5)
	c.SetFill(Red)
	c.DrawRect(NewIntRect(Pt(0, 0), 4, 4))

	c.SetBackground(Blue)
	c.Clear()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := pixelAt(t, c, x, y); got != Blue {
				t.Fatalf("pixel (%d, %d) = %v after Clear, want blue", x, y, got)
			}
		}
	}
}

func TestCanvasTextStyle(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetFontSize(32)
	c.SetFontWeight(text.Bold)

	want := TextStyle{Size: 32, Weight: text.Bold}
	if c.TextStyle() != want {
		t.Errorf("TextStyle() = %+v, want %+v", c.TextStyle(), want)
	}
}
