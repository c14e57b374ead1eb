package sunburst

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sunburst/text"
)

// glyphThreshold is the minimum glyph intensity that produces a pixel.
// Bitmap text is not blended; anything at or below it is left untouched.
const glyphThreshold = 80

// DrawText draws msg with the fill color, its top-left corner at origin.
//
// The text is laid out on a fixed character grid: each glyph advances by
// the face's cell width, and each '\n' starts a new line one bitmap height
// lower. The font size is bucketed with text.HeightFor. Characters without
// a glyph are drawn as spaces. DrawText does nothing when fill is unset.
func (c *Canvas) DrawText(origin IntPoint, msg string) {
	if c.fill == nil {
		return
	}

	src, err := text.Default()
	if err != nil {
		Logger().Warn("sunburst: text unavailable", "err", err)
		return
	}
	face, err := src.Face(c.textStyle.Weight, text.HeightFor(c.textStyle.Size))
	if err != nil {
		Logger().Warn("sunburst: text face unavailable", "err", err)
		return
	}
	c.drawTextWith(face, origin, msg)
}

func (c *Canvas) drawTextWith(face *text.Face, origin IntPoint, msg string) {
	cellWidth := face.CellWidth()
	lineY := origin.Y

	for _, line := range strings.Split(norm.NFC.String(msg), "\n") {
		col := 0
		for _, r := range line {
			g, _ := face.Glyph(r)
			x0 := origin.X + col*cellWidth
			for row := 0; row < g.Height; row++ {
				for gx := 0; gx < g.Width; gx++ {
					if g.At(gx, row) > glyphThreshold {
						c.plot(x0+gx, lineY+row, sourceFill)
					}
				}
			}
			col++
		}
		lineY += face.Height()
	}
}

// TextSize returns the width and height in pixels that DrawText would use
// for msg with the current text style.
func (c *Canvas) TextSize(msg string) (width, height int) {
	src, err := text.Default()
	if err != nil {
		return 0, 0
	}
	face, err := src.Face(c.textStyle.Weight, text.HeightFor(c.textStyle.Size))
	if err != nil {
		return 0, 0
	}
	lines := strings.Split(norm.NFC.String(msg), "\n")
	longest := 0
	for _, line := range lines {
		longest = max(longest, len([]rune(line)))
	}
	return longest * face.CellWidth(), len(lines) * face.Height()
}
