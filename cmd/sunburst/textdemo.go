package main

import (
	"fmt"

	"github.com/gogpu/sunburst"
	"github.com/gogpu/sunburst/text"
)

var palette = []sunburst.Color{
	sunburst.MustHex("#264653"),
	sunburst.MustHex("#2a9d8f"),
	sunburst.MustHex("#e9c46a"),
	sunburst.MustHex("#f4a261"),
	sunburst.MustHex("#e76f51"),
}

type textLine struct {
	size   int
	weight text.Weight
	msg    string
}

var specimen = []textLine{
	{64, text.Bold, "sunburst"},
	{32, text.Regular, "immediate-mode sketches"},
	{24, text.Light, "Light 24"},
	{18, text.Regular, "Regular 18: the quick brown fox"},
	{14, text.Bold, "Bold 14: jumps over the lazy dog"},
}

type textDemo struct {
	phase float64
}

func drawSpecimen(c *sunburst.Canvas, st *textDemo, m sunburst.Metrics) {
	c.Clear()

	y := 8
	for i, line := range specimen {
		from := palette[i%len(palette)]
		to := palette[(i+1)%len(palette)]
		c.SetFill(from.Lerp(to, st.phase))
		c.SetFontSize(line.size)
		c.SetFontWeight(line.weight)
		c.DrawText(sunburst.Pt(8, y), line.msg)

		_, h := c.TextSize(line.msg)
		y += h + 4
	}

	c.SetFill(sunburst.Black)
	c.SetFontSize(14)
	c.SetFontWeight(text.Regular)
	status := fmt.Sprintf("frame %d\nfps   %d\ndelta %v", m.FrameCount, m.FramesPerSecond, m.DeltaTime)
	_, h := c.TextSize(status)
	c.DrawText(sunburst.Pt(8, c.Height()-h-8), status)
}

func newTextDemo(_ uint64, opts []sunburst.Option) (runner, error) {
	sk, err := sunburst.NewSketch[textDemo](nil, opts...)
	if err != nil {
		return nil, err
	}
	sk.OnUpdate(func(st *textDemo, _ sunburst.Metrics) {
		st.phase += 0.02
		if st.phase > 1 {
			st.phase = 0
		}
	})
	sk.OnDraw(drawSpecimen)
	return sk, nil
}
