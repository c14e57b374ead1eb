package main

import (
	"math/rand/v2"

	"github.com/gogpu/sunburst"
)

const (
	maxRects   = 48
	squareSize = 10
	squareStep = 10
)

type coloredRect struct {
	rect  sunburst.IntRect
	color sunburst.Color
}

// rects drops a random rectangle every frame and fades older ones towards
// the background, while a red square falls down the canvas.
type rects struct {
	rng    *rand.Rand
	square sunburst.IntPoint
	items  []coloredRect
	width  int
	height int
}

func (st *rects) randomRect() coloredRect {
	w := st.rng.IntN(max(st.width/4, 1)) + 1
	h := st.rng.IntN(max(st.height/4, 1)) + 1
	loc := sunburst.Pt(st.rng.IntN(st.width), st.rng.IntN(st.height))
	// Half of them get a negative width and grow to the left.
	return coloredRect{
		rect:  sunburst.NewIntRect(loc, w-2*w*st.rng.IntN(2), h),
		color: sunburst.RGB(uint8(st.rng.IntN(256)), uint8(st.rng.IntN(256)), uint8(st.rng.IntN(256))),
	}
}

func (st *rects) update() {
	st.square.Y = (st.square.Y + squareStep) % st.height

	st.items = append(st.items, st.randomRect())
	if len(st.items) > maxRects {
		st.items = st.items[1:]
	}
}

func (st *rects) draw(c *sunburst.Canvas) {
	c.Clear()

	c.NoStroke()
	for i, it := range st.items {
		age := float64(len(st.items)-1-i) / maxRects
		c.SetFill(it.color.Lerp(c.Background(), age))
		c.DrawRect(it.rect)
	}

	c.SetStroke(sunburst.Black)
	c.SetFill(sunburst.Red)
	c.DrawSquare(st.square, squareSize)
}

func newRects(seed uint64, opts []sunburst.Option) (runner, error) {
	sk, err := sunburst.NewSketch(func() rects {
		return rects{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	}, opts...)
	if err != nil {
		return nil, err
	}

	sk.OnSetup(func(s *sunburst.Sketch[rects]) {
		st := s.State()
		st.width, st.height = s.Canvas().Width(), s.Canvas().Height()
		st.square = sunburst.Pt(st.width/6, 0)
		s.Canvas().SetBackground(sunburst.MustHex("#f4f1e8"))
	})
	sk.OnUpdate(func(st *rects, _ sunburst.Metrics) { st.update() })
	sk.OnDraw(func(c *sunburst.Canvas, st *rects, _ sunburst.Metrics) { st.draw(c) })
	return sk, nil
}
