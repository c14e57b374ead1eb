package main

import (
	"math"

	"github.com/gogpu/sunburst"
)

const (
	spinnerRadius   = 25
	spinnerMargin   = 5
	spinnerMaxCount = 15
	spinnerStep     = 0.005
	indicatorSize   = 2
)

var (
	spinnerGuide  = sunburst.RGB(200, 200, 200)
	spinnerMarker = sunburst.RGB(0, 0, 255)
)

// spinner is a circle with a rotating indicator. Column spinners drive the
// x coordinate of the figures below them, row spinners the y coordinate of
// the figures to their right.
type spinner struct {
	center    sunburst.IntPoint
	angle     float64
	speed     float64
	column    bool
	indicator sunburst.IntPoint
}

func newSpinner(center sunburst.IntPoint, speed float64, column bool) spinner {
	s := spinner{center: center, speed: speed, column: column}
	s.indicator = s.position()
	return s
}

func (s *spinner) position() sunburst.IntPoint {
	return s.center.Add(sunburst.Pt(
		int(math.Cos(s.angle)*spinnerRadius),
		int(math.Sin(s.angle)*spinnerRadius),
	))
}

func (s *spinner) update() {
	s.angle += spinnerStep * s.speed
	s.indicator = s.position()
}

func (s *spinner) finished() bool { return s.angle >= 2*math.Pi }

func (s *spinner) reset() { s.angle = 0 }

func (s *spinner) show(c *sunburst.Canvas) {
	c.SetStroke(sunburst.Black)
	c.NoFill()
	c.DrawCircle(s.center, spinnerRadius)

	c.SetStroke(spinnerGuide)
	if s.column {
		c.DrawLine(sunburst.Pt(s.indicator.X, 0), sunburst.Pt(s.indicator.X, c.Height()))
	} else {
		c.DrawLine(sunburst.Pt(0, s.indicator.Y), sunburst.Pt(c.Width(), s.indicator.Y))
	}

	c.SetStroke(spinnerMarker)
	c.SetFill(spinnerMarker)
	c.DrawSquare(s.indicator.Sub(sunburst.Pt(indicatorSize/2, indicatorSize/2)), indicatorSize)
}

type lissajous struct {
	columns []spinner
	rows    []spinner
	figures []*sunburst.Path
}

// spinnerCount returns how many spinners fit along a side of the given length.
func spinnerCount(side int) int {
	n := (side - 2*(spinnerMargin+spinnerRadius)) / (2*spinnerRadius + spinnerMargin)
	return max(1, min(n, spinnerMaxCount))
}

func newLissajousState(width, height int) lissajous {
	start := spinnerMargin + spinnerRadius
	pitch := 2*spinnerRadius + spinnerMargin
	n := spinnerCount(min(width, height))

	st := lissajous{figures: make([]*sunburst.Path, n*n)}
	for i := 1; i <= n; i++ {
		st.columns = append(st.columns, newSpinner(sunburst.Pt(start+pitch*i, start), float64(i), true))
		st.rows = append(st.rows, newSpinner(sunburst.Pt(start, start+pitch*i), float64(i), false))
	}
	for i := range st.figures {
		st.figures[i] = sunburst.NewPath()
	}
	return st
}

func (st *lissajous) update() {
	for i := range st.columns {
		st.columns[i].update()
	}
	for i := range st.rows {
		st.rows[i].update()
	}

	n := len(st.columns)
	done := true
	for i, fig := range st.figures {
		row, col := &st.rows[i/n], &st.columns[i%n]
		done = done && row.finished() && col.finished()

		next := sunburst.Pt(col.indicator.X, row.indicator.Y)
		if fig.Len() == 0 {
			fig.MoveTo(next)
		} else {
			fig.LineTo(next)
		}
	}

	if done {
		for i := range st.columns {
			st.columns[i].reset()
		}
		for i := range st.rows {
			st.rows[i].reset()
		}
		for _, fig := range st.figures {
			fig.Clear()
		}
	}
}

func newLissajous(_ uint64, opts []sunburst.Option) (runner, error) {
	sk, err := sunburst.NewSketch[lissajous](nil, opts...)
	if err != nil {
		return nil, err
	}

	sk.OnSetup(func(s *sunburst.Sketch[lissajous]) {
		*s.State() = newLissajousState(s.Canvas().Width(), s.Canvas().Height())
	})
	sk.OnUpdate(func(st *lissajous, _ sunburst.Metrics) {
		st.update()
	})
	sk.OnDraw(func(c *sunburst.Canvas, st *lissajous, _ sunburst.Metrics) {
		c.Clear()
		for i := range st.columns {
			st.columns[i].show(c)
		}
		for i := range st.rows {
			st.rows[i].show(c)
		}
		c.SetStroke(spinnerMarker)
		for _, fig := range st.figures {
			c.DrawPath(fig)
		}
	})
	return sk, nil
}
