package main

import "github.com/gogpu/sunburst"

// Lorenz system parameters and integration step.
const (
	lorenzA     = 10.0
	lorenzB     = 28.0
	lorenzC     = 8.0 / 3.0
	lorenzDT    = 0.01
	lorenzScale = 14.0
)

type lorenz struct {
	x, y, z float64
	origin  sunburst.IntPoint
	path    *sunburst.Path
}

// step advances the system by one Euler step and extends the trail.
func (l *lorenz) step() {
	dx := lorenzA * (l.y - l.x) * lorenzDT
	dy := (l.x*(lorenzB-l.z) - l.y) * lorenzDT
	dz := (l.x*l.y - lorenzC*l.z) * lorenzDT
	l.x += dx
	l.y += dy
	l.z += dz

	l.path.LineTo(l.origin.Add(sunburst.Pt(int(lorenzScale*l.x), int(lorenzScale*l.y))))
}

func newLorenz(_ uint64, opts []sunburst.Option) (runner, error) {
	sk, err := sunburst.NewSketch(func() lorenz {
		return lorenz{x: 0.5, y: 0.05, z: 0.3, path: sunburst.NewPath()}
	}, opts...)
	if err != nil {
		return nil, err
	}

	sk.OnSetup(func(s *sunburst.Sketch[lorenz]) {
		st := s.State()
		st.origin = sunburst.Pt(s.Canvas().Width()/2, s.Canvas().Height()/2)
		st.path.MoveTo(st.origin)
	})
	sk.OnUpdate(func(st *lorenz, _ sunburst.Metrics) {
		st.step()
	})
	sk.OnDraw(func(c *sunburst.Canvas, st *lorenz, _ sunburst.Metrics) {
		c.Clear()
		c.DrawPath(st.path)
	})
	return sk, nil
}
