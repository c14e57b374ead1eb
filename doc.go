// Package sunburst provides an immediate-mode raster canvas and a frame
// scheduler for small generative sketches.
//
// # Overview
//
// A sketch supplies user state plus optional setup, update and draw
// callbacks. Every frame the scheduler calls update, then draw, then hands
// the canvas to a Renderer, and finally sleeps until the target frame
// duration has passed. Nothing is retained between frames except what the
// user state keeps: each frame is redrawn from scratch.
//
// # Quick Start
//
//	type state struct {
//	    trail *sunburst.Path
//	    t     float64
//	}
//
//	sk, err := sunburst.NewSketch(func() state {
//	    return state{trail: sunburst.NewPath()}
//	}, sunburst.WithSize(400, 400), sunburst.WithRenderer(ppm.New(os.Stdout)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sk.OnUpdate(func(s *state, m sunburst.Metrics) {
//	    s.t += 0.05
//	    s.trail.LineTo(sunburst.Pt(200+int(150*math.Cos(s.t)), 200+int(150*math.Sin(3*s.t))))
//	})
//	sk.OnDraw(func(c *sunburst.Canvas, s *state, m sunburst.Metrics) {
//	    c.Clear()
//	    c.DrawPath(s.trail)
//	})
//	log.Fatal(sk.Run())
//
// # Rasterization
//
// All drawing is integer and aliased. Lines use Bresenham stepping,
// ellipses a row-by-row midpoint search, text a fixed grid of bitmap
// glyphs (package text). Every shape has a stroke part and/or a fill
// part; either paint may be unset, which skips that part.
//
// Coordinates outside the canvas are clipped silently, one pixel at a
// time. No drawing operation returns an error.
//
// # Renderers
//
// The renderer package holds a name-keyed registry; its sub-packages
// provide a binary PPM stream (renderer/ppm), an interactive terminal
// window (renderer/terminal) and numbered image files (renderer/imageseq).
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package sunburst

// Version is the current version of the library.
const Version = "0.1.0"
