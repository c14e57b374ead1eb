package sunburst

import (
	"log/slog"
	"time"
)

// Defaults applied when the corresponding option is omitted.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFPS    = 30
)

// Option configures a Sketch during creation.
//
// Example:
//
//	// Default 800x600 canvas at 30 fps, no renderer
//	sk, err := sunburst.NewSketch(newState)
//
//	// Stream frames to stdout
//	sk, err := sunburst.NewSketch(newState,
//	    sunburst.WithSize(1000, 1000),
//	    sunburst.WithFPS(10),
//	    sunburst.WithRenderer(ppm.New(os.Stdout)),
//	)
type Option func(*options)

// options holds optional configuration for Sketch creation.
type options struct {
	width    int
	height   int
	fps      int
	renderer Renderer
	clock    Clock
	logger   *slog.Logger
}

// defaultOptions returns the default sketch options.
func defaultOptions() options {
	return options{
		width:  DefaultWidth,
		height: DefaultHeight,
		fps:    DefaultFPS,
		clock:  SystemClock{},
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFPS sets the target frame rate. The target frame duration is
// 1000/fps whole milliseconds; fps <= 0 disables pacing.
func WithFPS(fps int) Option {
	return func(o *options) {
		o.fps = fps
	}
}

// WithRenderer sets the renderer that presents every frame.
// Without a renderer frames are drawn but never shown.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithClock replaces the wall clock used for frame timing and pacing.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets a logger for this sketch only. By default the sketch
// logs through Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// frameDurationFor converts a target frame rate to a frame duration.
func frameDurationFor(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(1000/fps) * time.Millisecond
}
