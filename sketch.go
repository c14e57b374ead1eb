package sunburst

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// pacingThreshold is the smallest remaining frame time worth sleeping for.
// Shorter gaps are skipped; overruns are never caught up.
const pacingThreshold = 10 * time.Millisecond

// Sketch errors.
var (
	// ErrInvalidSize is returned for a non-positive canvas size.
	ErrInvalidSize = errors.New("sunburst: canvas size must be positive")

	// ErrAlreadyRun is returned when Run is called a second time.
	ErrAlreadyRun = errors.New("sunburst: sketch already run")
)

// Phase is the lifecycle position of a Sketch.
type Phase int

const (
	// PhaseConfigured is the phase between NewSketch and Run.
	PhaseConfigured Phase = iota
	// PhaseRunning is the phase while Run is executing frames.
	PhaseRunning
	// PhaseStopped is the phase after Run returned.
	PhaseStopped
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseConfigured:
		return "configured"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Metrics describes the timing of the previous frame.
type Metrics struct {
	// FrameCount is the number of presented frames. It wraps on overflow.
	FrameCount uint64
	// DeltaTime is the time update, draw and present took last frame,
	// excluding the pacing sleep.
	DeltaTime time.Duration
	// FramesPerSecond is 1000 / DeltaTime in whole milliseconds. It keeps
	// its previous value when a frame took less than a millisecond.
	FramesPerSecond int
}

// Callback signatures. State is passed by pointer so update can mutate it.
type (
	SetupFunc[S any]  func(s *Sketch[S])
	UpdateFunc[S any] func(state *S, m Metrics)
	DrawFunc[S any]   func(c *Canvas, state *S, m Metrics)
)

// Sketch owns a canvas, user state and a renderer, and drives the frame
// loop: setup once, then update, draw, present and pace every frame.
//
// A Sketch is not safe for concurrent use; all callbacks run on the
// goroutine that called Run.
type Sketch[S any] struct {
	canvas   *Canvas
	state    S
	metrics  Metrics
	renderer Renderer
	clock    Clock
	log      *slog.Logger

	frameDuration time.Duration
	phase         Phase

	onSetup  SetupFunc[S]
	onUpdate UpdateFunc[S]
	onDraw   DrawFunc[S]
}

// NewSketch creates a sketch. newState is called immediately to build the
// initial user state; a nil newState leaves the zero value.
func NewSketch[S any](newState func() S, opts ...Option) (*Sketch[S], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}

	s := &Sketch[S]{
		canvas:        NewCanvas(o.width, o.height),
		renderer:      o.renderer,
		clock:         o.clock,
		log:           o.logger,
		frameDuration: frameDurationFor(o.fps),
		phase:         PhaseConfigured,
	}
	if newState != nil {
		s.state = newState()
	}
	return s, nil
}

// OnSetup registers the callback run once before the first frame.
// It receives the whole sketch, so it can change canvas defaults or seed state.
func (s *Sketch[S]) OnSetup(fn SetupFunc[S]) *Sketch[S] {
	s.onSetup = fn
	return s
}

// OnUpdate registers the per-frame state update callback.
func (s *Sketch[S]) OnUpdate(fn UpdateFunc[S]) *Sketch[S] {
	s.onUpdate = fn
	return s
}

// OnDraw registers the per-frame draw callback.
func (s *Sketch[S]) OnDraw(fn DrawFunc[S]) *Sketch[S] {
	s.onDraw = fn
	return s
}

// SetRenderer replaces the renderer.
func (s *Sketch[S]) SetRenderer(r Renderer) {
	s.renderer = r
}

// SetFPS changes the target frame rate; fps <= 0 disables pacing.
func (s *Sketch[S]) SetFPS(fps int) {
	s.frameDuration = frameDurationFor(fps)
}

// FrameDuration returns the target frame duration, 0 when unpaced.
func (s *Sketch[S]) FrameDuration() time.Duration { return s.frameDuration }

// Canvas returns the sketch canvas.
func (s *Sketch[S]) Canvas() *Canvas { return s.canvas }

// State returns a pointer to the user state.
func (s *Sketch[S]) State() *S { return &s.state }

// Metrics returns the timing of the last completed frame.
func (s *Sketch[S]) Metrics() Metrics { return s.metrics }

// FrameCount returns the number of presented frames.
func (s *Sketch[S]) FrameCount() uint64 { return s.metrics.FrameCount }

// DeltaTime returns the duration of the last completed frame.
func (s *Sketch[S]) DeltaTime() time.Duration { return s.metrics.DeltaTime }

// Phase returns the lifecycle phase.
func (s *Sketch[S]) Phase() Phase { return s.phase }

func (s *Sketch[S]) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return Logger()
}

// Run executes the setup callback once and then runs frames until the
// renderer asks to stop or fails. It returns nil on a cooperative stop and
// the renderer error otherwise. Without a renderer Run only returns when
// the process ends.
//
// Run may be called only once.
func (s *Sketch[S]) Run() (err error) {
	if s.phase != PhaseConfigured {
		return ErrAlreadyRun
	}
	s.phase = PhaseRunning

	log := s.logger()
	log.Info("sketch started",
		"width", s.canvas.Width(),
		"height", s.canvas.Height(),
		"frameDuration", s.frameDuration)

	defer func() {
		s.phase = PhaseStopped
		if c, ok := s.renderer.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("sunburst: close renderer: %w", cerr)
			}
		}
		log.Info("sketch stopped", "frames", s.metrics.FrameCount, "err", err)
	}()

	if s.onSetup != nil {
		s.onSetup(s)
	}

	for {
		more, err := s.frame()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// frame runs one iteration of the loop. It reports whether another frame
// should follow.
func (s *Sketch[S]) frame() (bool, error) {
	start := s.clock.Now()

	if s.onUpdate != nil {
		s.onUpdate(&s.state, s.metrics)
	}
	if s.onDraw != nil {
		s.onDraw(s.canvas, &s.state, s.metrics)
	}
	if s.renderer != nil {
		more, err := s.renderer.Present(s.canvas)
		if err != nil {
			return false, fmt.Errorf("sunburst: present frame %d: %w", s.metrics.FrameCount, err)
		}
		if !more {
			return false, nil
		}
	}

	s.metrics.FrameCount++

	elapsed := s.clock.Now().Sub(start)
	s.metrics.DeltaTime = elapsed
	if ms := elapsed.Milliseconds(); ms > 0 {
		s.metrics.FramesPerSecond = int(1000 / ms)
	}

	if s.frameDuration > 0 {
		remaining := s.frameDuration - elapsed
		switch {
		case remaining > pacingThreshold:
			s.clock.Sleep(remaining)
		case remaining < 0:
			s.logger().Debug("frame overran",
				"frame", s.metrics.FrameCount,
				"elapsed", elapsed,
				"target", s.frameDuration)
		}
	}
	return true, nil
}
