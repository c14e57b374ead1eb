package sunburst

import "time"

// Clock is the time source of a Sketch.
// Tests substitute a fake clock to make frame pacing deterministic.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the monotonic wall clock and sleeps for real.
type SystemClock struct{}

// Now returns the current time with a monotonic clock reading.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
