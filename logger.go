package sunburst

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for sunburst and its renderers.
// By default, sunburst produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by sunburst:
//   - [slog.LevelDebug]: per-frame diagnostics (overrun frames, renderer I/O)
//   - [slog.LevelInfo]: sketch lifecycle (start, stop)
//   - [slog.LevelWarn]: non-fatal issues (text face unavailable)
//
// Example:
//
//	sunburst.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// Renderer packages call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
