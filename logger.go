package ggbench

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Front ends may reconfigure logging
// from a goroutine other than the frame loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggbench and for the gg library
// under test. By default nothing is logged. Pass nil to restore the
// silent default.
//
// Log levels used by ggbench:
//   - [slog.LevelDebug]: pool regeneration, resets, bench switches
//   - [slog.LevelInfo]: lifecycle events, saturation reached
//   - [slog.LevelWarn]: skipped frames, present failures
//   - [slog.LevelError]: rejected configuration and resources
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by ggbench.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
