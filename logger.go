package imgfilter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false for all levels,
// so disabled log calls never format their attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var silent = slog.New(discardHandler{})

// current is the package logger. It is swapped atomically so SetLogger may
// race with Executor jobs and Session operations on other goroutines.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes imgfilter's log records to l. Passing nil silences the
// package again, which is also the initial state.
//
// Levels:
//   - [slog.LevelDebug]: one record per filter job (filter, size, bands, workers, elapsed)
//   - [slog.LevelInfo]: completed Session operations (load, filter, rotate, scale, save)
//   - [slog.LevelWarn]: rejected operations (bad parameters, nothing to save)
//   - [slog.LevelError]: failed jobs and I/O errors
//
// Example:
//
//	imgfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger imgfilter writes to. It is safe for concurrent
// use.
func Logger() *slog.Logger {
	return current.Load()
}

// jobLogger returns the package logger annotated with the filter and image
// size of one job. It returns the shared silent logger untouched so that
// disabled logging costs no allocation.
func jobLogger(kind FilterKind, w, h int) *slog.Logger {
	l := Logger()
	if l == silent {
		return l
	}
	return l.With("filter", kind, "width", w, "height", h)
}
