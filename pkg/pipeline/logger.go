package pipeline

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so messages are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by pipelines created without WithLogger. Pass nil to silence them
// again. It is safe for concurrent use.
//
// Levels:
//   - [slog.LevelInfo]: one record per filter before it runs
//   - [slog.LevelDebug]: duration and image size after each filter
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}

	loggerPtr.Store(logger)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
