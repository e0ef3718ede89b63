// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// Logger is the subset of charm's logger the rest of the code relies on.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

var defaultLogger atomic.Pointer[charm.Logger]

func init() {
	defaultLogger.Store(New(os.Stderr))
}

// New creates a logger writing to w at warn level.
func New(w io.Writer) *charm.Logger {
	l := charm.NewWithOptions(w, charm.Options{
		Prefix:          "crs",
		ReportTimestamp: false,
		Level:           charm.WarnLevel,
	})
	return l
}

// Default returns the process-wide logger.
func Default() *charm.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l *charm.Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// SetLevel parses level ("debug", "info", "warn", "error") and applies it to the default logger.
// An empty level leaves the current level untouched.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := charm.ParseLevel(level)
	if err != nil {
		return err
	}
	Default().SetLevel(lvl)
	return nil
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *charm.Logger {
	return charm.New(io.Discard)
}
