package helpers

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger points Logging at the app logger once it is available.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger set with SetLogger, or slog's default.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func Logging(logType, message string, args ...any) {
	l := Logger()

	switch logType {
	case "error":
		l.Error(message, args...)
	case "debug":
		l.Debug(message, args...)
	case "warn":
		l.Warn(message, args...)
	default:
		l.Info(message, args...)
	}
}
