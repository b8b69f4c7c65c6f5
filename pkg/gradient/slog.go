package gradient

import (
	"io"
	"log/slog"
	"os"
)

// SlogAdapter routes build diagnostics to a *slog.Logger. Every record is
// tagged component=gradient so gradient messages can be filtered out of a
// shared application log:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	g, err := gradient.New(cfg, &gradient.Options{
//		Logger: gradient.NewSlogAdapter(logger),
//	})
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter tags logger with the gradient component. A nil logger
// means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger.With("component", "gradient")}
}

func fromHandler(h slog.Handler) Logger {
	return NewSlogAdapter(slog.New(h))
}

func (s *SlogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *SlogAdapter) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *SlogAdapter) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *SlogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// DefaultLogger prints Info and above as text on stderr. Rejected configs
// are returned as errors, so at this level only the stops-equal-steps
// warning shows up.
func DefaultLogger() Logger {
	return fromHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// DebugLogger also prints the per-build debug records (model, steps, stop
// count) with their source location. Useful when tuning stop positions.
func DebugLogger() Logger {
	return fromHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
}

// JSONLogger writes records at level and above to w as JSON lines, or to
// stderr when w is nil.
func JSONLogger(w io.Writer, level slog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	return fromHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NopLogger is the Options default.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
