package gradient

// Options configures how a Gradient is built.
type Options struct {
	// Logger receives build diagnostics, such as a warning when the number
	// of stops equals the number of steps.
	// If nil, no logging is performed.
	Logger Logger

	// Metrics, if non-nil, records every build.
	Metrics *Metrics
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Logger: NopLogger(),
	}
}

// Logger interface for custom logging.
// It follows the slog-style signature for compatibility with Go's structured logging.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

func (o *Options) logger() Logger {
	if o == nil || o.Logger == nil {
		return NopLogger()
	}
	return o.Logger
}

func (o *Options) metrics() *Metrics {
	if o == nil {
		return nil
	}
	return o.Metrics
}
