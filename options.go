package bitarr

type options struct {
	logger *Logger
}

// Option configures New.
type Option func(*options)

// WithLogger configures a diagnostic sink for rotation tracing.
// Pass nil to disable tracing (the default).
//
// Example:
//
//	logger := bitarr.NewTextLogger(slog.LevelDebug)
//	b, _ := bitarr.New(128, bitarr.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
