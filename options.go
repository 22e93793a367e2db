package dawg

import (
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Builder.
type Option func(*options)

// WithLogger sets the logger the builder reports rejected words and
// finished graph sizes to. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
