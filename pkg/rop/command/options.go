package command

import "log/slog"

type options struct {
	name   string
	logger *slog.Logger
}

type Option func(*options)

// WithName sets the diagnostic name used in logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{name: "command", logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
