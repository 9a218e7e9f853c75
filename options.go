package imagefx

import "log/slog"

// Option configures a single filter call.
//
// Example:
//
//	err := imagefx.Blur(ctx, src, dst, imagefx.DefaultBlurConfig(4),
//	    imagefx.WithProgress(bar),
//	    imagefx.WithLogger(logger))
type Option func(*callOptions)

// callOptions holds the optional collaborators of a filter call.
type callOptions struct {
	progress Progress
	logger   *slog.Logger
}

// defaultOptions returns silent options bound to the package logger.
func defaultOptions() callOptions {
	return callOptions{
		progress: nopProgress{},
		logger:   Logger(),
	}
}

// WithProgress reports row and column passes to p.
func WithProgress(p Progress) Option {
	return func(o *callOptions) {
		if p != nil {
			o.progress = p
		}
	}
}

// WithLogger overrides the package logger for one call.
func WithLogger(l *slog.Logger) Option {
	return func(o *callOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
