package pipeline

import (
	"log/slog"

	"github.com/askiada/imagecraft/pkg/pipeline/model"
)

type Option func(p *Pipeline)

// WithHooks registers pipeline options notified around every filter.
func WithHooks(opts ...model.PipelineOption) Option {
	return func(p *Pipeline) {
		p.opts = append(p.opts, opts...)
	}
}

// WithLogger sets the logger used for progress reporting instead of the package logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithConcurrency lets every filter split its rows across up to concurrent goroutines.
// The output is the same as a sequential run.
func WithConcurrency(concurrent int) Option {
	return func(p *Pipeline) {
		p.concurrent = concurrent
	}
}
