// SPDX-License-Identifier: MIT

package dominance

import "go.uber.org/zap"

// DefaultRounds is the number of refinement rounds used by Compute.
const DefaultRounds = 3

// Option configures Compute and Sampled.
type Option func(*options)

type options struct {
	rounds  int
	workers int
	logger  *zap.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{rounds: DefaultRounds, workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithRounds sets the number of refinement rounds. Values < 1 are ignored.
func WithRounds(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.rounds = n
		}
	}
}

// WithWorkers sets the goroutine limit for each matrix multiplication.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLogger installs a logger for round progress and witnesses.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
