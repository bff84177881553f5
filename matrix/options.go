// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the kernels.
//
// Design goals:
//   - Deterministic results: parallelism changes scheduling, never values.
//   - Safe by construction: nonsensical values are clamped, not rejected.
package matrix

import "context"

// DefaultWorkers runs Mul sequentially.
const DefaultWorkers = 1

// Option configures a kernel call.
type Option func(*options)

// options holds the resolved settings of a kernel call.
type options struct {
	ctx     context.Context // cancellation between rows; defaults to Background
	workers int             // max goroutines for Mul; <= 1 means sequential
}

// defaultOptions returns the zero-configuration settings.
func defaultOptions() options {
	return options{ctx: context.Background(), workers: DefaultWorkers}
}

// gatherOptions applies opts left to right over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers bounds the number of goroutines Mul may use.
// Values below 1 are clamped to 1 (sequential).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
