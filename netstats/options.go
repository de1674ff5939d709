// SPDX-License-Identifier: MIT

package netstats

import "context"

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the tunables of a Compute call.
type Options struct {
	// Ctx allows cancellation of the diameter search.
	Ctx context.Context

	// Diameter computes the diameter of the largest SCC.
	Diameter DiameterFunc
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a single-goroutine exact diameter.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Diameter: Exact{Workers: 1},
	}
}

// WithContext sets a custom context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiameter swaps the diameter algorithm. A nil fn is ignored.
func WithDiameter(fn DiameterFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Diameter = fn
		}
	}
}
