// SPDX-License-Identifier: MIT

package gridgraph

import (
	"context"
	"fmt"
	"runtime"
)

// Option configures an analysis via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// analysis starts.
type Option func(*Options)

// Options holds the parameters shared by the grid analyses.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers is the number of goroutines MeanDepth runs on.
	Workers int

	// Radius, if > 0, stops every walk at that step depth.
	// 0 means no limit.
	Radius int

	err error
}

// DefaultOptions returns Options with a background context, one worker per
// available CPU and no radius limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of MeanDepth workers.
//
//	n ≥ 1: use n goroutines
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithRadius limits every walk to the given step depth.
//
//	r > 0: stop at depth r (inclusive)
//	r == 0: no limit
//	r < 0: invalid option → ErrOptionViolation
func WithRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: Radius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Radius = r
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
