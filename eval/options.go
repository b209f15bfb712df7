// SPDX-License-Identifier: MIT
// Package: subdiv/eval
//
// options.go — functional options for NewEvaluator.

package eval

import (
	"runtime"

	"go.uber.org/zap"
)

// DefaultGrain is the number of destination rows per work item.
const DefaultGrain = 256

// Option customizes an Evaluator.
type Option func(*Evaluator)

// WithWorkers sets the number of goroutines per level. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("eval: WithWorkers requires n >= 1")
	}
	return func(e *Evaluator) {
		e.workers = n
	}
}

// WithGrain sets the rows per work item. Panics if n < 1.
func WithGrain(n int) Option {
	if n < 1 {
		panic("eval: WithGrain requires n >= 1")
	}
	return func(e *Evaluator) {
		e.grain = n
	}
}

// WithLogger sets the logger for per-level timings. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("eval: WithLogger(nil)")
	}
	return func(e *Evaluator) {
		e.logger = l
	}
}

func defaultEvaluator() *Evaluator {
	return &Evaluator{
		workers: runtime.GOMAXPROCS(0),
		grain:   DefaultGrain,
		logger:  zap.NewNop(),
	}
}
