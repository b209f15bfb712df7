// SPDX-License-Identifier: MIT
// Package: subdiv/stencil
//
// options.go — functional options for Build.

package stencil

import (
	"math"

	"go.uber.org/zap"
)

// DefaultTolerance bounds |Σw − 1| for Average stencils.
const DefaultTolerance = 1e-9

// Option customizes Build.
type Option func(*config)

type config struct {
	tolerance float64
	logger    *zap.Logger
}

// WithTolerance sets the partition-of-unity tolerance. Panics unless
// tol is finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("stencil: WithTolerance requires a finite tol > 0")
	}
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithLogger sets the logger for per-level build statistics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("stencil: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	cfg := config{tolerance: DefaultTolerance, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
