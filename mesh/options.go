// SPDX-License-Identifier: MIT
// Package: subdiv/mesh
//
// options.go — functional options for New.

package mesh

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/hedit"
)

// Option customizes New.
type Option func(*options)

type options struct {
	edits    []hedit.Edit
	elements int
	workers  int
	logger   *zap.Logger
}

// WithEdits attaches hierarchical edits to the refinement.
func WithEdits(edits []hedit.Edit) Option {
	return func(o *options) {
		o.edits = edits
	}
}

// WithElements sets the number of float64 values per vertex. It is
// required when the descriptor carries no positions and must match the
// position arity otherwise. Panics if n < 1.
func WithElements(n int) Option {
	if n < 1 {
		panic("mesh: WithElements requires n >= 1")
	}
	return func(o *options) {
		o.elements = n
	}
}

// WithWorkers sets the evaluator goroutine count. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("mesh: WithWorkers requires n >= 1")
	}
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger shares one logger across every pipeline stage. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mesh: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}
