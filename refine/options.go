// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// options.go — functional options for Refine.

package refine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/hedit"
)

// Option customizes a refinement run.
type Option func(*config)

type config struct {
	edits  []hedit.Edit
	logger *zap.Logger
}

// WithEdits attaches an ordered hierarchical edit list.
func WithEdits(edits []hedit.Edit) Option {
	return func(c *config) {
		c.edits = edits
	}
}

// WithLogger sets the logger used for per-level debug output and edit
// warnings. Panics on nil; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("refine: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
