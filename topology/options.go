// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// options.go — functional options for New.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Option constructors panic on nonsensical input (programmer error);
//     New itself never panics.

package topology

// Option customizes construction of a Graph.
type Option func(*buildConfig)

// Inheritance carries boundary classification from a parent level.
//
// A partially refined (adaptive) level has open borders where the refined
// region stops; those edges have no opposite half-edge but are not real
// boundaries. Refined levels therefore inherit boundary flags instead of
// deriving them from local adjacency.
type Inheritance struct {
	// VertexBoundary[v] is the inherited boundary flag of vertex v.
	VertexBoundary []bool

	// EdgeBoundary reports the inherited boundary flag of edge (v0,v1).
	EdgeBoundary func(v0, v1 int) bool
}

type buildConfig struct {
	inherit *Inheritance
}

// WithInheritance replaces local boundary detection with inherited flags.
// It also disables EdgeAndCorner corner promotion, which is a control-mesh
// ingestion rule. Panics if EdgeBoundary is nil.
func WithInheritance(in Inheritance) Option {
	if in.EdgeBoundary == nil {
		panic("topology: WithInheritance(EdgeBoundary == nil)")
	}
	return func(c *buildConfig) {
		c.inherit = &in
	}
}

func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
