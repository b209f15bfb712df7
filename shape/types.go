// SPDX-License-Identifier: MIT
// Package: subdiv/shape
//
// types.go — Shape and its copy-on-write modifiers.

package shape

import (
	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

// Shape is a named control mesh with its edits and authoring scheme.
type Shape struct {
	Name       string
	Scheme     refine.Scheme
	Descriptor topology.Descriptor
	Edits      []hedit.Edit
}

// Graph builds the topology of s.
func (s Shape) Graph(opts ...topology.Option) (*topology.Graph, error) {
	return topology.New(s.Descriptor, opts...)
}

// Refine builds s and refines it with s.Scheme, prepending s.Edits to
// the options.
func (s Shape) Refine(mode refine.Mode, depth int, opts ...refine.Option) (*refine.Hierarchy, error) {
	g, err := s.Graph()
	if err != nil {
		return nil, err
	}
	if len(s.Edits) > 0 {
		opts = append([]refine.Option{refine.WithEdits(s.Edits)}, opts...)
	}
	return refine.Refine(g, refine.Request{Scheme: s.Scheme, Mode: mode, Depth: depth}, opts...)
}

// WithCreases returns a copy of s with the creases appended.
func (s Shape) WithCreases(creases ...topology.Crease) Shape {
	c := s.clone()
	c.Descriptor.Creases = append(c.Descriptor.Creases, creases...)
	return c
}

// WithCorner returns a copy of s with vertex v tagged as a corner.
func (s Shape) WithCorner(v int, sharpness float64) Shape {
	c := s.clone()
	c.Descriptor.Corners = append(c.Descriptor.Corners, topology.Corner{Vertex: v, Sharpness: sharpness})
	return c
}

// WithBoundary returns a copy of s using the given boundary policy.
func (s Shape) WithBoundary(m topology.BoundaryMode) Shape {
	c := s.clone()
	c.Descriptor.Boundary = m
	return c
}

// WithEdits returns a copy of s with the edits appended.
func (s Shape) WithEdits(edits ...hedit.Edit) Shape {
	c := s.clone()
	c.Edits = append(c.Edits, edits...)
	return c
}

// WithScheme returns a copy of s authored for another scheme.
func (s Shape) WithScheme(scheme refine.Scheme) Shape {
	c := s.clone()
	c.Scheme = scheme
	return c
}

// Coarse returns the control positions as one flat row-major slice,
// ready for eval.CPUBuffer.UpdateData.
func (s Shape) Coarse() []float64 {
	if len(s.Descriptor.Positions) == 0 {
		return nil
	}
	out := make([]float64, 0, len(s.Descriptor.Positions)*len(s.Descriptor.Positions[0]))
	for _, p := range s.Descriptor.Positions {
		out = append(out, p...)
	}
	return out
}

// clone copies every slice that a modifier may append to, so values
// returned by modifiers never share backing arrays with the receiver.
func (s Shape) clone() Shape {
	c := s
	c.Descriptor.Creases = append([]topology.Crease(nil), s.Descriptor.Creases...)
	c.Descriptor.Corners = append([]topology.Corner(nil), s.Descriptor.Corners...)
	c.Edits = append([]hedit.Edit(nil), s.Edits...)
	return c
}
