// SPDX-License-Identifier: MIT
// Package: subdiv/hedit
//
// applicator.go — validated, depth-indexed view of an ordered edit list.

package hedit

import (
	"fmt"
	"sort"
)

// Diagnostic reasons.
const (
	reasonNoFace       = "no face at path"
	reasonVertexRange  = "vertex index outside face"
	reasonControlDepth = "depth-0 edits target the control mesh and cannot be compiled into stencils"
	reasonTooDeep      = "path is deeper than the refined hierarchy"
)

// FaceLookup resolves path keys against one refinement level.
type FaceLookup interface {
	// FaceByKey returns the face of this level reached by the path key.
	FaceByKey(key string) (face int, ok bool)
	// FaceVertex returns the vertex id at local corner `local` of face.
	FaceVertex(face, local int) (vertex int, ok bool)
}

// Resolved binds one edit to a vertex id of the level it was resolved at.
type Resolved struct {
	Vertex int
	Index  int
	Edit   Edit
}

// Applicator is an immutable, depth-indexed view of an ordered edit list.
type Applicator struct {
	edits    []Edit
	arity    int
	byDepth  map[int][]int
	pending  map[string]struct{}
	maxDepth int
}

// NewApplicator validates edits and indexes them by depth.
//
// Errors:
//   - ErrInvalidOp     — unknown operation.
//   - ErrBadPath       — negative face, slot or vertex.
//   - ErrPayloadArity  — empty payload or payloads of differing size.
//
// Complexity: O(Σ depth + Σ arity).
func NewApplicator(edits []Edit) (*Applicator, error) {
	a := &Applicator{
		edits:   make([]Edit, len(edits)),
		byDepth: make(map[int][]int),
		pending: make(map[string]struct{}),
	}
	for i, e := range edits {
		if !e.Op.Valid() {
			return nil, fmt.Errorf("NewApplicator: edit #%d: %w", i, ErrInvalidOp)
		}
		if err := e.Path.validate(); err != nil {
			return nil, fmt.Errorf("NewApplicator: edit #%d: %w", i, err)
		}
		if len(e.Value) == 0 || (a.arity != 0 && len(e.Value) != a.arity) {
			return nil, fmt.Errorf("NewApplicator: edit #%d has %d values, expected %d: %w",
				i, len(e.Value), a.arity, ErrPayloadArity)
		}
		a.arity = len(e.Value)

		// Deep copy: callers may reuse their slices.
		a.edits[i] = Edit{
			Path: Path{
				Face:     e.Path.Face,
				Children: append([]int(nil), e.Path.Children...),
				Vertex:   e.Path.Vertex,
			},
			Op:    e.Op,
			Value: append([]float64(nil), e.Value...),
		}

		d := e.Path.Depth()
		a.byDepth[d] = append(a.byDepth[d], i)
		if d > a.maxDepth {
			a.maxDepth = d
		}
		// Every face strictly above the anchor depth has an edit pending.
		for k := 0; k < d; k++ {
			a.pending[Key(e.Path.Face, e.Path.Children[:k])] = struct{}{}
		}
	}
	return a, nil
}

// Len returns the number of edits.
func (a *Applicator) Len() int { return len(a.edits) }

// Arity returns the shared payload size (0 when there are no edits).
func (a *Applicator) Arity() int { return a.arity }

// MaxDepth returns the deepest anchor depth.
func (a *Applicator) MaxDepth() int { return a.maxDepth }

// Edit returns edit i as submitted.
func (a *Applicator) Edit(i int) Edit { return a.edits[i] }

// Depths returns the anchor depths in ascending order.
func (a *Applicator) Depths() []int {
	out := make([]int, 0, len(a.byDepth))
	for d := range a.byDepth {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// Pending reports whether an edit is anchored strictly below the face with
// the given path key.
func (a *Applicator) Pending(key string) bool {
	_, ok := a.pending[key]
	return ok
}

// Resolve maps the edits anchored at depth onto vertices of that level.
// Resolved entries keep submission order. Paths that do not resolve are
// returned as diagnostics. Depth 0 is never resolved (see Unreached).
func (a *Applicator) Resolve(depth int, faces FaceLookup) ([]Resolved, []Diagnostic) {
	if depth == 0 {
		return nil, nil
	}
	idx := a.byDepth[depth]
	var (
		out   = make([]Resolved, 0, len(idx))
		diags []Diagnostic
	)
	for _, i := range idx {
		e := a.edits[i]
		f, ok := faces.FaceByKey(e.Path.FaceKey())
		if !ok {
			diags = append(diags, Diagnostic{Index: i, Path: e.Path, Reason: reasonNoFace})
			continue
		}
		v, ok := faces.FaceVertex(f, e.Path.Vertex)
		if !ok {
			diags = append(diags, Diagnostic{Index: i, Path: e.Path, Reason: reasonVertexRange})
			continue
		}
		out = append(out, Resolved{Vertex: v, Index: i, Edit: e})
	}
	return out, diags
}

// Unreached reports the edits no level can resolve once the hierarchy stops
// at maxDepth: depth-0 edits and edits anchored deeper than maxDepth.
func (a *Applicator) Unreached(maxDepth int) []Diagnostic {
	var diags []Diagnostic
	for i, e := range a.edits {
		switch d := e.Path.Depth(); {
		case d == 0:
			diags = append(diags, Diagnostic{Index: i, Path: e.Path, Reason: reasonControlDepth})
		case d > maxDepth:
			diags = append(diags, Diagnostic{Index: i, Path: e.Path, Reason: reasonTooDeep})
		}
	}
	return diags
}

// Group collects resolved edits per vertex, preserving submission order.
func Group(resolved []Resolved) map[int][]Edit {
	if len(resolved) == 0 {
		return nil
	}
	out := make(map[int][]Edit)
	// Resolved entries of one depth arrive in submission order already.
	for _, r := range resolved {
		out[r.Vertex] = append(out[r.Vertex], r.Edit)
	}
	return out
}
