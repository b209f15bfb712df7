// SPDX-License-Identifier: MIT
// Package: subdiv/stencil
//
// build.go — Build: compile a hierarchy into Tables.
//
// Stages per level d ≥ 1:
//  1. Mask: dispatch each vertex rule to its (scheme, class) masks.
//  2. Propagate Undefined from the source level.
//  3. Fold edits into Override or Average+delta.
//  4. Check the partition of unity of Average rows.

package stencil

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

const methodBuild = "Build"

// Tables is the compiled form of a Hierarchy.
type Tables struct {
	scheme   refine.Scheme
	levels   []*Table // levels[d-1] computes level d
	remap    *Remap
	ancestry *Ancestry
	arity    int
}

// Build compiles h into per-level stencil tables.
//
// Errors:
//   - ErrNilHierarchy      — h == nil.
//   - ErrPartitionOfUnity  — an Average row does not sum to 1 within the
//     tolerance (wraps level and vertex context).
//
// Complexity: O(Σ_d Σ_v |mask(v)|·log|mask(v)|).
func Build(h *refine.Hierarchy, opts ...Option) (*Tables, error) {
	if h == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilHierarchy)
	}
	cfg := newConfig(opts...)

	counts := make([]int, h.NumLevels())
	for d := range counts {
		counts[d] = h.Level(d).NumVertices()
	}
	t := &Tables{
		scheme:   h.Scheme(),
		remap:    newRemap(counts),
		ancestry: newAncestry(h),
		arity:    h.EditArity(),
	}

	var acc accum
	for d := 1; d < h.NumLevels(); d++ {
		var srcKinds []Kind
		if d > 1 {
			srcKinds = t.levels[d-2].kinds
		}
		tab, err := buildLevel(h, d, srcKinds, t.remap, &acc, cfg.tolerance)
		if err != nil {
			return nil, err
		}
		t.levels = append(t.levels, tab)
		cfg.logger.Debug("stencil table built",
			zap.Int("level", d),
			zap.Int("stencils", tab.Len()),
			zap.Int("weights", tab.NumWeights()),
			zap.Int("overrides", tab.Count(Override)),
			zap.Int("undefined", tab.Count(Undefined)),
			zap.Int("edited", len(tab.edited)),
		)
	}
	return t, nil
}

func buildLevel(h *refine.Hierarchy, d int, srcKinds []Kind, rm *Remap, acc *accum, tol float64) (*Table, error) {
	l := h.Level(d)
	pg := h.Level(d - 1).Graph()
	scheme := h.Scheme()

	n := l.NumVertices()
	tab := &Table{
		level:     d,
		srcOffset: rm.Offset(d - 1),
		dstOffset: rm.Offset(d),
		numSrc:    pg.NumVertices(),
		sizes:     make([]int, n),
		starts:    make([]int, n),
		kinds:     make([]Kind, n),
		payloads:  make(map[int][]float64),
	}

	for v := 0; v < n; v++ {
		// Stage 1: masks.
		acc.reset()
		kind := Average
		if !mask(pg, scheme, l.Origin(v), l.Rule(v), acc) {
			kind = Undefined
		}
		entries := acc.finish()

		// Stage 2: undefined sources.
		if kind == Average && srcKinds != nil {
			for _, e := range entries {
				if srcKinds[e.idx] == Undefined {
					kind = Undefined
					break
				}
			}
		}

		// Stage 3: edits.
		if edits := l.Edits(v); len(edits) > 0 {
			r := hedit.Compose(edits)
			switch {
			case r.Override:
				kind = Override
				tab.payloads[v] = r.Value
			case kind == Average:
				tab.payloads[v] = r.Value
			}
			if _, ok := tab.payloads[v]; ok {
				tab.edited = append(tab.edited, v)
			}
		}

		if kind != Average {
			tab.kinds[v] = kind
			tab.starts[v] = len(tab.indices)
			continue
		}

		// Stage 4: partition of unity.
		sum := 0.0
		for _, e := range entries {
			sum += e.w
		}
		if math.Abs(sum-1) > tol {
			return nil, fmt.Errorf("%s: level %d vertex %d (%v %v) sums to %g: %w",
				methodBuild, d, v, l.Origin(v).Kind, l.Rule(v).Class, sum, ErrPartitionOfUnity)
		}

		tab.starts[v] = len(tab.indices)
		tab.sizes[v] = len(entries)
		for _, e := range entries {
			tab.indices = append(tab.indices, e.idx)
			tab.weights = append(tab.weights, e.w)
		}
	}
	return tab, nil
}

// mask accumulates the weights of rule r for a vertex with origin o.
// It returns false when the rule has no defined mask.
func mask(g *topology.Graph, scheme refine.Scheme, o refine.Origin, r refine.Rule, acc *accum) bool {
	if r.Class == refine.ClassUndefined || r.Next == refine.ClassUndefined {
		return false
	}
	wNow, wNext := r.Fraction, 1-r.Fraction
	if !r.Blended() {
		wNow, wNext = 1, 0
	}

	switch o.Kind {
	case refine.OriginFace:
		fn, ok := faceMasks[maskKey{scheme, r.Class}]
		return ok && fn(g, o.Parent, 1, acc)
	case refine.OriginEdge:
		fn, ok := edgeMasks[maskKey{scheme, r.Class}]
		if !ok || !fn(g, o.Parent, wNow, acc) {
			return false
		}
		if wNext == 0 {
			return true
		}
		fn, ok = edgeMasks[maskKey{scheme, r.Next}]
		return ok && fn(g, o.Parent, wNext, acc)
	case refine.OriginVertex:
		fn, ok := vertexMasks[maskKey{scheme, r.Class}]
		if !ok || !fn(g, o.Parent, r.Crease, wNow, acc) {
			return false
		}
		if wNext == 0 {
			return true
		}
		fn, ok = vertexMasks[maskKey{scheme, r.Next}]
		return ok && fn(g, o.Parent, r.NextCrease, wNext, acc)
	default:
		return false
	}
}

// Scheme returns the scheme of the compiled hierarchy.
func (t *Tables) Scheme() refine.Scheme { return t.scheme }

// Len returns the number of level tables (hierarchy depth).
func (t *Tables) Len() int { return len(t.levels) }

// Level returns the table computing level d, 1 ≤ d ≤ Len().
func (t *Tables) Level(d int) (*Table, error) {
	if d < 1 || d > len(t.levels) {
		return nil, fmt.Errorf("Level(%d): %w", d, ErrOutOfRange)
	}
	return t.levels[d-1], nil
}

// All returns the level tables in application order. The slice is a copy.
func (t *Tables) All() []*Table { return append([]*Table(nil), t.levels...) }

// NumControlVertices returns the vertex count of level 0.
func (t *Tables) NumControlVertices() int { return t.remap.Count(0) }

// NumVertices returns the vertex count over all levels.
func (t *Tables) NumVertices() int { return t.remap.Total() }

// LevelVertexCount returns the vertex count of level d.
func (t *Tables) LevelVertexCount(d int) int { return t.remap.Count(d) }

// EditArity returns the payload size of edits (0 without edits).
func (t *Tables) EditArity() int { return t.arity }

// HasEdits reports whether any row carries a payload.
func (t *Tables) HasEdits() bool {
	for _, tab := range t.levels {
		if len(tab.edited) > 0 {
			return true
		}
	}
	return false
}

// Remap returns the global vertex numbering.
func (t *Tables) Remap() *Remap { return t.remap }

// Ancestry returns the face ancestry of every level.
func (t *Tables) Ancestry() *Ancestry { return t.ancestry }
