// SPDX-License-Identifier: MIT
// Package: subdiv/stencil
//
// types.go — Kind, Stencil and the per-level CSR Table.

package stencil

import "fmt"

// Kind tells a backend how to produce a destination vertex.
type Kind uint8

const (
	// Average is a weighted sum of sources, plus an optional delta payload.
	Average Kind = iota
	// Override replaces the value with the payload.
	Override
	// Undefined has no value; backends write zeros.
	Undefined
)

// String returns a short name for logs.
func (k Kind) String() string {
	switch k {
	case Average:
		return "average"
	case Override:
		return "override"
	case Undefined:
		return "undefined"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Stencil is a detached copy of one row of a Table. Indices are local to
// the source level.
type Stencil struct {
	Kind    Kind
	Indices []int
	Weights []float64
	Payload []float64
}

// Table holds the stencils of one level in CSR form.
//
// Row i computes local vertex i of level Level from local vertices of level
// Level-1. Global ids are SrcOffset+index and DstOffset+i.
type Table struct {
	level     int
	srcOffset int
	dstOffset int
	numSrc    int

	sizes   []int
	starts  []int
	indices []int
	weights []float64
	kinds   []Kind

	payloads map[int][]float64
	edited   []int
}

// Level returns the destination level (≥ 1).
func (t *Table) Level() int { return t.level }

// SrcOffset returns the global id of local vertex 0 of the source level.
func (t *Table) SrcOffset() int { return t.srcOffset }

// DstOffset returns the global id of local vertex 0 of the destination level.
func (t *Table) DstOffset() int { return t.dstOffset }

// NumSources returns the vertex count of the source level.
func (t *Table) NumSources() int { return t.numSrc }

// Len returns the number of stencils (destination vertices).
func (t *Table) Len() int { return len(t.kinds) }

// NumWeights returns the total number of (index, weight) pairs.
func (t *Table) NumWeights() int { return len(t.weights) }

// Sizes returns a copy of the per-row source counts.
func (t *Table) Sizes() []int { return cloneInts(t.sizes) }

// Starts returns a copy of the per-row offsets into Indices/Weights.
func (t *Table) Starts() []int { return cloneInts(t.starts) }

// Indices returns a copy of all source indices, row after row.
func (t *Table) Indices() []int { return cloneInts(t.indices) }

// Weights returns a copy of all weights, row after row.
func (t *Table) Weights() []float64 { return cloneFloats(t.weights) }

// Kind returns the kind of row i.
func (t *Table) Kind(i int) Kind { return t.kinds[i] }

// Row returns copies of the source indices and weights of row i.
func (t *Table) Row(i int) ([]int, []float64) {
	s, n := t.starts[i], t.sizes[i]
	return cloneInts(t.indices[s : s+n]), cloneFloats(t.weights[s : s+n])
}

// EachWeight calls fn for every (source, weight) pair of row i, in storage
// order, without allocating.
func (t *Table) EachWeight(i int, fn func(src int, w float64)) {
	s, n := t.starts[i], t.sizes[i]
	for k := s; k < s+n; k++ {
		fn(t.indices[k], t.weights[k])
	}
}

// Payload returns a copy of the edit payload of row i: the final value of an
// Override row, the delta of an edited Average row, nil otherwise.
func (t *Table) Payload(i int) []float64 { return cloneFloats(t.payloads[i]) }

// PayloadLen returns the arity of the payload of row i, 0 when it has none.
func (t *Table) PayloadLen(i int) int { return len(t.payloads[i]) }

// Edited returns the rows carrying a payload, ascending.
func (t *Table) Edited() []int { return cloneInts(t.edited) }

// Stencil returns a detached copy of row i.
func (t *Table) Stencil(i int) Stencil {
	idx, w := t.Row(i)
	return Stencil{Kind: t.kinds[i], Indices: idx, Weights: w, Payload: t.Payload(i)}
}

// Count returns the number of rows of each kind.
func (t *Table) Count(k Kind) int {
	n := 0
	for _, kk := range t.kinds {
		if kk == k {
			n++
		}
	}
	return n
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	return append(make([]int, 0, len(s)), s...)
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	return append(make([]float64, 0, len(s)), s...)
}
