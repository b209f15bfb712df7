// SPDX-License-Identifier: MIT
// Package: subdiv/stencil
//
// remap.go — (level, local) ↔ global vertex ids.

package stencil

import (
	"fmt"
	"sort"
)

// Remap numbers every vertex of every level in one flat range: level 0
// first, then level 1, and so on. It is the layout evaluation buffers use.
type Remap struct {
	offsets []int // len = levels+1; offsets[levels] = total
}

func newRemap(counts []int) *Remap {
	r := &Remap{offsets: make([]int, len(counts)+1)}
	for d, n := range counts {
		r.offsets[d+1] = r.offsets[d] + n
	}
	return r
}

// NumLevels returns the number of levels covered, control level included.
func (r *Remap) NumLevels() int { return len(r.offsets) - 1 }

// Total returns the number of vertices over all levels.
func (r *Remap) Total() int { return r.offsets[len(r.offsets)-1] }

// Offset returns the global id of local vertex 0 of level d.
// Panics when d is out of range.
func (r *Remap) Offset(d int) int { return r.offsets[d] }

// Count returns the vertex count of level d. Panics when d is out of range.
func (r *Remap) Count(d int) int { return r.offsets[d+1] - r.offsets[d] }

// Global maps (level, local) to a global id.
func (r *Remap) Global(level, local int) (int, error) {
	if level < 0 || level >= r.NumLevels() || local < 0 || local >= r.Count(level) {
		return 0, fmt.Errorf("Global(%d, %d): %w", level, local, ErrOutOfRange)
	}
	return r.offsets[level] + local, nil
}

// Local maps a global id back to (level, local).
//
// Complexity: O(log L).
func (r *Remap) Local(global int) (level, local int, err error) {
	if global < 0 || global >= r.Total() {
		return 0, 0, fmt.Errorf("Local(%d): %w", global, ErrOutOfRange)
	}
	// First level whose end is past global.
	level = sort.Search(r.NumLevels(), func(d int) bool { return r.offsets[d+1] > global })
	return level, global - r.offsets[level], nil
}
