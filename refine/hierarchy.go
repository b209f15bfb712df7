// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// hierarchy.go — the result of a refinement run.

package refine

import "github.com/katalvlaran/subdiv/hedit"

// Hierarchy is the ordered list of levels produced by Refine. Level 0 wraps
// the control mesh. It is immutable and safe for concurrent reads.
type Hierarchy struct {
	scheme    Scheme
	mode      Mode
	levels    []*Level
	diags     []hedit.Diagnostic
	editArity int
}

// Scheme returns the scheme the hierarchy was refined with.
func (h *Hierarchy) Scheme() Scheme { return h.scheme }

// Mode returns the refinement mode.
func (h *Hierarchy) Mode() Mode { return h.mode }

// Depth returns the deepest level index. Adaptive runs may stop before the
// requested depth once every face is terminal.
func (h *Hierarchy) Depth() int { return len(h.levels) - 1 }

// NumLevels returns Depth()+1.
func (h *Hierarchy) NumLevels() int { return len(h.levels) }

// Level returns level d. Panics when d is out of range.
func (h *Hierarchy) Level(d int) *Level { return h.levels[d] }

// Levels returns the levels in depth order. The slice is a copy.
func (h *Hierarchy) Levels() []*Level {
	return append([]*Level(nil), h.levels...)
}

// Diagnostics returns the edits that were skipped, ordered by edit index.
func (h *Hierarchy) Diagnostics() []hedit.Diagnostic {
	return append([]hedit.Diagnostic(nil), h.diags...)
}

// EditArity returns the payload size shared by all edits (0 without edits).
func (h *Hierarchy) EditArity() int { return h.editArity }

// Refined reports whether face f of level d has children at level d+1.
func (h *Hierarchy) Refined(d, f int) bool {
	if d < 0 || d+1 >= len(h.levels) {
		return false
	}
	pc := h.levels[d+1].parentChild
	return f >= 0 && f < len(pc) && pc[f] >= 0
}

// Children returns the child faces at level d+1 of face f of level d.
func (h *Hierarchy) Children(d, f int) []int {
	if d < 0 || d+1 >= len(h.levels) {
		return nil
	}
	return h.levels[d+1].ChildrenOf(f)
}

// TotalVertices returns the sum of vertex counts over all levels.
func (h *Hierarchy) TotalVertices() int {
	n := 0
	for _, l := range h.levels {
		n += l.NumVertices()
	}
	return n
}
