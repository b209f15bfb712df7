// SPDX-License-Identifier: MIT
// Package: subdiv/stencil
//
// ancestry.go — per-level face parentage and the leaf set.

package stencil

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refine"
)

// Leaf is a face that was not refined further: the surface is tiled by the
// leaves of all levels.
type Leaf struct {
	Level   int
	Face    int
	Root    int
	Regular bool
}

// Ancestry records, per level, each face's parent face and root control
// face.
type Ancestry struct {
	parent [][]int
	root   [][]int
	leaves []Leaf
}

func newAncestry(h *refine.Hierarchy) *Ancestry {
	a := &Ancestry{
		parent: make([][]int, h.NumLevels()),
		root:   make([][]int, h.NumLevels()),
	}
	for d := 0; d < h.NumLevels(); d++ {
		l := h.Level(d)
		nf := l.NumFaces()
		a.parent[d] = make([]int, nf)
		a.root[d] = make([]int, nf)
		for f := 0; f < nf; f++ {
			a.parent[d][f] = l.FaceParent(f)
			a.root[d][f] = l.FaceRoot(f)
			if !h.Refined(d, f) {
				a.leaves = append(a.leaves, Leaf{Level: d, Face: f, Root: l.FaceRoot(f), Regular: l.Terminal(f)})
			}
		}
	}
	return a
}

func (a *Ancestry) check(level, face int) error {
	if level < 0 || level >= len(a.parent) || face < 0 || face >= len(a.parent[level]) {
		return fmt.Errorf("face %d of level %d: %w", face, level, ErrOutOfRange)
	}
	return nil
}

// Parent returns the parent face (level-1) of face of level; -1 at level 0.
func (a *Ancestry) Parent(level, face int) (int, error) {
	if err := a.check(level, face); err != nil {
		return 0, fmt.Errorf("Parent: %w", err)
	}
	return a.parent[level][face], nil
}

// Root returns the control face that face of level descends from.
func (a *Ancestry) Root(level, face int) (int, error) {
	if err := a.check(level, face); err != nil {
		return 0, fmt.Errorf("Root: %w", err)
	}
	return a.root[level][face], nil
}

// NumFaces returns the face count of level.
func (a *Ancestry) NumFaces(level int) int { return len(a.parent[level]) }

// Leaves returns the unrefined faces, by level then face. The slice is a
// copy.
func (a *Ancestry) Leaves() []Leaf {
	return append([]Leaf(nil), a.leaves...)
}
