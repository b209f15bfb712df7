// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// adaptive.go — face selection per level.
//
// Adaptive selection at level d:
//
//	N = candidate faces that are not terminal
//	R = N ∪ {faces sharing a vertex with a face of N}
//
// restricted to faces whose vertices are all complete. Refining the
// one-ring of N gives every child of N a full neighbourhood at the next
// level, so the children of N are again complete and their masks are
// well defined. Candidates at d+1 are the children of N.

package refine

// selectFaces marks the faces of l to refine and returns how many.
func selectFaces(l *Level, mode Mode) ([]bool, int) {
	g := l.graph
	sel := make([]bool, g.NumFaces())
	if mode == Uniform {
		for f := range sel {
			sel[f] = true
		}
		return sel, len(sel)
	}

	// Stage 1: vertices of the seed faces.
	touched := make([]bool, g.NumVertices())
	for f := 0; f < g.NumFaces(); f++ {
		if l.candidate[f] && !l.terminal[f] {
			for _, v := range g.FaceVertices(f) {
				touched[v] = true
			}
		}
	}

	// Stage 2: seeds plus their one-ring, dropping faces with an incomplete
	// vertex.
	n := 0
	for f := range sel {
		vs := g.FaceVertices(f)
		if !anyTouched(vs, touched) || !allComplete(vs, l.complete) {
			continue
		}
		sel[f] = true
		n++
	}
	return sel, n
}

func anyTouched(vs []int, touched []bool) bool {
	for _, v := range vs {
		if touched[v] {
			return true
		}
	}
	return false
}

func allComplete(vs []int, complete []bool) bool {
	for _, v := range vs {
		if !complete[v] {
			return false
		}
	}
	return true
}

// markTerminal fills l.terminal for every face of l.
func markTerminal(l *Level, scheme Scheme, pending func(string) bool) int {
	n := 0
	l.terminal = make([]bool, l.NumFaces())
	for f := range l.terminal {
		l.terminal[f] = terminalFace(l, f, scheme, pending)
		if l.terminal[f] {
			n++
		}
	}
	return n
}
