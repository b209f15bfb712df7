// SPDX-License-Identifier: MIT
// File: level.go
// Role: one immutable refinement level: topology arena plus provenance.
//
// Determinism:
//   - Vertex, face and edge ids follow the creation order documented in
//     doc.go; a level built twice from the same parent is identical.
// Ownership:
//   - A Level exclusively owns its arrays. Links to the parent level are
//     plain indices (Origin.Parent, FaceParent), never pointers.

package refine

import (
	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/topology"
)

// Level is the mesh produced at one depth.
type Level struct {
	depth int
	graph *topology.Graph

	// per vertex
	origins  []Origin
	rules    []Rule
	complete []bool
	edits    map[int][]hedit.Edit

	// per face
	faceParent []int
	faceSlot   []int
	faceRoot   []int
	faceKeys   []string
	terminal   []bool
	candidate  []bool
	paths      map[string]int

	// parentChild[f] is the first child face of parent face f, -1 when f
	// was not refined. Nil at depth 0.
	parentChild []int
}

// Depth returns the level depth (0 = control mesh).
func (l *Level) Depth() int { return l.depth }

// Graph returns the level topology.
func (l *Level) Graph() *topology.Graph { return l.graph }

// NumVertices returns the vertex count of the level.
func (l *Level) NumVertices() int { return l.graph.NumVertices() }

// NumFaces returns the face count of the level.
func (l *Level) NumFaces() int { return l.graph.NumFaces() }

// Origin returns the provenance of vertex v.
func (l *Level) Origin(v int) Origin { return l.origins[v] }

// Rule returns the mask rule that computes vertex v from the previous level.
func (l *Level) Rule(v int) Rule { return l.rules[v] }

// Complete reports whether every face incident to v in the full refined
// surface is present at this level. Masks of incomplete vertices' children
// are never evaluated.
func (l *Level) Complete(v int) bool { return l.complete[v] }

// Edits returns the edits resolved on vertex v, in submission order.
func (l *Level) Edits(v int) []hedit.Edit { return l.edits[v] }

// EditedVertices returns the ids of vertices carrying edits, ascending.
func (l *Level) EditedVertices() []int {
	out := make([]int, 0, len(l.edits))
	for v := 0; v < l.NumVertices() && len(out) < len(l.edits); v++ {
		if _, ok := l.edits[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// FaceParent returns the parent face of f in the previous level, -1 at depth 0.
func (l *Level) FaceParent(f int) int { return l.faceParent[f] }

// FaceSlot returns the child slot of f inside its parent, -1 at depth 0.
func (l *Level) FaceSlot(f int) int { return l.faceSlot[f] }

// FaceRoot returns the control-mesh face f descends from.
func (l *Level) FaceRoot(f int) int { return l.faceRoot[f] }

// FaceKey returns the hierarchical path key of f (see hedit.Key).
func (l *Level) FaceKey(f int) string { return l.faceKeys[f] }

// Terminal reports whether f is regular for the scheme, free of sharp
// features and pending edits. Faces with an incomplete vertex are never
// terminal.
func (l *Level) Terminal(f int) bool { return l.terminal[f] }

// FaceByKey implements hedit.FaceLookup.
func (l *Level) FaceByKey(key string) (int, bool) {
	f, ok := l.paths[key]
	return f, ok
}

// FaceVertex implements hedit.FaceLookup.
func (l *Level) FaceVertex(face, local int) (int, bool) {
	if face < 0 || face >= l.NumFaces() || local < 0 || local >= l.graph.FaceSize(face) {
		return 0, false
	}
	return l.graph.FaceVertices(face)[local], true
}

// ChildrenOf returns the child faces (at this level) of parent face pf.
func (l *Level) ChildrenOf(pf int) []int {
	if l.parentChild == nil || pf < 0 || pf >= len(l.parentChild) || l.parentChild[pf] < 0 {
		return nil
	}
	var out []int
	for f := l.parentChild[pf]; f < l.NumFaces() && l.faceParent[f] == pf; f++ {
		out = append(out, f)
	}
	return out
}

var _ hedit.FaceLookup = (*Level)(nil)
