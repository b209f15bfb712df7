// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// split.go — build level d+1 from level d and its selected faces.
//
// Stages:
//  1. Number child vertices: face points, edge points, vertex points.
//  2. Emit child faces per selected parent face, one per slot.
//  3. Carry decayed sharpness and inherited boundary flags.
//  4. Assemble the child topology.Graph and per-face provenance.
//
// Child slots (n = parent face size, e_i = edge v_i→v_{i+1}):
//
//	quad schemes: slot i = [vp(v_i), ep(e_i), fp, ep(e_{i-1})]
//	Loop:         slot i = [vp(v_i), ep(e_i), ep(e_{i-1})], i < 3
//	              slot 3 = [ep(e_0), ep(e_1), ep(e_2)]

package refine

import (
	"fmt"

	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/topology"
)

// childIndex maps parent elements to child vertex ids (-1 when absent).
type childIndex struct {
	face, edge, vert []int
}

func newChildIndex(g *topology.Graph) childIndex {
	ci := childIndex{
		face: make([]int, g.NumFaces()),
		edge: make([]int, g.NumEdges()),
		vert: make([]int, g.NumVertices()),
	}
	for _, s := range [][]int{ci.face, ci.edge, ci.vert} {
		for i := range s {
			s[i] = -1
		}
	}
	return ci
}

// split refines the selected faces of parent into a new level.
func split(parent *Level, sel []bool, scheme Scheme) (*Level, error) {
	g := parent.graph
	child := &Level{depth: parent.depth + 1}

	// Stage 1: child vertices.
	ci := newChildIndex(g)
	var vertBoundary []bool
	addVertex := func(o Origin, r Rule, complete, boundary bool) int {
		child.origins = append(child.origins, o)
		child.rules = append(child.rules, r)
		child.complete = append(child.complete, complete)
		vertBoundary = append(vertBoundary, boundary)
		return len(child.origins) - 1
	}

	if scheme.HasFacePoints() {
		for f := 0; f < g.NumFaces(); f++ {
			if sel[f] {
				ci.face[f] = addVertex(Origin{Kind: OriginFace, Parent: f},
					Rule{Class: ClassFace, Next: ClassFace, Fraction: 1}, true, false)
			}
		}
	}
	for e := 0; e < g.NumEdges(); e++ {
		ed := g.Edge(e)
		used, complete := false, true
		for _, f := range ed.Faces {
			if f < 0 {
				continue
			}
			if sel[f] {
				used = true
			} else {
				complete = false
			}
		}
		if !used {
			continue
		}
		// An edge missing its second face inside the mesh lies on the rim
		// of a partial level.
		if ed.Faces[1] < 0 && !ed.Boundary {
			complete = false
		}
		ci.edge[e] = addVertex(Origin{Kind: OriginEdge, Parent: e},
			edgeRule(g, e, scheme), complete, ed.Boundary)
	}
	for v := 0; v < g.NumVertices(); v++ {
		used, complete := false, parent.complete[v]
		for _, f := range g.VertexFaces(v) {
			if sel[f] {
				used = true
			} else {
				complete = false
			}
		}
		if !used {
			continue
		}
		ci.vert[v] = addVertex(Origin{Kind: OriginVertex, Parent: v},
			vertexRule(g, v, scheme), complete, g.IsBoundaryVertex(v))
	}

	// Stage 2: child faces.
	var faces [][]int
	child.parentChild = make([]int, g.NumFaces())
	for f := range child.parentChild {
		child.parentChild[f] = -1
	}
	for f := 0; f < g.NumFaces(); f++ {
		if !sel[f] {
			continue
		}
		child.parentChild[f] = len(faces)
		vs := g.FaceVertices(f)
		es := g.FaceEdges(f)
		n := len(vs)
		for i := 0; i < n; i++ {
			prev := es[(i+n-1)%n]
			var cf []int
			if scheme == Loop {
				cf = []int{ci.vert[vs[i]], ci.edge[es[i]], ci.edge[prev]}
			} else {
				cf = []int{ci.vert[vs[i]], ci.edge[es[i]], ci.face[f], ci.edge[prev]}
			}
			faces = append(faces, cf)
			child.appendFace(parent, f, i)
		}
		if scheme == Loop {
			faces = append(faces, []int{ci.edge[es[0]], ci.edge[es[1]], ci.edge[es[2]]})
			child.appendFace(parent, f, 3)
		}
	}

	// Stage 3: sharpness and boundary inheritance.
	desc := topology.Descriptor{
		Faces:       faces,
		NumVertices: len(child.origins),
		Boundary:    g.Boundary(),
	}
	boundaryHalves := make(map[[2]int]struct{})
	for e, cv := range ci.edge {
		if cv < 0 {
			continue
		}
		ed := g.Edge(e)
		a, b := ci.vert[ed.V0], ci.vert[ed.V1]
		if scheme != Bilinear {
			if s := g.EdgeSharpness(e).Decay(); s.IsSharp() {
				desc.Creases = append(desc.Creases,
					topology.Crease{V0: a, V1: cv, Sharpness: float64(s)},
					topology.Crease{V0: cv, V1: b, Sharpness: float64(s)})
			}
		}
		if ed.Boundary {
			boundaryHalves[halfKey(a, cv)] = struct{}{}
			boundaryHalves[halfKey(cv, b)] = struct{}{}
		}
	}
	if scheme != Bilinear {
		for v, cv := range ci.vert {
			if cv < 0 {
				continue
			}
			if s := g.VertexSharpness(v).Decay(); s.IsSharp() {
				desc.Corners = append(desc.Corners, topology.Corner{Vertex: cv, Sharpness: float64(s)})
			}
		}
	}

	// Stage 4: topology.
	cg, err := topology.New(desc, topology.WithInheritance(topology.Inheritance{
		VertexBoundary: vertBoundary,
		EdgeBoundary: func(v0, v1 int) bool {
			_, ok := boundaryHalves[halfKey(v0, v1)]
			return ok
		},
	}))
	if err != nil {
		return nil, fmt.Errorf("refine: level %d: %v: %w", child.depth, err, errInternal)
	}
	child.graph = cg

	child.paths = make(map[string]int, len(faces))
	for f, k := range child.faceKeys {
		child.paths[k] = f
	}
	return child, nil
}

func halfKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// appendFace records provenance for the next child face.
func (l *Level) appendFace(parent *Level, pf, slot int) {
	l.faceParent = append(l.faceParent, pf)
	l.faceSlot = append(l.faceSlot, slot)
	l.faceRoot = append(l.faceRoot, parent.faceRoot[pf])
	l.faceKeys = append(l.faceKeys, hedit.ChildKey(parent.faceKeys[pf], slot))
}
