// SPDX-License-Identifier: MIT
// File: methods.go
// Role: read-only queries over the half-edge arena.
//
// Determinism:
//   - Every slice-returning query yields a fresh slice in index order
//     (faces by corner, vertex edges by edge id).
// Concurrency:
//   - Graph is immutable after New; all methods are safe for concurrent use.
// Bounds:
//   - Index arguments are trusted (callers iterate over counts returned by
//     the same Graph); out-of-range indices panic like slice indexing does.

package topology

// Boundary returns the boundary interpolation mode the mesh was built with.
func (g *Graph) Boundary() BoundaryMode { return g.boundary }

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int { return g.numVerts }

// NumFaces returns the face count.
func (g *Graph) NumFaces() int { return len(g.faceStart) - 1 }

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NumHalfEdges returns the half-edge (face corner) count.
func (g *Graph) NumHalfEdges() int { return len(g.faceVerts) }

// Arity returns the control payload arity, 0 when no positions were given.
func (g *Graph) Arity() int { return g.arity }

// Position returns a copy of the control payload of v, nil without positions.
func (g *Graph) Position(v int) []float64 {
	if g.arity == 0 {
		return nil
	}
	out := make([]float64, g.arity)
	copy(out, g.positions[v*g.arity:(v+1)*g.arity])
	return out
}

// Positions returns a copy of all payloads in row-major order.
func (g *Graph) Positions() []float64 {
	return append([]float64(nil), g.positions...)
}

// FaceSize returns the number of vertices of face f.
func (g *Graph) FaceSize(f int) int { return g.faceStart[f+1] - g.faceStart[f] }

// FaceVertices returns the vertex cycle of face f.
func (g *Graph) FaceVertices(f int) []int {
	return append([]int(nil), g.faceVerts[g.faceStart[f]:g.faceStart[f+1]]...)
}

// FaceHalfEdges returns the half-edge ids of face f in cycle order.
func (g *Graph) FaceHalfEdges(f int) []int {
	out := make([]int, 0, g.FaceSize(f))
	for h := g.faceStart[f]; h < g.faceStart[f+1]; h++ {
		out = append(out, h)
	}
	return out
}

// FaceEdges returns the edge ids of face f; FaceEdges(f)[i] joins corner i
// and corner i+1.
func (g *Graph) FaceEdges(f int) []int {
	return append([]int(nil), g.heEdge[g.faceStart[f]:g.faceStart[f+1]]...)
}

// HalfEdge returns the directed corner h.
func (g *Graph) HalfEdge(h int) HalfEdge {
	return HalfEdge{
		Origin:   g.faceVerts[h],
		Dest:     g.faceVerts[g.next(h)],
		Opposite: g.heOpp[h],
		Face:     g.heFace[h],
		Edge:     g.heEdge[h],
	}
}

// Opposite returns the twin of h, or -1 on a boundary.
func (g *Graph) Opposite(h int) int { return g.heOpp[h] }

// Edge returns edge e.
func (g *Graph) Edge(e int) Edge { return g.edges[e] }

// FindEdge returns the id of the undirected edge (a,b).
func (g *Graph) FindEdge(a, b int) (int, bool) {
	e, ok := g.edgeIndex[makeEdgeKey(a, b)]
	return e, ok
}

// EdgeSharpness returns the sharpness of edge e.
func (g *Graph) EdgeSharpness(e int) Sharpness { return g.edges[e].Sharpness }

// IsBoundaryEdge reports whether e lies on the mesh boundary.
func (g *Graph) IsBoundaryEdge(e int) bool { return g.edges[e].Boundary }

// VertexEdges returns the edges incident to v in edge-id order.
func (g *Graph) VertexEdges(v int) []int {
	return append([]int(nil), g.vertEdges[g.vertEdgeStart[v]:g.vertEdgeStart[v+1]]...)
}

// VertexFaces returns the faces incident to v in face order.
func (g *Graph) VertexFaces(v int) []int {
	return append([]int(nil), g.vertFaces[g.vertFaceStart[v]:g.vertFaceStart[v+1]]...)
}

// Neighbors returns the far endpoint of every edge incident to v, in
// edge-id order.
func (g *Graph) Neighbors(v int) []int {
	es := g.vertEdges[g.vertEdgeStart[v]:g.vertEdgeStart[v+1]]
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = g.edges[e].Other(v)
	}
	return out
}

// Valence returns the number of edges incident to v.
func (g *Graph) Valence(v int) int { return g.vertEdgeStart[v+1] - g.vertEdgeStart[v] }

// FaceCount returns the number of faces incident to v.
func (g *Graph) FaceCount(v int) int { return g.vertFaceStart[v+1] - g.vertFaceStart[v] }

// IsBoundaryVertex reports whether v touches a boundary edge.
func (g *Graph) IsBoundaryVertex(v int) bool { return g.vertBoundary[v] }

// VertexSharpness returns the sharpness of v.
func (g *Graph) VertexSharpness(v int) Sharpness { return g.vertSharp[v] }

// BoundaryVertices returns the ids of all boundary vertices in ascending order.
func (g *Graph) BoundaryVertices() []int {
	var out []int
	for v, b := range g.vertBoundary {
		if b {
			out = append(out, v)
		}
	}
	return out
}
