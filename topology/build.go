// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// build.go — New: validate a Descriptor and assemble the half-edge arena.
//
// Stages:
//   1. Vertex count and position arity.
//   2. Faces: size ≥ 3, indices in range, no repeated vertex.
//   3. Half-edges and edges: link opposites, reject same-direction sharing
//      (winding) and a third face on an edge (non-manifold).
//   4. Incidence CSR tables (vertex→edges, vertex→faces).
//   5. Boundary flags (local or inherited) and sharpness ingestion.

package topology

const methodNew = "New"

// New builds an immutable Graph from d.
//
// Errors (all match ErrTopology):
//   - ErrVertexCount, ErrPositionArity — inconsistent vertex payloads.
//   - ErrDegenerateFace                — face with <3 or repeated vertices.
//   - ErrVertexOutOfRange              — index outside [0, NumVertices).
//   - ErrInconsistentWinding           — shared edge walked twice the same way.
//   - ErrNonManifoldEdge               — edge with more than two faces.
//   - ErrUnknownEdge                   — crease on a missing edge.
//
// Complexity: O(F·k + V + C) where C is the number of sharpness tags.
func New(d Descriptor, opts ...Option) (*Graph, error) {
	cfg := newBuildConfig(opts...)

	g := &Graph{boundary: d.Boundary}

	// Stage 1: vertex count and payloads.
	if err := g.ingestPositions(d); err != nil {
		return nil, err
	}
	if cfg.inherit != nil && len(cfg.inherit.VertexBoundary) != g.numVerts {
		return nil, topoErrorf(methodNew, ErrVertexCount,
			"inherited boundary flags for %d vertices, mesh has %d", len(cfg.inherit.VertexBoundary), g.numVerts)
	}

	// Stage 2: faces.
	if err := g.ingestFaces(d.Faces); err != nil {
		return nil, err
	}

	// Stage 3: half-edges and edges.
	if err := g.linkHalfEdges(); err != nil {
		return nil, err
	}

	// Stage 4: incidence tables.
	g.buildIncidence()

	// Stage 5: boundary flags, then sharpness.
	g.classifyBoundary(cfg.inherit)
	if err := g.ingestSharpness(d, cfg.inherit == nil); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Graph) ingestPositions(d Descriptor) error {
	if len(d.Positions) == 0 {
		if d.NumVertices < 0 {
			return topoErrorf(methodNew, ErrVertexCount, "negative vertex count %d", d.NumVertices)
		}
		g.numVerts = d.NumVertices
		return nil
	}
	if d.NumVertices != 0 && d.NumVertices != len(d.Positions) {
		return topoErrorf(methodNew, ErrVertexCount,
			"NumVertices=%d but %d positions", d.NumVertices, len(d.Positions))
	}

	g.numVerts = len(d.Positions)
	g.arity = len(d.Positions[0])
	if g.arity == 0 {
		return topoErrorf(methodNew, ErrPositionArity, "vertex 0 has an empty payload")
	}
	g.positions = make([]float64, 0, g.numVerts*g.arity)
	for v, p := range d.Positions {
		if len(p) != g.arity {
			return topoErrorf(methodNew, ErrPositionArity,
				"vertex %d has arity %d, expected %d", v, len(p), g.arity)
		}
		g.positions = append(g.positions, p...)
	}
	return nil
}

func (g *Graph) ingestFaces(faces [][]int) error {
	total := 0
	for _, f := range faces {
		total += len(f)
	}
	g.faceStart = make([]int, 0, len(faces)+1)
	g.faceVerts = make([]int, 0, total)

	for fi, f := range faces {
		if len(f) < 3 {
			return topoErrorf(methodNew, ErrDegenerateFace, "face %d has %d vertices", fi, len(f))
		}
		g.faceStart = append(g.faceStart, len(g.faceVerts))
		for i, v := range f {
			if v < 0 || v >= g.numVerts {
				return topoErrorf(methodNew, ErrVertexOutOfRange, "face %d corner %d refers to vertex %d", fi, i, v)
			}
			// Faces are small; a quadratic scan beats a per-face map.
			for j := 0; j < i; j++ {
				if f[j] == v {
					return topoErrorf(methodNew, ErrDegenerateFace, "face %d repeats vertex %d", fi, v)
				}
			}
			g.faceVerts = append(g.faceVerts, v)
		}
	}
	g.faceStart = append(g.faceStart, len(g.faceVerts))
	return nil
}

func (g *Graph) linkHalfEdges() error {
	n := len(g.faceVerts)
	g.heOpp = make([]int, n)
	g.heEdge = make([]int, n)
	g.heFace = make([]int, n)
	g.edgeIndex = make(map[edgeKey]int, n/2+1)
	g.edges = make([]Edge, 0, n/2+1)

	// firstHalf[e] remembers the half-edge that created edge e.
	firstHalf := make([]int, 0, n/2+1)

	for f := 0; f+1 < len(g.faceStart); f++ {
		start, end := g.faceStart[f], g.faceStart[f+1]
		for h := start; h < end; h++ {
			g.heFace[h] = f
			g.heOpp[h] = -1

			a := g.faceVerts[h]
			b := g.faceVerts[g.next(h)]
			key := makeEdgeKey(a, b)

			e, seen := g.edgeIndex[key]
			if !seen {
				e = len(g.edges)
				g.edgeIndex[key] = e
				g.edges = append(g.edges, Edge{V0: a, V1: b, Faces: [2]int{f, -1}})
				firstHalf = append(firstHalf, h)
				g.heEdge[h] = e
				continue
			}

			if g.edges[e].Faces[1] >= 0 {
				return topoErrorf(methodNew, ErrNonManifoldEdge, "edge (%d,%d) has a third face %d", a, b, f)
			}
			other := firstHalf[e]
			if g.faceVerts[other] == a {
				return topoErrorf(methodNew, ErrInconsistentWinding,
					"faces %d and %d both traverse %d→%d", g.heFace[other], f, a, b)
			}
			g.edges[e].Faces[1] = f
			g.heEdge[h] = e
			g.heOpp[h] = other
			g.heOpp[other] = h
		}
	}
	return nil
}

func (g *Graph) buildIncidence() {
	edgeCount := make([]int, g.numVerts+1)
	for _, e := range g.edges {
		edgeCount[e.V0+1]++
		edgeCount[e.V1+1]++
	}
	faceCount := make([]int, g.numVerts+1)
	for _, v := range g.faceVerts {
		faceCount[v+1]++
	}
	for v := 0; v < g.numVerts; v++ {
		edgeCount[v+1] += edgeCount[v]
		faceCount[v+1] += faceCount[v]
	}
	g.vertEdgeStart = edgeCount
	g.vertFaceStart = faceCount

	g.vertEdges = make([]int, edgeCount[g.numVerts])
	fill := append([]int(nil), edgeCount[:g.numVerts]...)
	for ei, e := range g.edges {
		g.vertEdges[fill[e.V0]] = ei
		fill[e.V0]++
		g.vertEdges[fill[e.V1]] = ei
		fill[e.V1]++
	}

	g.vertFaces = make([]int, faceCount[g.numVerts])
	fill = append(fill[:0], faceCount[:g.numVerts]...)
	for h, v := range g.faceVerts {
		g.vertFaces[fill[v]] = g.heFace[h]
		fill[v]++
	}
}

func (g *Graph) classifyBoundary(in *Inheritance) {
	g.vertBoundary = make([]bool, g.numVerts)
	if in != nil {
		copy(g.vertBoundary, in.VertexBoundary)
		for i := range g.edges {
			g.edges[i].Boundary = in.EdgeBoundary(g.edges[i].V0, g.edges[i].V1)
		}
		return
	}
	for i := range g.edges {
		e := &g.edges[i]
		e.Boundary = e.Faces[1] < 0
		if e.Boundary {
			g.vertBoundary[e.V0] = true
			g.vertBoundary[e.V1] = true
		}
	}
}

func (g *Graph) ingestSharpness(d Descriptor, promoteCorners bool) error {
	for _, c := range d.Creases {
		e, ok := g.edgeIndex[makeEdgeKey(c.V0, c.V1)]
		if !ok {
			return topoErrorf(methodNew, ErrUnknownEdge, "crease (%d,%d)", c.V0, c.V1)
		}
		// Repeated tags on one edge keep the sharpest value.
		if s := Clamp(c.Sharpness); s > g.edges[e].Sharpness {
			g.edges[e].Sharpness = s
		}
	}

	g.vertSharp = make([]Sharpness, g.numVerts)
	for _, c := range d.Corners {
		if c.Vertex < 0 || c.Vertex >= g.numVerts {
			return topoErrorf(methodNew, ErrVertexOutOfRange, "corner tag on vertex %d", c.Vertex)
		}
		if s := Clamp(c.Sharpness); s > g.vertSharp[c.Vertex] {
			g.vertSharp[c.Vertex] = s
		}
	}

	if promoteCorners && g.boundary == BoundaryEdgeAndCorner {
		for v := 0; v < g.numVerts; v++ {
			if g.vertBoundary[v] && g.vertFaceStart[v+1]-g.vertFaceStart[v] == 1 {
				g.vertSharp[v] = Infinite
			}
		}
	}
	return nil
}

// next returns the half-edge following h around its face.
func (g *Graph) next(h int) int {
	f := g.heFace[h]
	if h+1 == g.faceStart[f+1] {
		return g.faceStart[f]
	}
	return h + 1
}
