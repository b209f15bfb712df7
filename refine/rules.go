// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// rules.go — mask selection for edge points and vertex points.
//
// Sharp features of a vertex are its incident edges with sharpness above a
// threshold, plus every boundary edge when boundary interpolation is on.
// The vertex mask at threshold t is:
//
//	vertex sharpness > t  → Corner
//	> 2 sharp edges       → Corner
//	  2 sharp edges       → Crease
//	  0 or 1 (dart)       → Smooth
//
// Threshold 0 gives the mask at this level, threshold 1 the mask after
// decay. When they differ the two masks are blended.

package refine

import "github.com/katalvlaran/subdiv/topology"

func edgeRule(g *topology.Graph, e int, scheme Scheme) Rule {
	if scheme == Bilinear {
		return Rule{Class: ClassCrease, Next: ClassCrease, Fraction: 1}
	}
	if g.IsBoundaryEdge(e) {
		if !g.Boundary().Interpolates() {
			return Rule{Class: ClassUndefined, Next: ClassUndefined}
		}
		return Rule{Class: ClassCrease, Next: ClassCrease, Fraction: 1}
	}
	s := g.EdgeSharpness(e)
	switch {
	case s >= 1:
		return Rule{Class: ClassCrease, Next: ClassCrease, Fraction: 1}
	case s > 0:
		return Rule{Class: ClassCrease, Next: ClassSmooth, Fraction: float64(s)}
	default:
		return Rule{Class: ClassSmooth, Next: ClassSmooth, Fraction: 1}
	}
}

func vertexRule(g *topology.Graph, v int, scheme Scheme) Rule {
	if scheme == Bilinear {
		return Rule{Class: ClassCorner, Next: ClassCorner, Fraction: 1}
	}
	if g.IsBoundaryVertex(v) && !g.Boundary().Interpolates() {
		return Rule{Class: ClassUndefined, Next: ClassUndefined}
	}

	r := Rule{Fraction: 1}
	r.Class, r.Crease = vertexMask(g, v, 0)
	r.Next, r.NextCrease = vertexMask(g, v, 1)
	if r.Class != r.Next {
		r.Fraction = transitionFraction(g, v)
	}
	return r
}

// vertexMask classifies v at sharpness threshold t and returns the crease
// neighbours when the class is ClassCrease.
func vertexMask(g *topology.Graph, v int, t topology.Sharpness) (Class, [2]int) {
	creases := [2]int{-1, -1}
	if g.VertexSharpness(v) > t {
		return ClassCorner, creases
	}
	interp := g.Boundary().Interpolates()
	n := 0
	for _, e := range g.VertexEdges(v) {
		sharp := (g.IsBoundaryEdge(e) && interp) || g.EdgeSharpness(e) > t
		if !sharp {
			continue
		}
		if n < 2 {
			creases[n] = g.Edge(e).Other(v)
		}
		n++
	}
	switch {
	case n > 2:
		return ClassCorner, [2]int{-1, -1}
	case n == 2:
		return ClassCrease, creases
	default:
		return ClassSmooth, [2]int{-1, -1}
	}
}

// transitionFraction averages the sharpness of the features of v that are
// sharp now and smooth after one decay step (0 < s ≤ 1).
func transitionFraction(g *topology.Graph, v int) float64 {
	sum, n := 0.0, 0
	if s := g.VertexSharpness(v); s > 0 && s <= 1 {
		sum += float64(s)
		n++
	}
	for _, e := range g.VertexEdges(v) {
		if g.IsBoundaryEdge(e) {
			continue
		}
		if s := g.EdgeSharpness(e); s > 0 && s <= 1 {
			sum += float64(s)
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}

// regularVertex reports whether v has the valence of a regular patch
// corner for the scheme. Incomplete vertices are handled by the caller.
func regularVertex(g *topology.Graph, v int, scheme Scheme) bool {
	if scheme == Bilinear {
		return true
	}
	interior, boundary := 4, 3
	if scheme == Loop {
		interior, boundary = 6, 4
	}
	if !g.IsBoundaryVertex(v) {
		return g.Valence(v) == interior
	}
	switch g.Boundary() {
	case topology.BoundaryNone:
		// Undefined boundary vertices have nothing to isolate.
		return true
	case topology.BoundaryEdgeAndCorner:
		if g.FaceCount(v) == 1 {
			return true
		}
	}
	return g.Valence(v) == boundary
}

// terminalFace evaluates the adaptive stop rule for face f of level l.
func terminalFace(l *Level, f int, scheme Scheme, pending func(string) bool) bool {
	g := l.graph
	if g.FaceSize(f) != scheme.RegularFaceSize() {
		return false
	}
	if pending != nil && pending(l.faceKeys[f]) {
		return false
	}
	for _, v := range g.FaceVertices(f) {
		if !l.complete[v] || !regularVertex(g, v, scheme) {
			return false
		}
		if scheme == Bilinear {
			continue
		}
		s := g.VertexSharpness(v)
		// Pinned boundary corners are regular corner patches.
		cornerPatch := g.Boundary() == topology.BoundaryEdgeAndCorner && g.IsBoundaryVertex(v) && g.FaceCount(v) == 1
		if s.IsSharp() && !cornerPatch {
			return false
		}
	}
	if scheme == Bilinear {
		return true
	}
	for _, e := range g.FaceEdges(f) {
		if g.EdgeSharpness(e).IsSharp() {
			return false
		}
	}
	return true
}
