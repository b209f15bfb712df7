// SPDX-License-Identifier: MIT
// Package: subdiv/stencil
//
// mask.go — subdivision masks and their (scheme, class) dispatch table.
//
// Every mask function adds w·mask to an accumulator, so blended rules call
// two functions with Fraction and 1-Fraction. A false return means the mask
// is not defined for the element.

package stencil

import (
	"math"
	"sort"

	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

// accum is a sparse (index, weight) accumulator for one stencil.
type accum struct {
	entries []entry
}

type entry struct {
	idx int
	w   float64
}

func (a *accum) reset() { a.entries = a.entries[:0] }

func (a *accum) add(idx int, w float64) {
	a.entries = append(a.entries, entry{idx, w})
}

// faceAverage adds w spread evenly over the corners of face f.
func (a *accum) faceAverage(g *topology.Graph, f int, w float64) {
	vs := g.FaceVertices(f)
	share := w / float64(len(vs))
	for _, v := range vs {
		a.add(v, share)
	}
}

// finish sorts by index, merges duplicates and drops exact zeros. The
// result aliases the scratch storage of a.
func (a *accum) finish() []entry {
	sort.Slice(a.entries, func(i, j int) bool { return a.entries[i].idx < a.entries[j].idx })
	out := a.entries[:0]
	for _, e := range a.entries {
		if n := len(out); n > 0 && out[n-1].idx == e.idx {
			out[n-1].w += e.w
			continue
		}
		out = append(out, e)
	}
	kept := out[:0]
	for _, e := range out {
		if e.w != 0 {
			kept = append(kept, e)
		}
	}
	a.entries = kept
	return kept
}

type maskKey struct {
	scheme refine.Scheme
	class  refine.Class
}

type (
	faceMask   func(g *topology.Graph, f int, w float64, a *accum) bool
	edgeMask   func(g *topology.Graph, e int, w float64, a *accum) bool
	vertexMask func(g *topology.Graph, v int, crease [2]int, w float64, a *accum) bool
)

var faceMasks = map[maskKey]faceMask{
	{refine.CatmullClark, refine.ClassFace}: faceCentroid,
	{refine.Bilinear, refine.ClassFace}:     faceCentroid,
}

var edgeMasks = map[maskKey]edgeMask{
	{refine.CatmullClark, refine.ClassSmooth}: catmarkEdgeSmooth,
	{refine.CatmullClark, refine.ClassCrease}: edgeMidpoint,
	{refine.Loop, refine.ClassSmooth}:         loopEdgeSmooth,
	{refine.Loop, refine.ClassCrease}:         edgeMidpoint,
	{refine.Bilinear, refine.ClassCrease}:     edgeMidpoint,
}

var vertexMasks = map[maskKey]vertexMask{
	{refine.CatmullClark, refine.ClassSmooth}: catmarkVertexSmooth,
	{refine.CatmullClark, refine.ClassCrease}: vertexCrease,
	{refine.CatmullClark, refine.ClassCorner}: vertexCorner,
	{refine.Loop, refine.ClassSmooth}:         loopVertexSmooth,
	{refine.Loop, refine.ClassCrease}:         vertexCrease,
	{refine.Loop, refine.ClassCorner}:         vertexCorner,
	{refine.Bilinear, refine.ClassCorner}:     vertexCorner,
}

func faceCentroid(g *topology.Graph, f int, w float64, a *accum) bool {
	a.faceAverage(g, f, w)
	return true
}

func edgeMidpoint(g *topology.Graph, e int, w float64, a *accum) bool {
	ed := g.Edge(e)
	a.add(ed.V0, w/2)
	a.add(ed.V1, w/2)
	return true
}

// catmarkEdgeSmooth: ¼ each endpoint, ¼ each adjacent face centroid.
func catmarkEdgeSmooth(g *topology.Graph, e int, w float64, a *accum) bool {
	ed := g.Edge(e)
	if ed.Faces[1] < 0 {
		return false
	}
	a.add(ed.V0, w/4)
	a.add(ed.V1, w/4)
	a.faceAverage(g, ed.Faces[0], w/4)
	a.faceAverage(g, ed.Faces[1], w/4)
	return true
}

// loopEdgeSmooth: 3/8 each endpoint, 1/8 each opposite corner.
func loopEdgeSmooth(g *topology.Graph, e int, w float64, a *accum) bool {
	ed := g.Edge(e)
	if ed.Faces[1] < 0 {
		return false
	}
	a.add(ed.V0, w*3/8)
	a.add(ed.V1, w*3/8)
	for _, f := range ed.Faces {
		for _, v := range g.FaceVertices(f) {
			if v != ed.V0 && v != ed.V1 {
				a.add(v, w/8)
			}
		}
	}
	return true
}

// catmarkVertexSmooth: (n−2)/n on v, 1/n² per neighbour, 1/n² per adjacent
// face centroid, n = valence.
func catmarkVertexSmooth(g *topology.Graph, v int, _ [2]int, w float64, a *accum) bool {
	n := float64(g.Valence(v))
	if n == 0 {
		return false
	}
	a.add(v, w*(n-2)/n)
	nn := w / (n * n)
	for _, u := range g.Neighbors(v) {
		a.add(u, nn)
	}
	for _, f := range g.VertexFaces(v) {
		a.faceAverage(g, f, nn)
	}
	return true
}

// LoopBeta returns the neighbour weight of the smooth Loop vertex mask for
// valence n: β = (5/8 − (3/8 + ¼·cos(2π/n))²) / n.
func LoopBeta(n int) float64 {
	c := 3.0/8 + math.Cos(2*math.Pi/float64(n))/4
	return (5.0/8 - c*c) / float64(n)
}

func loopVertexSmooth(g *topology.Graph, v int, _ [2]int, w float64, a *accum) bool {
	n := g.Valence(v)
	if n == 0 {
		return false
	}
	beta := LoopBeta(n)
	a.add(v, w*(1-float64(n)*beta))
	for _, u := range g.Neighbors(v) {
		a.add(u, w*beta)
	}
	return true
}

// vertexCrease: ¾ on v, ⅛ on each crease neighbour.
func vertexCrease(_ *topology.Graph, v int, crease [2]int, w float64, a *accum) bool {
	if crease[0] < 0 || crease[1] < 0 {
		return false
	}
	a.add(v, w*3/4)
	a.add(crease[0], w/8)
	a.add(crease[1], w/8)
	return true
}

func vertexCorner(_ *topology.Graph, v int, _ [2]int, w float64, a *accum) bool {
	a.add(v, w)
	return true
}
