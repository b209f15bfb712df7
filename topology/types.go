// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// types.go — Sharpness, BoundaryMode, Descriptor and the Graph arena.

package topology

import (
	"fmt"
	"math"
	"strings"
)

// Sharpness controls the blend between smooth and hard (linear) rules on an
// edge or vertex. It decays by exactly 1.0 per refinement level, except the
// Infinite sentinel which never decays.
type Sharpness float64

const (
	// Smooth is the zero sharpness: fully smooth rules apply.
	Smooth Sharpness = 0

	// Infinite marks a permanent hard crease or corner.
	Infinite Sharpness = math.MaxFloat64

	// InfiniteThreshold is the ingestion cut-off: any finite value at or
	// above it is stored as Infinite.
	InfiniteThreshold = 10.0
)

// Clamp maps an arbitrary float into the valid sharpness domain.
// NaN and negatives become Smooth; +Inf and values ≥ InfiniteThreshold
// become Infinite. Complexity: O(1).
func Clamp(v float64) Sharpness {
	switch {
	case math.IsNaN(v) || v <= 0:
		return Smooth
	case math.IsInf(v, 1) || v >= InfiniteThreshold:
		return Infinite
	default:
		return Sharpness(v)
	}
}

// IsInfinite reports whether s is the permanent-crease sentinel.
func (s Sharpness) IsInfinite() bool { return s == Infinite }

// IsSharp reports whether s is strictly positive.
func (s Sharpness) IsSharp() bool { return s > 0 }

// Decay returns the sharpness one level down: s-1 clamped at 0,
// Infinite stays Infinite.
func (s Sharpness) Decay() Sharpness {
	if s.IsInfinite() {
		return Infinite
	}
	if s <= 1 {
		return Smooth
	}
	return s - 1
}

// String renders Infinite as "inf" and finite values in %g form.
func (s Sharpness) String() string {
	if s.IsInfinite() {
		return "inf"
	}
	return fmt.Sprintf("%g", float64(s))
}

// BoundaryMode selects how boundary vertices are interpolated.
//
//   - BoundaryNone          — boundary edges/vertices are left undefined.
//   - BoundaryEdgeOnly      — boundary edges act as infinitely sharp creases.
//   - BoundaryEdgeAndCorner — as EdgeOnly, plus boundary vertices with a
//     single incident face become infinitely sharp corners.
type BoundaryMode int

const (
	// BoundaryNone leaves boundary vertices undefined.
	BoundaryNone BoundaryMode = iota

	// BoundaryEdgeOnly smooths boundaries with the 1D crease mask.
	BoundaryEdgeOnly

	// BoundaryEdgeAndCorner additionally pins valence-2 boundary corners.
	BoundaryEdgeAndCorner
)

// String returns the canonical lowercase name of the mode.
func (m BoundaryMode) String() string {
	switch m {
	case BoundaryNone:
		return "none"
	case BoundaryEdgeOnly:
		return "edgeonly"
	case BoundaryEdgeAndCorner:
		return "edgeandcorner"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// Interpolates reports whether boundary vertices receive smoothing rules.
func (m BoundaryMode) Interpolates() bool { return m != BoundaryNone }

// ParseBoundaryMode accepts the canonical names (case-insensitive) plus the
// numeric tags 0/1/2 used by shape files.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0", "":
		return BoundaryNone, nil
	case "edgeonly", "edge-only", "edge_only", "1":
		return BoundaryEdgeOnly, nil
	case "edgeandcorner", "edge-and-corner", "edge_and_corner", "2":
		return BoundaryEdgeAndCorner, nil
	default:
		return BoundaryNone, fmt.Errorf("topology: unknown boundary mode %q", s)
	}
}

// Crease tags the undirected edge (V0,V1) with a sharpness value.
type Crease struct {
	V0, V1    int
	Sharpness float64
}

// Corner tags a vertex with a sharpness value.
type Corner struct {
	Vertex    int
	Sharpness float64
}

// Descriptor is the raw mesh description consumed by New.
//
// Fields:
//   - Faces       — per-face vertex cycles (counter-clockwise by convention).
//   - Positions   — optional control payloads, one fixed-arity tuple per vertex.
//   - NumVertices — vertex count when Positions is empty.
//   - Creases     — edge sharpness tags.
//   - Corners     — vertex sharpness tags.
//   - Boundary    — boundary interpolation policy.
type Descriptor struct {
	Faces       [][]int
	Positions   [][]float64
	NumVertices int
	Creases     []Crease
	Corners     []Corner
	Boundary    BoundaryMode
}

// Edge is an undirected edge. Faces[1] is -1 on a boundary edge.
type Edge struct {
	V0, V1    int
	Faces     [2]int
	Sharpness Sharpness
	Boundary  bool
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.V0 == v {
		return e.V1
	}
	return e.V0
}

// HalfEdge is one directed face corner: Origin→Dest inside Face.
// Opposite is -1 when the half-edge lies on a boundary.
type HalfEdge struct {
	Origin   int
	Dest     int
	Opposite int
	Face     int
	Edge     int
}

// edgeKey is the canonical (min,max) vertex pair of an undirected edge.
type edgeKey struct{ a, b int }

func makeEdgeKey(v0, v1 int) edgeKey {
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	return edgeKey{v0, v1}
}

// Graph is the immutable half-edge arena of one mesh level.
//
// Half-edge h is face corner h: it starts at faceVerts[h] and belongs to the
// face whose [faceStart[f], faceStart[f+1]) range contains h. Vertex→edge
// and vertex→face incidences are stored in CSR form.
type Graph struct {
	boundary BoundaryMode

	numVerts  int
	arity     int
	positions []float64 // numVerts*arity, row-major

	faceStart []int // len NumFaces+1
	faceVerts []int // corner → vertex
	heOpp     []int // corner → opposite corner or -1
	heEdge    []int // corner → edge
	heFace    []int // corner → face

	edges     []Edge
	edgeIndex map[edgeKey]int

	vertEdgeStart []int
	vertEdges     []int
	vertFaceStart []int
	vertFaces     []int

	vertSharp    []Sharpness
	vertBoundary []bool
}
