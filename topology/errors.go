// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// errors.go — sentinel errors for mesh construction.
//
// Error policy:
//   • Every construction failure wraps ErrTopology, so callers can branch on
//     the whole class with errors.Is(err, ErrTopology) and on the concrete
//     cause with the narrower sentinels below.
//   • Context (face index, vertex pair) is attached with %w at the return
//     site, never baked into the sentinel message.

package topology

import (
	"errors"
	"fmt"
)

// ErrTopology is the umbrella class of fatal construction errors.
var ErrTopology = errors.New("topology: invalid mesh")

var (
	// ErrDegenerateFace indicates a face with fewer than 3 vertices or a
	// vertex repeated inside one face.
	ErrDegenerateFace = fmt.Errorf("%w: degenerate face", ErrTopology)

	// ErrVertexOutOfRange indicates a face or corner refers to a vertex id
	// outside [0, NumVertices).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex index out of range", ErrTopology)

	// ErrInconsistentWinding indicates two faces traverse a shared edge in
	// the same direction.
	ErrInconsistentWinding = fmt.Errorf("%w: inconsistent winding", ErrTopology)

	// ErrNonManifoldEdge indicates an edge shared by more than two faces.
	ErrNonManifoldEdge = fmt.Errorf("%w: non-manifold edge", ErrTopology)

	// ErrPositionArity indicates control positions of differing (or zero) arity.
	ErrPositionArity = fmt.Errorf("%w: inconsistent position arity", ErrTopology)

	// ErrVertexCount indicates NumVertices disagrees with len(Positions).
	ErrVertexCount = fmt.Errorf("%w: vertex count mismatch", ErrTopology)

	// ErrUnknownEdge indicates a crease tag names a vertex pair that is not
	// an edge of the mesh.
	ErrUnknownEdge = fmt.Errorf("%w: crease on unknown edge", ErrTopology)
)

// topoErrorf attaches method context to a sentinel: "<method>: <msg>: <sentinel>".
func topoErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
