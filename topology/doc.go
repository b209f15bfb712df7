// SPDX-License-Identifier: MIT

// Package topology provides the immutable half-edge representation of a
// polygonal control mesh (and of every refined level built from it).
//
// 🚀 What is topology.Graph?
//
//	An arena of integer-indexed faces, half-edges, edges and vertices.
//	Nothing in the arena owns anything else: opposite, face and edge
//	relations are plain indices, so cyclic adjacency never turns into a
//	cyclic ownership graph.
//
// ✨ Key features:
//   - Strict construction: degenerate faces, inconsistent winding and
//     non-manifold edges are rejected with errors matching ErrTopology.
//   - Sharpness attributes per edge and per vertex, clamped at ingestion
//     (NaN/negative → 0, +Inf or ≥ InfiniteThreshold → Infinite).
//   - Boundary interpolation policy (None, EdgeOnly, EdgeAndCorner).
//   - Deterministic numbering: edges are numbered in order of first
//     appearance while scanning faces in order; half-edge h is face corner h.
//   - No mutation after New returns. Safe for concurrent readers.
//
// ⚙️ Usage:
//
//	g, err := topology.New(topology.Descriptor{
//		Faces:     [][]int{{0, 1, 2, 3}},
//		Positions: [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
//		Boundary:  topology.BoundaryEdgeOnly,
//	})
//	if errors.Is(err, topology.ErrTopology) { /* reject mesh */ }
//
// Complexity:
//
//	New runs in O(F·k + V) time and memory, where k is the mean face size.
//	Every query is O(1) or O(valence).
package topology
