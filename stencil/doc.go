// SPDX-License-Identifier: MIT

// Package stencil compiles a refine.Hierarchy into per-level weighted-sum
// tables that any backend can apply to vertex data.
//
// A stencil computes one vertex of level d+1 as Σ wᵢ·src[iᵢ] over vertices
// of level d. Tables are stored in CSR form (sizes, starts, indices,
// weights) together with a Kind per destination:
//
//	Average   — weighted sum; weights add up to 1 (checked at build time).
//	            May carry an additive delta from Add/Subtract edits.
//	Override  — the value is the composed Set payload; no weights.
//	Undefined — the vertex has no defined rule (boundary with
//	            BoundaryNone) or reads one; backends write zeros.
//
// Masks come from a dispatch table keyed by (scheme, class). A rule that
// blends two classes merges both masks with Fraction and 1-Fraction.
// Sources are sorted ascending and duplicates merged, so the same
// hierarchy always yields byte-identical tables.
//
// Tables also carry the Remap between (level, local) ids and the flat
// global numbering used by evaluation buffers (level 0 first), and the
// face Ancestry of every level.
//
// Errors:
//
//	ErrNilHierarchy      — nil input.
//	ErrPartitionOfUnity  — an Average stencil does not sum to 1.
//	ErrOutOfRange        — Remap / Ancestry lookups outside the tables.
package stencil
