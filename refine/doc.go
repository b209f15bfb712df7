// SPDX-License-Identifier: MIT

// Package refine is the refinement engine: it applies one subdivision
// scheme's per-level rules to a topology.Graph, uniformly or adaptively,
// and produces a Hierarchy of immutable levels.
//
// 🚀 Schemes
//
//	CatmullClark — quad-smooth scheme; any polygon splits into quads.
//	Loop         — triangle-smooth scheme; triangles only.
//	Bilinear     — centroid / midpoint / copy; no smoothing, no creases.
//
// ✨ Modes
//
//	Uniform  — every face of every level is refined down to Request.Depth.
//	Adaptive — only faces whose closure is not terminal are refined, plus
//	           their one-ring so every child mask is well defined. A face is
//	           terminal once it is regular for the scheme, carries no sharp
//	           edge or vertex, and has no edit pending beneath it.
//
// Every level records, per vertex, where it came from (face, edge or vertex
// of the previous level) and which mask Rule computes it. The stencil
// package turns those rules into weights; refine itself never touches
// vertex data.
//
// Ordering is deterministic: child vertices are numbered face points first,
// then edge points, then vertex points, each group in parent index order.
// Child faces follow refined parent faces in order, one per child slot.
//
// Errors:
//
//	ErrNilGraph                 — nil control mesh.
//	ErrInvalidDepth             — negative depth.
//	ErrRefinementLimitExceeded  — adaptive depth above MaxAdaptiveDepth.
//	ErrSchemeMismatch           — Loop on non-triangular faces.
//	ErrUnknownScheme / Mode     — enum out of range.
//
// Unresolvable hierarchical edits are not errors; they are collected as
// Diagnostics on the Hierarchy and logged as warnings.
package refine
