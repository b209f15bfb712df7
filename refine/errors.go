// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// errors.go — sentinel errors for the refinement engine.

package refine

import "errors"

var (
	// ErrNilGraph indicates a nil control mesh.
	ErrNilGraph = errors.New("refine: graph is nil")

	// ErrInvalidDepth indicates a negative target depth.
	ErrInvalidDepth = errors.New("refine: depth must be >= 0")

	// ErrRefinementLimitExceeded indicates an adaptive request deeper than
	// MaxAdaptiveDepth.
	ErrRefinementLimitExceeded = errors.New("refine: adaptive refinement depth limit exceeded")

	// ErrSchemeMismatch indicates faces the scheme cannot split (Loop on
	// non-triangles).
	ErrSchemeMismatch = errors.New("refine: mesh faces incompatible with scheme")

	// ErrUnknownScheme indicates a Scheme value outside the known set.
	ErrUnknownScheme = errors.New("refine: unknown scheme")

	// ErrUnknownMode indicates a Mode value outside the known set.
	ErrUnknownMode = errors.New("refine: unknown mode")

	// errInternal marks a broken engine invariant (child level rejected by
	// topology construction). It is never expected in practice.
	errInternal = errors.New("refine: internal invariant violated")
)
