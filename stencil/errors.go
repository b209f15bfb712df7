// SPDX-License-Identifier: MIT
// Package: subdiv/stencil
//
// errors.go — sentinel errors for the stencil factory.

package stencil

import "errors"

var (
	// ErrNilHierarchy indicates a nil refinement hierarchy.
	ErrNilHierarchy = errors.New("stencil: hierarchy is nil")

	// ErrPartitionOfUnity indicates an Average stencil whose weights do not
	// add up to 1 within the configured tolerance.
	ErrPartitionOfUnity = errors.New("stencil: weights do not sum to 1")

	// ErrOutOfRange indicates a level, vertex or face id outside the tables.
	ErrOutOfRange = errors.New("stencil: index out of range")
)
