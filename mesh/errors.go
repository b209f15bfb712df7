// SPDX-License-Identifier: MIT
// Package: subdiv/mesh
//
// errors.go — sentinel errors for the mesh facade.

package mesh

import "errors"

var (
	// ErrNoPayload indicates that the vertex width is unknown.
	ErrNoPayload = errors.New("mesh: vertex payload width unknown")

	// ErrCoarseSize indicates coarse data that does not fit the control rows.
	ErrCoarseSize = errors.New("mesh: coarse data size mismatch")

	// ErrLevel indicates a level index outside the hierarchy.
	ErrLevel = errors.New("mesh: level out of range")
)
