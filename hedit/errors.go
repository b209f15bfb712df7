// SPDX-License-Identifier: MIT
// Package: subdiv/hedit
//
// errors.go — sentinel errors. Unresolvable paths are NOT errors: they are
// reported as Diagnostics and the edit is skipped.

package hedit

import "errors"

var (
	// ErrInvalidOp indicates an operation outside {Set, Add, Subtract}.
	ErrInvalidOp = errors.New("hedit: invalid operation")

	// ErrPayloadArity indicates edits whose payload sizes disagree, or an
	// empty payload.
	ErrPayloadArity = errors.New("hedit: payload arity mismatch")

	// ErrBadPath indicates a syntactically invalid path (negative entries,
	// unparsable text).
	ErrBadPath = errors.New("hedit: malformed path")
)
