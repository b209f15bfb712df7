// SPDX-License-Identifier: MIT
// Package: subdiv/shape
//
// errors.go — sentinel errors for fixtures and loaders.

package shape

import "errors"

var (
	// ErrUnknownShape indicates a fixture name that is not registered.
	ErrUnknownShape = errors.New("shape: unknown shape")

	// ErrBadSize indicates a generator parameter below its minimum.
	ErrBadSize = errors.New("shape: invalid size")

	// ErrMalformed indicates undecodable input: bad syntax, a missing
	// section, an unknown tag or an unparsable value.
	ErrMalformed = errors.New("shape: malformed description")

	// ErrUnsupportedFormat indicates a file extension Load cannot handle.
	ErrUnsupportedFormat = errors.New("shape: unsupported format")
)
