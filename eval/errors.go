// SPDX-License-Identifier: MIT
// Package: subdiv/eval
//
// errors.go — sentinel errors for evaluation and CPU buffers.

package eval

import "errors"

var (
	// ErrNilTables indicates nil stencil tables.
	ErrNilTables = errors.New("eval: stencil tables are nil")

	// ErrNilBuffer indicates a nil buffer.
	ErrNilBuffer = errors.New("eval: buffer is nil")

	// ErrBufferSize indicates a buffer with fewer vertices than the tables
	// address.
	ErrBufferSize = errors.New("eval: buffer too small for tables")

	// ErrPayloadArity indicates edit payloads whose size differs from the
	// buffer's element count.
	ErrPayloadArity = errors.New("eval: edit payload size differs from buffer element count")

	// ErrAliasedRange indicates overlapping source and destination ranges.
	ErrAliasedRange = errors.New("eval: source and destination ranges overlap")

	// ErrBufferShape indicates a non-positive vertex or element count.
	ErrBufferShape = errors.New("eval: invalid buffer shape")

	// ErrDataRange indicates UpdateData rows outside the buffer.
	ErrDataRange = errors.New("eval: data range outside buffer")
)
