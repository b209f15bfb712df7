// SPDX-License-Identifier: MIT
// Package: subdiv/eval
//
// types.go — the Buffer contract.

package eval

import "github.com/katalvlaran/subdiv/hedit"

// Buffer is vertex storage a backend evaluates stencils into.
//
// Concurrency: the Evaluator calls Clear, AddWithWeight and ApplyEdit from
// several goroutines at once, always with distinct dst rows, while src rows
// are only read. Implementations must be safe under that pattern.
type Buffer interface {
	// NumVertices returns the number of rows.
	NumVertices() int
	// NumElements returns the number of float64 elements per row.
	NumElements() int
	// Clear zeroes row i.
	Clear(i int)
	// AddWithWeight adds w·row(src) to row(dst).
	AddWithWeight(dst, src int, w float64)
	// ApplyEdit applies a hierarchical edit payload to row i.
	ApplyEdit(i int, op hedit.Op, payload []float64)
}
