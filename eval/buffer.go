// SPDX-License-Identifier: MIT
// Package: subdiv/eval
//
// buffer.go — CPUBuffer: flat row-major float64 storage.

package eval

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/subdiv/hedit"
)

// CPUBuffer stores NumVertices rows of NumElements float64 values.
type CPUBuffer struct {
	data []float64
	rows int
	cols int
}

// NewCPUBuffer allocates a zeroed buffer.
// Returns ErrBufferShape unless both counts are positive.
func NewCPUBuffer(numVertices, numElements int) (*CPUBuffer, error) {
	if numVertices <= 0 || numElements <= 0 {
		return nil, fmt.Errorf("NewCPUBuffer(%d, %d): %w", numVertices, numElements, ErrBufferShape)
	}
	return &CPUBuffer{
		data: make([]float64, numVertices*numElements),
		rows: numVertices,
		cols: numElements,
	}, nil
}

// NumVertices implements Buffer.
func (b *CPUBuffer) NumVertices() int { return b.rows }

// NumElements implements Buffer.
func (b *CPUBuffer) NumElements() int { return b.cols }

func (b *CPUBuffer) row(i int) []float64 {
	return b.data[i*b.cols : (i+1)*b.cols : (i+1)*b.cols]
}

// Clear implements Buffer.
func (b *CPUBuffer) Clear(i int) {
	r := b.row(i)
	for k := range r {
		r[k] = 0
	}
}

// AddWithWeight implements Buffer.
func (b *CPUBuffer) AddWithWeight(dst, src int, w float64) {
	floats.AddScaled(b.row(dst), w, b.row(src))
}

// ApplyEdit implements Buffer. The payload must have NumElements values.
func (b *CPUBuffer) ApplyEdit(i int, op hedit.Op, payload []float64) {
	r := b.row(i)
	switch op {
	case hedit.Set:
		copy(r, payload)
	case hedit.Add:
		floats.Add(r, payload)
	case hedit.Subtract:
		floats.Sub(r, payload)
	}
}

// UpdateData copies len(src)/NumElements rows into the buffer starting at
// row start. src must hold whole rows.
func (b *CPUBuffer) UpdateData(src []float64, start int) error {
	if len(src)%b.cols != 0 {
		return fmt.Errorf("UpdateData: %d values is not a multiple of %d: %w", len(src), b.cols, ErrDataRange)
	}
	count := len(src) / b.cols
	if start < 0 || start+count > b.rows {
		return fmt.Errorf("UpdateData: rows [%d,%d) outside [0,%d): %w", start, start+count, b.rows, ErrDataRange)
	}
	copy(b.data[start*b.cols:], src)
	return nil
}

// Data returns the backing slice. Writes go straight into the buffer.
func (b *CPUBuffer) Data() []float64 { return b.data }

// Vertex returns row i as a sub-slice of the buffer.
func (b *CPUBuffer) Vertex(i int) []float64 { return b.row(i) }

// Range returns rows [start, start+count) as one sub-slice.
func (b *CPUBuffer) Range(start, count int) []float64 {
	return b.data[start*b.cols : (start+count)*b.cols]
}

// Vec3 returns the first three elements of row i as a vector; missing
// elements read as zero.
func (b *CPUBuffer) Vec3(i int) r3.Vec {
	var v [3]float64
	copy(v[:], b.row(i))
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

var _ Buffer = (*CPUBuffer)(nil)
