// SPDX-License-Identifier: MIT
// Package: subdiv/mesh
//
// mesh.go — Mesh: construction, data upload and asynchronous refinement.
//
// Stages of New:
//  1. Build the control topology.
//  2. Refine it and compile the stencil tables.
//  3. Allocate the buffer and upload the descriptor positions.

package mesh

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/eval"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/stencil"
	"github.com/katalvlaran/subdiv/topology"
)

// Mesh is a refined mesh with its vertex buffer. All methods are safe for
// concurrent use.
type Mesh struct {
	graph     *topology.Graph
	hierarchy *refine.Hierarchy
	tables    *stencil.Tables
	buf       *eval.CPUBuffer
	evaluator *eval.Evaluator
	logger    *zap.Logger

	mu      sync.Mutex
	pending chan error // non-nil while a Refine is in flight
	err     error      // first error not yet reported by Synchronize
}

// New builds the full pipeline for d and req. The buffer is seeded with
// d.Positions; Refine must still be called to fill the refined levels.
func New(d topology.Descriptor, req refine.Request, opts ...Option) (*Mesh, error) {
	const method = "New"
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Control topology.
	g, err := topology.New(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	elements := g.Arity()
	switch {
	case elements == 0 && o.elements == 0:
		return nil, fmt.Errorf("%s: no positions and no WithElements: %w", method, ErrNoPayload)
	case elements == 0:
		elements = o.elements
	case o.elements != 0 && o.elements != elements:
		return nil, fmt.Errorf("%s: positions have %d elements, WithElements(%d): %w",
			method, elements, o.elements, ErrNoPayload)
	}

	// 2) Hierarchy and tables.
	ropts := []refine.Option{refine.WithLogger(o.logger)}
	if len(o.edits) > 0 {
		ropts = append(ropts, refine.WithEdits(o.edits))
	}
	h, err := refine.Refine(g, req, ropts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	tables, err := stencil.Build(h, stencil.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// 3) Buffer and evaluator.
	buf, err := eval.NewCPUBuffer(tables.NumVertices(), elements)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if g.Arity() > 0 {
		if err := buf.UpdateData(g.Positions(), 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	eopts := []eval.Option{eval.WithLogger(o.logger)}
	if o.workers > 0 {
		eopts = append(eopts, eval.WithWorkers(o.workers))
	}

	m := &Mesh{
		graph:     g,
		hierarchy: h,
		tables:    tables,
		buf:       buf,
		evaluator: eval.NewEvaluator(eopts...),
		logger:    o.logger,
	}
	o.logger.Info("mesh ready",
		zap.Stringer("scheme", req.Scheme),
		zap.Stringer("mode", req.Mode),
		zap.Int("depth", h.Depth()),
		zap.Int("vertices", tables.NumVertices()),
		zap.Int("elements", elements),
	)
	return m, nil
}

// UpdateData overwrites the first len(coarse)/NumElements control rows.
// It waits for an in-flight Refine first.
func (m *Mesh) UpdateData(coarse []float64) error {
	const method = "UpdateData"
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitLocked()

	if n := m.buf.NumElements(); len(coarse)%n != 0 || len(coarse)/n > m.tables.NumControlVertices() {
		return fmt.Errorf("%s: %d values for %d control rows of %d: %w",
			method, len(coarse), m.tables.NumControlVertices(), n, ErrCoarseSize)
	}
	if err := m.buf.UpdateData(coarse, 0); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// Refine starts evaluating every refined level in the background and
// returns immediately. A Refine already in flight is awaited first.
func (m *Mesh) Refine() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitLocked()

	done := make(chan error, 1)
	m.pending = done
	go func() {
		start := time.Now()
		err := m.evaluator.Refine(m.tables, m.buf)
		m.logger.Debug("refine finished", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		done <- err
	}()
}

// Synchronize waits for the last Refine and returns the first evaluation
// error seen since the previous Synchronize.
func (m *Mesh) Synchronize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitLocked()
	err := m.err
	m.err = nil
	return err
}

// RefineSync is Refine followed by Synchronize.
func (m *Mesh) RefineSync() error {
	m.Refine()
	return m.Synchronize()
}

// waitLocked drains the in-flight evaluation, if any. m.mu must be held.
func (m *Mesh) waitLocked() {
	if m.pending == nil {
		return
	}
	if err := <-m.pending; err != nil && m.err == nil {
		m.err = err
	}
	m.pending = nil
}

// NumVertices is the buffer row count over all levels.
func (m *Mesh) NumVertices() int { return m.tables.NumVertices() }

// NumElements is the number of float64 values per vertex.
func (m *Mesh) NumElements() int { return m.buf.NumElements() }

// Depth is the deepest refined level.
func (m *Mesh) Depth() int { return m.hierarchy.Depth() }

// Graph returns the control topology.
func (m *Mesh) Graph() *topology.Graph { return m.graph }

// Hierarchy returns the refinement levels.
func (m *Mesh) Hierarchy() *refine.Hierarchy { return m.hierarchy }

// Tables returns the compiled stencil tables.
func (m *Mesh) Tables() *stencil.Tables { return m.tables }

// Buffer waits for an in-flight Refine and returns the vertex buffer.
// Writes made through it race with later Refine calls.
func (m *Mesh) Buffer() *eval.CPUBuffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitLocked()
	return m.buf
}

// LevelData returns a copy of the rows of one level, row-major.
func (m *Mesh) LevelData(level int) ([]float64, error) {
	if level < 0 || level > m.hierarchy.Depth() {
		return nil, fmt.Errorf("LevelData(%d): depth is %d: %w", level, m.hierarchy.Depth(), ErrLevel)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitLocked()
	rm := m.tables.Remap()
	return append([]float64(nil), m.buf.Range(rm.Offset(level), rm.Count(level))...), nil
}
