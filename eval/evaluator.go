// SPDX-License-Identifier: MIT
// Package: subdiv/eval
//
// evaluator.go — Evaluator: level-ordered, data-parallel stencil application.

package eval

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/stencil"
)

// Evaluator applies stencil tables to buffers. It holds no per-call state
// and may be shared between goroutines.
type Evaluator struct {
	workers int
	grain   int
	logger  *zap.Logger
}

// NewEvaluator returns an Evaluator using GOMAXPROCS workers and
// DefaultGrain unless overridden.
func NewEvaluator(opts ...Option) *Evaluator {
	e := defaultEvaluator()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the configured worker count.
func (e *Evaluator) Workers() int { return e.workers }

// Refine fills every refined level of buf from its control rows.
//
// Rows [0, t.NumControlVertices()) must already hold the control data.
//
// Errors (checked before any write):
//   - ErrNilTables, ErrNilBuffer.
//   - ErrBufferSize    — buf.NumVertices() < t.NumVertices().
//   - ErrPayloadArity  — edit payload size ≠ buf.NumElements().
//   - ErrAliasedRange  — a level reads rows it writes.
func (e *Evaluator) Refine(t *stencil.Tables, buf Buffer) error {
	const method = "Refine"
	if t == nil {
		return fmt.Errorf("%s: %w", method, ErrNilTables)
	}
	if buf == nil {
		return fmt.Errorf("%s: %w", method, ErrNilBuffer)
	}
	if buf.NumVertices() < t.NumVertices() {
		return fmt.Errorf("%s: buffer has %d vertices, tables need %d: %w",
			method, buf.NumVertices(), t.NumVertices(), ErrBufferSize)
	}
	if t.HasEdits() && t.EditArity() != buf.NumElements() {
		return fmt.Errorf("%s: payload size %d, buffer elements %d: %w",
			method, t.EditArity(), buf.NumElements(), ErrPayloadArity)
	}
	levels := t.All()
	for _, tab := range levels {
		if err := checkAliasing(tab); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	for _, tab := range levels {
		e.run(tab, buf)
	}
	return nil
}

// EvaluateLevel applies a single level table. Its source rows must be
// final. Same error contract as Refine.
func (e *Evaluator) EvaluateLevel(tab *stencil.Table, buf Buffer) error {
	const method = "EvaluateLevel"
	if tab == nil {
		return fmt.Errorf("%s: %w", method, ErrNilTables)
	}
	if buf == nil {
		return fmt.Errorf("%s: %w", method, ErrNilBuffer)
	}
	need := tab.DstOffset() + tab.Len()
	if end := tab.SrcOffset() + tab.NumSources(); end > need {
		need = end
	}
	if buf.NumVertices() < need {
		return fmt.Errorf("%s: buffer has %d vertices, level %d needs %d: %w",
			method, buf.NumVertices(), tab.Level(), need, ErrBufferSize)
	}
	for _, i := range tab.Edited() {
		if n := tab.PayloadLen(i); n != buf.NumElements() {
			return fmt.Errorf("%s: level %d row %d payload size %d, buffer elements %d: %w",
				method, tab.Level(), i, n, buf.NumElements(), ErrPayloadArity)
		}
	}
	if err := checkAliasing(tab); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	e.run(tab, buf)
	return nil
}

func checkAliasing(tab *stencil.Table) error {
	s0, s1 := tab.SrcOffset(), tab.SrcOffset()+tab.NumSources()
	d0, d1 := tab.DstOffset(), tab.DstOffset()+tab.Len()
	if s0 < d1 && d0 < s1 {
		return fmt.Errorf("level %d: src [%d,%d) dst [%d,%d): %w", tab.Level(), s0, s1, d0, d1, ErrAliasedRange)
	}
	return nil
}

// run evaluates one level and returns once every row is written.
func (e *Evaluator) run(tab *stencil.Table, buf Buffer) {
	start := time.Now()
	e.parallel(tab.Len(), func(lo, hi int) {
		applyRows(tab, buf, lo, hi)
	})
	e.logger.Debug("level evaluated",
		zap.Int("level", tab.Level()),
		zap.Int("rows", tab.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// parallel splits [0, n) into grain-sized work items consumed by up to
// e.workers goroutines, and waits for all of them.
func (e *Evaluator) parallel(n int, fn func(lo, hi int)) {
	chunks := (n + e.grain - 1) / e.grain
	if e.workers == 1 || chunks <= 1 {
		fn(0, n)
		return
	}

	jobs := make(chan int, chunks)
	for c := 0; c < chunks; c++ {
		jobs <- c
	}
	close(jobs)

	workers := min(e.workers, chunks)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for c := range jobs {
				lo := c * e.grain
				fn(lo, min(lo+e.grain, n))
			}
		}()
	}
	wg.Wait()
}

func applyRows(tab *stencil.Table, buf Buffer, lo, hi int) {
	src, dst := tab.SrcOffset(), tab.DstOffset()
	var d int
	add := func(j int, w float64) { buf.AddWithWeight(d, src+j, w) }
	for i := lo; i < hi; i++ {
		d = dst + i
		buf.Clear(d)
		switch tab.Kind(i) {
		case stencil.Average:
			tab.EachWeight(i, add)
			if tab.PayloadLen(i) > 0 {
				buf.ApplyEdit(d, hedit.Add, tab.Payload(i))
			}
		case stencil.Override:
			buf.ApplyEdit(d, hedit.Set, tab.Payload(i))
		}
	}
}
