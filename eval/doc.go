// SPDX-License-Identifier: MIT

// Package eval applies stencil tables to vertex data.
//
// A Buffer holds every vertex of every level in the global numbering of
// stencil.Remap: level 0 (the control data supplied by the caller) first,
// then each refined level. Evaluator.Refine fills levels 1..D in order:
//
//	for each level:
//	    for each destination (split across workers):
//	        Average   → Clear, Σ AddWithWeight, optional additive delta
//	        Override  → Clear, ApplyEdit(Set, payload)
//	        Undefined → Clear
//	    barrier
//
// Every destination is written by exactly one worker and only reads the
// finished previous level, so results are bit-identical for any worker
// count. All preconditions are checked before the first write; a failed
// call leaves the buffer untouched.
//
// CPUBuffer is the reference Buffer: a flat row-major []float64 whose row
// kernels are gonum/floats. Other backends implement Buffer themselves.
package eval
