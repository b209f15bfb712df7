// SPDX-License-Identifier: MIT

// Package mesh wires the whole pipeline behind one handle:
//
//	topology.New → refine.Refine → stencil.Build → eval.CPUBuffer → eval.Evaluator
//
// A Mesh owns one vertex buffer laid out in global order (control rows
// first, then each refined level). UpdateData replaces control rows,
// Refine starts an asynchronous evaluation of every refined level and
// Synchronize waits for it. Accessors that read the buffer synchronize
// first, so a caller never observes a half-evaluated level.
//
// Errors:
//
//	ErrNoPayload  — the descriptor has no positions and WithElements was not given.
//	ErrCoarseSize — UpdateData got more rows than the control mesh has.
//	ErrLevel      — LevelData got a level outside [0, Depth()].
//
// Errors from topology, refine, stencil and eval are wrapped unchanged.
package mesh
