// SPDX-License-Identifier: MIT

// Package subdiv is a subdivision-surface toolkit: it refines polygon
// control meshes with Catmull–Clark, Loop or bilinear rules, compiles the
// refinement into per-level stencil tables and evaluates those tables on
// vertex data in parallel.
//
// 🚀 Pipeline
//
//	topology.Descriptor ─► topology.Graph ─► refine.Hierarchy ─► stencil.Tables ─► eval.Buffer
//	      (shape)            (half-edges)      (levels, rules)     (CSR weights)    (CPU, parallel)
//
// ✨ Features
//
//   - Uniform and feature-adaptive refinement with a hard depth ceiling.
//   - Semi-sharp and infinitely sharp creases and corners, decaying by one
//     per level; boundary interpolation none / edge-only / edge-and-corner.
//   - Hierarchical vertex edits (set, add, subtract) addressed by face paths.
//   - Stencils that are deterministic, partition-of-unity checked and
//     independent of the data they are applied to.
//   - Data-parallel evaluation with bit-identical results for any worker count.
//
// Packages:
//
//	topology/  — immutable half-edge Graph, sharpness and boundary policy
//	hedit/     — hierarchical edit paths, composition and resolution
//	refine/    — refinement engine: Hierarchy of levels with vertex origins and mask rules
//	stencil/   — stencil Tables, global Remap and face Ancestry
//	eval/      — Buffer contract, CPUBuffer and the parallel Evaluator
//	mesh/      — one-call facade with asynchronous Refine / Synchronize
//	shape/     — fixtures plus YAML, TOML and OBJ loaders and a file watcher
//	config/    — YAML/TOML run configuration
//	logging/   — zap loggers with lumberjack file rotation
//
// Quick example:
//
//	cube := shape.Cube()
//	m, err := mesh.New(cube.Descriptor, refine.Request{Scheme: refine.CatmullClark, Depth: 2})
//	if err != nil { ... }
//	if err := m.RefineSync(); err != nil { ... }
//	level2, _ := m.LevelData(2) // 98 vertices × 3 floats
//
// See examples/subdiv for a command-line driver.
package subdiv
