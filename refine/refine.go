// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// refine.go — Refine: the level loop.
//
// Stages:
//  1. Validate the request against the control mesh.
//  2. Index the edit list; wrap the control mesh as level 0.
//  3. For each depth: mark terminal faces, select, split, resolve edits.
//  4. Report edits no level could resolve.

package refine

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/topology"
)

const methodRefine = "Refine"

// Refine builds the refinement hierarchy of g.
//
// Uniform requests produce exactly req.Depth+1 levels. Adaptive requests
// stop early once no face needs refining.
//
// Errors:
//   - ErrNilGraph                 — g == nil.
//   - ErrUnknownScheme/Mode       — enum out of range.
//   - ErrInvalidDepth             — req.Depth < 0.
//   - ErrRefinementLimitExceeded  — adaptive req.Depth > MaxAdaptiveDepth.
//   - ErrSchemeMismatch           — Loop on a non-triangular face.
//   - hedit errors                — malformed edit list (WithEdits).
//
// Complexity: O(Σ_d (V_d + E_d + F_d·k)) time and memory.
func Refine(g *topology.Graph, req Request, opts ...Option) (*Hierarchy, error) {
	cfg := newConfig(opts...)

	// Stage 1: validation.
	if err := validate(g, req); err != nil {
		return nil, err
	}

	// Stage 2: edits and the control level.
	app, err := hedit.NewApplicator(cfg.edits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRefine, err)
	}
	h := &Hierarchy{scheme: req.Scheme, mode: req.Mode, editArity: app.Arity()}
	if app.Len() > 0 && g.Arity() != 0 && app.Arity() != g.Arity() {
		return nil, fmt.Errorf("%s: edit payload size %d, control payload size %d: %w",
			methodRefine, app.Arity(), g.Arity(), hedit.ErrPayloadArity)
	}
	l0 := controlLevel(g)
	markTerminal(l0, req.Scheme, app.Pending)
	h.levels = append(h.levels, l0)

	log := cfg.logger.With(
		zap.Stringer("scheme", req.Scheme),
		zap.Stringer("mode", req.Mode),
	)
	log.Debug("level built",
		zap.Int("depth", 0),
		zap.Int("vertices", l0.NumVertices()),
		zap.Int("faces", l0.NumFaces()),
	)

	// Stage 3: levels.
	for d := 0; d < req.Depth; d++ {
		parent := h.levels[d]
		sel, n := selectFaces(parent, req.Mode)
		if n == 0 {
			log.Debug("adaptive refinement converged", zap.Int("depth", d))
			break
		}
		child, err := split(parent, sel, req.Scheme)
		if err != nil {
			return nil, err
		}
		child.candidate = childCandidates(parent, child, req.Mode)
		terminal := markTerminal(child, req.Scheme, app.Pending)

		resolved, diags := app.Resolve(child.depth, child)
		child.edits = hedit.Group(resolved)
		h.diags = append(h.diags, diags...)
		h.levels = append(h.levels, child)

		log.Debug("level built",
			zap.Int("depth", child.depth),
			zap.Int("refined_parents", n),
			zap.Int("vertices", child.NumVertices()),
			zap.Int("faces", child.NumFaces()),
			zap.Int("terminal_faces", terminal),
			zap.Int("edits", len(resolved)),
		)
	}

	// Stage 4: edits outside the hierarchy.
	h.diags = append(h.diags, app.Unreached(h.Depth())...)
	sortDiagnostics(h.diags)
	for _, dg := range h.diags {
		log.Warn("hierarchical edit skipped",
			zap.Int("edit", dg.Index),
			zap.Stringer("path", dg.Path),
			zap.String("reason", dg.Reason),
		)
	}
	return h, nil
}

func validate(g *topology.Graph, req Request) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodRefine, ErrNilGraph)
	}
	if req.Scheme > Bilinear {
		return fmt.Errorf("%s: %v: %w", methodRefine, req.Scheme, ErrUnknownScheme)
	}
	if req.Mode > Adaptive {
		return fmt.Errorf("%s: %v: %w", methodRefine, req.Mode, ErrUnknownMode)
	}
	if req.Depth < 0 {
		return fmt.Errorf("%s: depth %d: %w", methodRefine, req.Depth, ErrInvalidDepth)
	}
	if req.Mode == Adaptive && req.Depth > MaxAdaptiveDepth {
		return fmt.Errorf("%s: depth %d > %d: %w", methodRefine, req.Depth, MaxAdaptiveDepth, ErrRefinementLimitExceeded)
	}
	if req.Scheme == Loop {
		for f := 0; f < g.NumFaces(); f++ {
			if g.FaceSize(f) != 3 {
				return fmt.Errorf("%s: face %d has %d vertices: %w", methodRefine, f, g.FaceSize(f), ErrSchemeMismatch)
			}
		}
	}
	return nil
}

// controlLevel wraps the control mesh as level 0.
func controlLevel(g *topology.Graph) *Level {
	nv, nf := g.NumVertices(), g.NumFaces()
	l := &Level{
		graph:      g,
		origins:    make([]Origin, nv),
		rules:      make([]Rule, nv),
		complete:   make([]bool, nv),
		faceParent: make([]int, nf),
		faceSlot:   make([]int, nf),
		faceRoot:   make([]int, nf),
		faceKeys:   make([]string, nf),
		candidate:  make([]bool, nf),
		paths:      make(map[string]int, nf),
	}
	for v := 0; v < nv; v++ {
		l.origins[v] = Origin{Kind: OriginControl, Parent: -1}
		l.complete[v] = true
	}
	for f := 0; f < nf; f++ {
		l.faceParent[f] = -1
		l.faceSlot[f] = -1
		l.faceRoot[f] = f
		l.faceKeys[f] = hedit.Key(f, nil)
		l.candidate[f] = true
		l.paths[l.faceKeys[f]] = f
	}
	return l
}

// childCandidates marks the children of non-terminal candidates. In
// uniform mode every face is a candidate.
func childCandidates(parent, child *Level, mode Mode) []bool {
	out := make([]bool, child.NumFaces())
	for f := range out {
		pf := child.faceParent[f]
		out[f] = mode == Uniform || (parent.candidate[pf] && !parent.terminal[pf])
	}
	return out
}

func sortDiagnostics(ds []hedit.Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Index < ds[j].Index })
}
