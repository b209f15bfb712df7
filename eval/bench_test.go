// SPDX-License-Identifier: MIT

package eval_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/subdiv/eval"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/shape"
	"github.com/katalvlaran/subdiv/stencil"
)

// BenchmarkRefine evaluates an icosahedron refined five times with Loop
// (20·4⁵ faces at the finest level), serially and in parallel.
func BenchmarkRefine(b *testing.B) {
	ico := shape.Icosahedron()
	h, err := ico.Refine(refine.Uniform, 5)
	if err != nil {
		b.Fatalf("setup Refine failed: %v", err)
	}
	tables, err := stencil.Build(h)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	buf, err := eval.NewCPUBuffer(tables.NumVertices(), 3)
	if err != nil {
		b.Fatalf("setup NewCPUBuffer failed: %v", err)
	}
	if err := buf.UpdateData(ico.Coarse(), 0); err != nil {
		b.Fatalf("setup UpdateData failed: %v", err)
	}

	for _, bc := range []struct {
		name    string
		workers int
	}{
		{"serial", 1},
		{"parallel", runtime.GOMAXPROCS(0)},
	} {
		e := eval.NewEvaluator(eval.WithWorkers(bc.workers))
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := e.Refine(tables, buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
