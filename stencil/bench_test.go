// SPDX-License-Identifier: MIT

package stencil_test

import (
	"testing"

	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/shape"
	"github.com/katalvlaran/subdiv/stencil"
)

// BenchmarkBuild compiles a cube refined four times (1536 faces).
// Complexity: O(Σ stencil sizes · log size).
func BenchmarkBuild(b *testing.B) {
	h, err := shape.Cube().Refine(refine.Uniform, 4)
	if err != nil {
		b.Fatalf("setup Refine failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stencil.Build(h); err != nil {
			b.Fatal(err)
		}
	}
}
