// SPDX-License-Identifier: MIT

package refine_test

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

// ExampleRefine refines a cube twice with Catmull–Clark.
func ExampleRefine() {
	g, err := topology.New(topology.Descriptor{Faces: cubeFaces, NumVertices: 8})
	if err != nil {
		fmt.Println(err)
		return
	}
	h, err := refine.Refine(g, refine.Request{Scheme: refine.CatmullClark, Depth: 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	for d, l := range h.Levels() {
		fmt.Printf("level %d: %d vertices, %d faces\n", d, l.NumVertices(), l.NumFaces())
	}

	// Output:
	// level 0: 8 vertices, 6 faces
	// level 1: 26 vertices, 24 faces
	// level 2: 98 vertices, 96 faces
}
