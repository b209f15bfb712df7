// SPDX-License-Identifier: MIT

package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/subdiv/mesh"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/shape"
)

// ExampleNew splits one quad bilinearly and reads the new face point.
func ExampleNew() {
	quad := shape.Quad()
	m, err := mesh.New(quad.Descriptor, refine.Request{Scheme: refine.Bilinear, Depth: 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := m.RefineSync(); err != nil {
		fmt.Println(err)
		return
	}
	level1, _ := m.LevelData(1)
	fmt.Println(m.NumVertices(), level1[:3])

	// Output:
	// 13 [0.5 0.5 0]
}
