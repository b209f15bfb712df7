// SPDX-License-Identifier: MIT
// Package refine_test contains fixtures shared by the refinement tests.

package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdiv/topology"
)

var cubeFaces = [][]int{
	{0, 1, 3, 2},
	{2, 3, 5, 4},
	{4, 5, 7, 6},
	{6, 7, 1, 0},
	{1, 7, 5, 3},
	{6, 0, 2, 4},
}

var tetraFaces = [][]int{
	{0, 2, 1},
	{0, 1, 3},
	{1, 2, 3},
	{2, 0, 3},
}

// gridFaces returns an n×n quad grid over (n+1)² vertices, row-major.
func gridFaces(n int) [][]int {
	faces := make([][]int, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := r*(n+1) + c
			faces = append(faces, []int{v, v + 1, v + n + 2, v + n + 1})
		}
	}
	return faces
}

func mustGraph(t testing.TB, d topology.Descriptor) *topology.Graph {
	t.Helper()
	g, err := topology.New(d)
	require.NoError(t, err)
	return g
}

func cube(t testing.TB, creases ...topology.Crease) *topology.Graph {
	return mustGraph(t, topology.Descriptor{Faces: cubeFaces, NumVertices: 8, Creases: creases})
}

func grid(t testing.TB, n int, mode topology.BoundaryMode) *topology.Graph {
	return mustGraph(t, topology.Descriptor{Faces: gridFaces(n), NumVertices: (n + 1) * (n + 1), Boundary: mode})
}
