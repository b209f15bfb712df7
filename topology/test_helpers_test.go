// SPDX-License-Identifier: MIT
// Package topology_test contains fixtures shared by the topology tests.

package topology_test

// cubeFaces is the 6-quad cube with consistent outward winding.
var cubeFaces = [][]int{
	{0, 1, 3, 2},
	{2, 3, 5, 4},
	{4, 5, 7, 6},
	{6, 7, 1, 0},
	{1, 7, 5, 3},
	{6, 0, 2, 4},
}

var cubePositions = [][]float64{
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{-0.5, 0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
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
