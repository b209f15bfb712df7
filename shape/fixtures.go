// SPDX-License-Identifier: MIT
// Package: subdiv/shape
//
// fixtures.go — canonical control meshes and the name registry.
//
// Determinism:
//   • Every constructor builds fresh slices; callers may mutate the result.
//   • Face winding is counter-clockwise seen from outside (or from +Z for
//     planar patches), so every closed fixture is consistently oriented.

package shape

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

// MinGridSize is the smallest accepted Grid dimension.
const MinGridSize = 1

// registry maps fixture names to their constructors.
var registry = map[string]func() Shape{
	"cube":        Cube,
	"pyramid":     Pyramid,
	"tent":        Tent,
	"square":      Square,
	"quad":        Quad,
	"triangle":    Triangle,
	"tetrahedron": Tetrahedron,
	"icosahedron": Icosahedron,
}

// Names lists the registered fixture names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Named returns the fixture registered under name.
func Named(name string) (Shape, error) {
	fn, ok := registry[name]
	if !ok {
		return Shape{}, fmt.Errorf("Named(%q): %w", name, ErrUnknownShape)
	}
	return fn(), nil
}

// Cube is the unit cube centred at the origin: 8 vertices, 6 quads.
func Cube() Shape {
	return Shape{
		Name:   "cube",
		Scheme: refine.CatmullClark,
		Descriptor: topology.Descriptor{
			Faces: [][]int{
				{0, 1, 3, 2},
				{2, 3, 5, 4},
				{4, 5, 7, 6},
				{6, 7, 1, 0},
				{1, 7, 5, 3},
				{6, 0, 2, 4},
			},
			Positions: [][]float64{
				{-0.5, -0.5, 0.5},
				{0.5, -0.5, 0.5},
				{-0.5, 0.5, 0.5},
				{0.5, 0.5, 0.5},
				{-0.5, 0.5, -0.5},
				{0.5, 0.5, -0.5},
				{-0.5, -0.5, -0.5},
				{0.5, -0.5, -0.5},
			},
		},
	}
}

// Pyramid is a square base with four triangular sides meeting at an apex.
// It mixes quads and triangles, so Catmull–Clark sees extraordinary
// vertices at every corner.
func Pyramid() Shape {
	return Shape{
		Name:   "pyramid",
		Scheme: refine.CatmullClark,
		Descriptor: topology.Descriptor{
			Faces: [][]int{
				{0, 3, 2, 1},
				{0, 1, 4},
				{1, 2, 4},
				{2, 3, 4},
				{3, 0, 4},
			},
			Positions: [][]float64{
				{-0.5, -0.5, 0},
				{0.5, -0.5, 0},
				{0.5, 0.5, 0},
				{-0.5, 0.5, 0},
				{0, 0, 1},
			},
		},
	}
}

// Tent is a 2×2 open quad patch whose centre vertex (4) is raised.
// Its boundary is interpolated as a crease.
func Tent() Shape {
	s := planar("tent", 2)
	s.Descriptor.Positions[4][2] = 1
	return s
}

// Square is a flat 3×3 open quad patch with an interpolated boundary.
func Square() Shape {
	return planar("square", 3)
}

// Grid returns an n×n open quad patch spanning [0,1]² in the XY plane.
// Vertices are numbered row-major over (n+1)² points.
func Grid(n int) (Shape, error) {
	if n < MinGridSize {
		return Shape{}, fmt.Errorf("Grid(%d): need n >= %d: %w", n, MinGridSize, ErrBadSize)
	}
	return planar(fmt.Sprintf("grid%d", n), n), nil
}

// Quad is a single quad with corners pinned.
func Quad() Shape {
	return Shape{
		Name:   "quad",
		Scheme: refine.CatmullClark,
		Descriptor: topology.Descriptor{
			Faces:     [][]int{{0, 1, 2, 3}},
			Positions: [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
			Boundary:  topology.BoundaryEdgeAndCorner,
		},
	}
}

// Triangle is a single Loop triangle with corners pinned.
func Triangle() Shape {
	return Shape{
		Name:   "triangle",
		Scheme: refine.Loop,
		Descriptor: topology.Descriptor{
			Faces:     [][]int{{0, 1, 2}},
			Positions: [][]float64{{0, 0, 0}, {1, 0, 0}, {0.5, math.Sqrt(3) / 2, 0}},
			Boundary:  topology.BoundaryEdgeAndCorner,
		},
	}
}

// Tetrahedron is the regular tetrahedron inscribed in the cube [-1,1]³.
func Tetrahedron() Shape {
	return Shape{
		Name:   "tetrahedron",
		Scheme: refine.Loop,
		Descriptor: topology.Descriptor{
			Faces: [][]int{
				{0, 2, 1},
				{0, 1, 3},
				{1, 2, 3},
				{2, 0, 3},
			},
			Positions: [][]float64{
				{1, 1, 1},
				{-1, -1, 1},
				{-1, 1, -1},
				{1, -1, -1},
			},
		},
	}
}

// Icosahedron is the regular icosahedron with vertices at the cyclic
// permutations of (0, ±1, ±φ): 12 vertices of valence 5, 20 triangles.
func Icosahedron() Shape {
	phi := (1 + math.Sqrt(5)) / 2
	return Shape{
		Name:   "icosahedron",
		Scheme: refine.Loop,
		Descriptor: topology.Descriptor{
			Faces: [][]int{
				{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
				{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
				{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
				{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
			},
			Positions: [][]float64{
				{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
				{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
				{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
			},
		},
	}
}

// planar builds an n×n quad patch over [0,1]² with an EdgeOnly boundary.
func planar(name string, n int) Shape {
	faces := make([][]int, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := r*(n+1) + c
			faces = append(faces, []int{v, v + 1, v + n + 2, v + n + 1})
		}
	}
	pos := make([][]float64, 0, (n+1)*(n+1))
	step := 1 / float64(n)
	for r := 0; r <= n; r++ {
		for c := 0; c <= n; c++ {
			pos = append(pos, []float64{float64(c) * step, float64(r) * step, 0})
		}
	}
	return Shape{
		Name:   name,
		Scheme: refine.CatmullClark,
		Descriptor: topology.Descriptor{
			Faces:     faces,
			Positions: pos,
			Boundary:  topology.BoundaryEdgeOnly,
		},
	}
}
