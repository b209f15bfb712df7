// SPDX-License-Identifier: MIT

package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

// TestRefine_UniformCubeCounts checks the vertex and face counts of two
// Catmull–Clark levels of the cube.
func TestRefine_UniformCubeCounts(t *testing.T) {
	h, err := refine.Refine(cube(t), refine.Request{Scheme: refine.CatmullClark, Depth: 2})
	require.NoError(t, err)
	require.Equal(t, 2, h.Depth())

	assert.Equal(t, 8, h.Level(0).NumVertices())
	assert.Equal(t, 26, h.Level(1).NumVertices())
	assert.Equal(t, 24, h.Level(1).NumFaces())
	assert.Equal(t, 98, h.Level(2).NumVertices())
	assert.Equal(t, 96, h.Level(2).NumFaces())
	assert.Equal(t, 8+26+98, h.TotalVertices())

	// Uniform levels of a closed mesh are closed and fully complete.
	l2 := h.Level(2)
	assert.Empty(t, l2.Graph().BoundaryVertices())
	for v := 0; v < l2.NumVertices(); v++ {
		assert.True(t, l2.Complete(v))
	}
}

// TestRefine_VertexOrdering verifies face points, edge points and vertex
// points are numbered in that order.
func TestRefine_VertexOrdering(t *testing.T) {
	g := cube(t)
	h, err := refine.Refine(g, refine.Request{Scheme: refine.CatmullClark, Depth: 1})
	require.NoError(t, err)
	l1 := h.Level(1)

	for v := 0; v < 6; v++ {
		assert.Equal(t, refine.Origin{Kind: refine.OriginFace, Parent: v}, l1.Origin(v))
		assert.Equal(t, refine.ClassFace, l1.Rule(v).Class)
	}
	for e := 0; e < 12; e++ {
		assert.Equal(t, refine.Origin{Kind: refine.OriginEdge, Parent: e}, l1.Origin(6+e))
		assert.Equal(t, refine.ClassSmooth, l1.Rule(6+e).Class)
	}
	for v := 0; v < 8; v++ {
		assert.Equal(t, refine.Origin{Kind: refine.OriginVertex, Parent: v}, l1.Origin(18+v))
	}

	// Slot 0 of face 0 starts at the vertex point of corner 0 and walks
	// toward corner 1.
	e01, ok := g.FindEdge(0, 1)
	require.True(t, ok)
	e20, ok := g.FindEdge(2, 0)
	require.True(t, ok)
	assert.Equal(t, []int{18, 6 + e01, 0, 6 + e20}, l1.Graph().FaceVertices(0))
	assert.Equal(t, 0, l1.FaceParent(0))
	assert.Equal(t, 0, l1.FaceSlot(0))
	assert.Equal(t, "0/0", l1.FaceKey(0))
	assert.Equal(t, []int{0, 1, 2, 3}, l1.ChildrenOf(0))
	assert.Equal(t, []int{20, 21, 22, 23}, h.Children(0, 5))
	assert.True(t, h.Refined(0, 5))
	assert.False(t, h.Refined(1, 0))
}

// TestRefine_LoopTetrahedron checks triangle splitting.
func TestRefine_LoopTetrahedron(t *testing.T) {
	g := mustGraph(t, topology.Descriptor{Faces: tetraFaces, NumVertices: 4})
	h, err := refine.Refine(g, refine.Request{Scheme: refine.Loop, Depth: 2})
	require.NoError(t, err)

	l1 := h.Level(1)
	assert.Equal(t, 10, l1.NumVertices())
	assert.Equal(t, 16, l1.NumFaces())
	assert.Equal(t, refine.OriginEdge, l1.Origin(0).Kind, "Loop has no face points")
	assert.Equal(t, refine.OriginVertex, l1.Origin(6).Kind)
	assert.Equal(t, 3, l1.FaceSlot(3))

	l2 := h.Level(2)
	assert.Equal(t, 10+24, l2.NumVertices())
	assert.Equal(t, 64, l2.NumFaces())
}

// TestRefine_Bilinear checks that bilinear splitting ignores sharpness.
func TestRefine_Bilinear(t *testing.T) {
	g := cube(t, topology.Crease{V0: 0, V1: 1, Sharpness: 3})
	h, err := refine.Refine(g, refine.Request{Scheme: refine.Bilinear, Depth: 1})
	require.NoError(t, err)
	l1 := h.Level(1)
	assert.Equal(t, 26, l1.NumVertices())
	for v := 0; v < l1.NumVertices(); v++ {
		r := l1.Rule(v)
		switch l1.Origin(v).Kind {
		case refine.OriginFace:
			assert.Equal(t, refine.ClassFace, r.Class)
		case refine.OriginEdge:
			assert.Equal(t, refine.ClassCrease, r.Class)
		case refine.OriginVertex:
			assert.Equal(t, refine.ClassCorner, r.Class)
		}
	}
	for e := 0; e < l1.Graph().NumEdges(); e++ {
		assert.Equal(t, topology.Smooth, l1.Graph().EdgeSharpness(e))
	}
}

// TestRefine_Errors covers request validation.
func TestRefine_Errors(t *testing.T) {
	quad := mustGraph(t, topology.Descriptor{Faces: [][]int{{0, 1, 2, 3}}, NumVertices: 4})
	cases := []struct {
		name string
		g    *topology.Graph
		req  refine.Request
		want error
	}{
		{"nil graph", nil, refine.Request{}, refine.ErrNilGraph},
		{"negative depth", quad, refine.Request{Depth: -1}, refine.ErrInvalidDepth},
		{"adaptive ceiling", quad, refine.Request{Mode: refine.Adaptive, Depth: refine.MaxAdaptiveDepth + 1}, refine.ErrRefinementLimitExceeded},
		{"loop on quads", quad, refine.Request{Scheme: refine.Loop, Depth: 1}, refine.ErrSchemeMismatch},
		{"unknown scheme", quad, refine.Request{Scheme: refine.Scheme(9)}, refine.ErrUnknownScheme},
		{"unknown mode", quad, refine.Request{Mode: refine.Mode(9)}, refine.ErrUnknownMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := refine.Refine(tc.g, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRefine_DepthZero returns only the control level.
func TestRefine_DepthZero(t *testing.T) {
	h, err := refine.Refine(cube(t), refine.Request{})
	require.NoError(t, err)
	assert.Equal(t, 0, h.Depth())
	assert.Equal(t, 1, h.NumLevels())
	assert.Nil(t, h.Children(0, 0))
}

// TestRefine_SharpnessDecay follows a crease of sharpness 2 down two levels.
func TestRefine_SharpnessDecay(t *testing.T) {
	g := cube(t, topology.Crease{V0: 0, V1: 1, Sharpness: 2})
	e01, ok := g.FindEdge(0, 1)
	require.True(t, ok)

	h, err := refine.Refine(g, refine.Request{Scheme: refine.CatmullClark, Depth: 2})
	require.NoError(t, err)

	l1 := h.Level(1)
	ep := 6 + e01
	assert.Equal(t, refine.Rule{Class: refine.ClassCrease, Next: refine.ClassCrease, Fraction: 1}, l1.Rule(ep))
	for _, vp := range []int{18, 19} {
		e, ok := l1.Graph().FindEdge(vp, ep)
		require.True(t, ok)
		assert.Equal(t, topology.Sharpness(1), l1.Graph().EdgeSharpness(e))
	}

	// Level 2 halves are smooth again.
	l2 := h.Level(2)
	for e := 0; e < l2.Graph().NumEdges(); e++ {
		assert.Equal(t, topology.Smooth, l2.Graph().EdgeSharpness(e))
	}
}

// TestRefine_FractionalCrease blends the crease and smooth edge masks.
func TestRefine_FractionalCrease(t *testing.T) {
	g := cube(t, topology.Crease{V0: 0, V1: 1, Sharpness: 0.25})
	e01, _ := g.FindEdge(0, 1)
	h, err := refine.Refine(g, refine.Request{Depth: 1})
	require.NoError(t, err)

	r := h.Level(1).Rule(6 + e01)
	assert.True(t, r.Blended())
	assert.Equal(t, refine.ClassCrease, r.Class)
	assert.Equal(t, refine.ClassSmooth, r.Next)
	assert.InDelta(t, 0.25, r.Fraction, 1e-12)

	// One sharp edge is a dart: the vertex stays smooth.
	assert.Equal(t, refine.ClassSmooth, h.Level(1).Rule(18).Class)
}

// TestRefine_VertexRules covers crease, corner and transition vertices.
func TestRefine_VertexRules(t *testing.T) {
	// Vertex 1 of the cube has neighbours 0, 3 and 7.
	g := cube(t,
		topology.Crease{V0: 0, V1: 1, Sharpness: 2},
		topology.Crease{V0: 1, V1: 3, Sharpness: 0.5},
	)
	h, err := refine.Refine(g, refine.Request{Depth: 1})
	require.NoError(t, err)

	r := h.Level(1).Rule(18 + 1)
	assert.Equal(t, refine.ClassCrease, r.Class)
	assert.ElementsMatch(t, []int{0, 3}, r.Crease[:])
	assert.Equal(t, refine.ClassSmooth, r.Next, "only one edge stays sharp after decay")
	assert.InDelta(t, 0.5, r.Fraction, 1e-12)

	// Three sharp edges make a corner.
	g = cube(t,
		topology.Crease{V0: 0, V1: 1, Sharpness: 4},
		topology.Crease{V0: 1, V1: 3, Sharpness: 4},
		topology.Crease{V0: 1, V1: 7, Sharpness: 4},
	)
	h, err = refine.Refine(g, refine.Request{Depth: 1})
	require.NoError(t, err)
	r = h.Level(1).Rule(18 + 1)
	assert.Equal(t, refine.ClassCorner, r.Class)
	assert.False(t, r.Blended())
}

// TestRefine_BoundaryRules checks the three boundary interpolation modes on
// a single quad.
func TestRefine_BoundaryRules(t *testing.T) {
	quad := [][]int{{0, 1, 2, 3}}

	none := mustGraph(t, topology.Descriptor{Faces: quad, NumVertices: 4, Boundary: topology.BoundaryNone})
	h, err := refine.Refine(none, refine.Request{Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, refine.ClassUndefined, h.Level(1).Rule(1).Class, "boundary edge point")
	assert.Equal(t, refine.ClassUndefined, h.Level(1).Rule(5).Class, "boundary vertex point")

	edgeOnly := mustGraph(t, topology.Descriptor{Faces: quad, NumVertices: 4, Boundary: topology.BoundaryEdgeOnly})
	h, err = refine.Refine(edgeOnly, refine.Request{Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, refine.ClassCrease, h.Level(1).Rule(1).Class)
	assert.Equal(t, refine.ClassCrease, h.Level(1).Rule(5).Class)
	assert.True(t, h.Level(1).Graph().IsBoundaryVertex(5))
	assert.False(t, h.Level(1).Graph().IsBoundaryVertex(0))

	corners := mustGraph(t, topology.Descriptor{Faces: quad, NumVertices: 4, Boundary: topology.BoundaryEdgeAndCorner})
	h, err = refine.Refine(corners, refine.Request{Depth: 2})
	require.NoError(t, err)
	assert.Equal(t, refine.ClassCorner, h.Level(1).Rule(5).Class)
	assert.True(t, h.Level(1).Graph().VertexSharpness(5).IsInfinite(), "pinned corners never decay")
}

// TestRefine_AdaptiveCube isolates the eight extraordinary vertices.
func TestRefine_AdaptiveCube(t *testing.T) {
	h, err := refine.Refine(cube(t), refine.Request{Mode: refine.Adaptive, Depth: 4})
	require.NoError(t, err)
	require.Equal(t, 4, h.Depth())

	// Every level-1 face still touches a cube corner, and at level 2 the
	// corner one-rings still cover each 4×4 cube side.
	assert.Equal(t, 24, h.Level(1).NumFaces())
	assert.Equal(t, 96, h.Level(2).NumFaces())
	assert.Equal(t, 384, h.Level(3).NumFaces())

	// At level 3 only the 2×2 corner blocks of each 8×8 side are refined.
	refined := 0
	for f := 0; f < h.Level(3).NumFaces(); f++ {
		if h.Refined(3, f) {
			refined++
		}
	}
	assert.Equal(t, 6*4*4, refined)
	assert.Equal(t, 4*refined, h.Level(4).NumFaces())

	// Refined faces only ever read complete vertices.
	for d := 0; d < h.Depth(); d++ {
		l := h.Level(d)
		for f := 0; f < l.NumFaces(); f++ {
			if !h.Refined(d, f) {
				continue
			}
			for _, v := range l.Graph().FaceVertices(f) {
				assert.True(t, l.Complete(v), "level %d face %d vertex %d", d, f, v)
			}
		}
	}

	// Level-2 faces away from the corners are terminal.
	terminal := 0
	for f := 0; f < h.Level(2).NumFaces(); f++ {
		if h.Level(2).Terminal(f) {
			terminal++
		}
	}
	assert.Equal(t, 96-24, terminal)
}

// TestRefine_AdaptiveRegularConverges stops at level 0 on a regular grid.
func TestRefine_AdaptiveRegularConverges(t *testing.T) {
	h, err := refine.Refine(grid(t, 3, topology.BoundaryEdgeAndCorner), refine.Request{Mode: refine.Adaptive, Depth: 4})
	require.NoError(t, err)
	assert.Equal(t, 0, h.Depth())
	for f := 0; f < 9; f++ {
		assert.True(t, h.Level(0).Terminal(f))
	}

	// With EdgeOnly the valence-2 corners are irregular.
	h, err = refine.Refine(grid(t, 3, topology.BoundaryEdgeOnly), refine.Request{Mode: refine.Adaptive, Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, h.Depth())
	assert.False(t, h.Level(0).Terminal(0))
	assert.True(t, h.Level(0).Terminal(4))
}

// TestRefine_AdaptiveEdits checks that a pending edit forces refinement down
// to its anchor and is resolved there.
func TestRefine_AdaptiveEdits(t *testing.T) {
	edits := []hedit.Edit{
		{Path: hedit.Path{Face: 4, Children: []int{0, 0}, Vertex: 2}, Op: hedit.Add, Value: []float64{0, 0, 1}},
	}
	h, err := refine.Refine(grid(t, 3, topology.BoundaryEdgeAndCorner),
		refine.Request{Mode: refine.Adaptive, Depth: 4}, refine.WithEdits(edits))
	require.NoError(t, err)
	require.Equal(t, 2, h.Depth())
	assert.Empty(t, h.Diagnostics())
	assert.Equal(t, 3, h.EditArity())

	l2 := h.Level(2)
	f, ok := l2.FaceByKey("4/0/0")
	require.True(t, ok)
	v := l2.Graph().FaceVertices(f)[2]
	assert.Equal(t, []int{v}, l2.EditedVertices())
	require.Len(t, l2.Edits(v), 1)
	assert.Equal(t, hedit.Add, l2.Edits(v)[0].Op)
	assert.Equal(t, 4, l2.FaceRoot(f))
}

// TestRefine_EditDiagnostics logs every edit that cannot be compiled.
func TestRefine_EditDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	edits := []hedit.Edit{
		{Path: hedit.Path{Face: 0, Vertex: 1}, Op: hedit.Set, Value: []float64{1, 1, 1}},
		{Path: hedit.Path{Face: 0, Children: []int{0, 1, 2}, Vertex: 0}, Op: hedit.Add, Value: []float64{1, 1, 1}},
		{Path: hedit.Path{Face: 0, Children: []int{7}, Vertex: 0}, Op: hedit.Add, Value: []float64{1, 1, 1}},
		{Path: hedit.Path{Face: 0, Children: []int{1}, Vertex: 9}, Op: hedit.Add, Value: []float64{1, 1, 1}},
		{Path: hedit.Path{Face: 0, Children: []int{1}, Vertex: 3}, Op: hedit.Add, Value: []float64{1, 1, 1}},
	}
	h, err := refine.Refine(cube(t), refine.Request{Depth: 1},
		refine.WithEdits(edits), refine.WithLogger(zap.New(core)))
	require.NoError(t, err)

	diags := h.Diagnostics()
	require.Len(t, diags, 4)
	for i, d := range diags {
		assert.Equal(t, i, d.Index)
	}
	assert.Equal(t, 4, logs.FilterMessage("hierarchical edit skipped").Len())
	assert.Len(t, h.Level(1).EditedVertices(), 1)
}

// TestRefine_EditArity rejects payloads that do not match the control data.
func TestRefine_EditArity(t *testing.T) {
	g := mustGraph(t, topology.Descriptor{
		Faces:     [][]int{{0, 1, 2, 3}},
		Positions: [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Boundary:  topology.BoundaryEdgeOnly,
	})
	_, err := refine.Refine(g, refine.Request{Depth: 1}, refine.WithEdits([]hedit.Edit{
		{Path: hedit.Path{Face: 0, Children: []int{0}}, Op: hedit.Set, Value: []float64{1, 2, 3}},
	}))
	assert.ErrorIs(t, err, hedit.ErrPayloadArity)
}

// TestWithLogger_PanicsOnNil guards the option contract.
func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { refine.WithLogger(nil) })
}

// TestParse covers the enum parsers.
func TestParse(t *testing.T) {
	s, err := refine.ParseScheme("Catmull-Clark")
	require.NoError(t, err)
	assert.Equal(t, refine.CatmullClark, s)
	s, err = refine.ParseScheme("loop")
	require.NoError(t, err)
	assert.Equal(t, refine.Loop, s)
	_, err = refine.ParseScheme("sqrt3")
	assert.ErrorIs(t, err, refine.ErrUnknownScheme)

	m, err := refine.ParseMode("adaptive")
	require.NoError(t, err)
	assert.Equal(t, refine.Adaptive, m)
	_, err = refine.ParseMode("lazy")
	assert.ErrorIs(t, err, refine.ErrUnknownMode)
}
