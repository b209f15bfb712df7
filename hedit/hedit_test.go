// SPDX-License-Identifier: MIT

package hedit_test

import (
	"testing"

	"github.com/katalvlaran/subdiv/hedit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLevel resolves keys from a fixed table; every face is a quad whose
// corners are face*4+local.
type fakeLevel map[string]int

func (l fakeLevel) FaceByKey(key string) (int, bool) {
	f, ok := l[key]
	return f, ok
}

func (l fakeLevel) FaceVertex(face, local int) (int, bool) {
	if local < 0 || local >= 4 {
		return 0, false
	}
	return face*4 + local, true
}

// TestParsePath covers depth-0, deep and malformed paths.
func TestParsePath(t *testing.T) {
	p, err := hedit.ParsePath("3/1")
	require.NoError(t, err)
	assert.Equal(t, hedit.Path{Face: 3, Vertex: 1}, p)
	assert.Equal(t, 0, p.Depth())

	p, err = hedit.ParsePath(" 0/2/3/1 ")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Face)
	assert.Equal(t, []int{2, 3}, p.Children)
	assert.Equal(t, 1, p.Vertex)
	assert.Equal(t, 2, p.Depth())
	assert.Equal(t, "0/2/3", p.FaceKey())
	assert.Equal(t, "0/2/3/1", p.String())

	for _, bad := range []string{"", "7", "a/1", "0/-1/2"} {
		_, err := hedit.ParsePath(bad)
		assert.ErrorIs(t, err, hedit.ErrBadPath, bad)
	}
}

// TestKeys checks that Key and ChildKey agree.
func TestKeys(t *testing.T) {
	assert.Equal(t, "4", hedit.Key(4, nil))
	assert.Equal(t, "4/0/3", hedit.Key(4, []int{0, 3}))
	assert.Equal(t, hedit.Key(4, []int{0, 3}), hedit.ChildKey(hedit.ChildKey("4", 0), 3))
}

// TestParseOp covers names and the error sentinel.
func TestParseOp(t *testing.T) {
	for s, want := range map[string]hedit.Op{"set": hedit.Set, "ADD": hedit.Add, "sub": hedit.Subtract, "subtract": hedit.Subtract} {
		got, err := hedit.ParseOp(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := hedit.ParseOp("scale")
	assert.ErrorIs(t, err, hedit.ErrInvalidOp)
	assert.Equal(t, "subtract", hedit.Subtract.String())
}

// TestCompose checks submission-order semantics of Set/Add/Subtract.
func TestCompose(t *testing.T) {
	assert.True(t, hedit.Compose(nil).Empty())

	r := hedit.Compose([]hedit.Edit{
		{Op: hedit.Add, Value: []float64{1, 2}},
		{Op: hedit.Subtract, Value: []float64{0.5, 0.5}},
	})
	assert.False(t, r.Override)
	assert.Equal(t, []float64{0.5, 1.5}, r.Value)

	// A Set discards everything before it; later offsets apply on top.
	r = hedit.Compose([]hedit.Edit{
		{Op: hedit.Add, Value: []float64{10, 10}},
		{Op: hedit.Set, Value: []float64{1, 1}},
		{Op: hedit.Add, Value: []float64{0, 2}},
	})
	assert.True(t, r.Override)
	assert.Equal(t, []float64{1, 3}, r.Value)

	// Last Set wins.
	r = hedit.Compose([]hedit.Edit{
		{Op: hedit.Set, Value: []float64{1, 1}},
		{Op: hedit.Set, Value: []float64{4, 5}},
	})
	assert.Equal(t, []float64{4, 5}, r.Value)
}

// TestNewApplicator_Validation covers the error table.
func TestNewApplicator_Validation(t *testing.T) {
	_, err := hedit.NewApplicator([]hedit.Edit{{Op: hedit.Op(9), Value: []float64{1}}})
	assert.ErrorIs(t, err, hedit.ErrInvalidOp)

	_, err = hedit.NewApplicator([]hedit.Edit{{Path: hedit.Path{Face: -1}, Value: []float64{1}}})
	assert.ErrorIs(t, err, hedit.ErrBadPath)

	_, err = hedit.NewApplicator([]hedit.Edit{{Value: nil}})
	assert.ErrorIs(t, err, hedit.ErrPayloadArity)

	_, err = hedit.NewApplicator([]hedit.Edit{
		{Value: []float64{1, 2, 3}},
		{Value: []float64{1, 2}},
	})
	assert.ErrorIs(t, err, hedit.ErrPayloadArity)

	a, err := hedit.NewApplicator(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.MaxDepth())
}

// TestApplicator_PendingAndResolve resolves edits against a fake level and
// checks pending prefixes plus skip diagnostics.
func TestApplicator_PendingAndResolve(t *testing.T) {
	edits := []hedit.Edit{
		{Path: hedit.Path{Face: 0, Children: []int{2}, Vertex: 1}, Op: hedit.Add, Value: []float64{1}},
		{Path: hedit.Path{Face: 0, Children: []int{2}, Vertex: 1}, Op: hedit.Set, Value: []float64{5}},
		{Path: hedit.Path{Face: 1, Children: []int{0}, Vertex: 9}, Op: hedit.Add, Value: []float64{1}},
		{Path: hedit.Path{Face: 2, Children: []int{3}, Vertex: 0}, Op: hedit.Add, Value: []float64{1}},
		{Path: hedit.Path{Face: 0, Children: []int{1, 1, 1}, Vertex: 0}, Op: hedit.Add, Value: []float64{1}},
		{Path: hedit.Path{Face: 0, Vertex: 0}, Op: hedit.Set, Value: []float64{1}},
	}
	a, err := hedit.NewApplicator(edits)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3}, a.Depths())
	assert.Equal(t, 3, a.MaxDepth())
	assert.True(t, a.Pending("0"))
	assert.True(t, a.Pending("0/1"))
	assert.True(t, a.Pending("0/1/1"))
	assert.False(t, a.Pending("0/1/1/1"), "the anchor face itself is not pending")
	assert.False(t, a.Pending("3"))

	level := fakeLevel{"0/2": 5, "1/0": 6}
	res, diags := a.Resolve(1, level)
	require.Len(t, res, 2)
	assert.Equal(t, 21, res[0].Vertex)
	assert.Equal(t, 0, res[0].Index)
	assert.Equal(t, 1, res[1].Index)

	require.Len(t, diags, 2)
	assert.Equal(t, 2, diags[0].Index)
	assert.Contains(t, diags[0].String(), "vertex index")
	assert.Equal(t, 3, diags[1].Index)

	grouped := hedit.Group(res)
	require.Len(t, grouped[21], 2)
	assert.Equal(t, []float64{5}, hedit.Compose(grouped[21]).Value)

	res, diags = a.Resolve(0, level)
	assert.Empty(t, res)
	assert.Empty(t, diags)

	unreached := a.Unreached(2)
	require.Len(t, unreached, 2)
	assert.Equal(t, 4, unreached[0].Index)
	assert.Equal(t, 5, unreached[1].Index)
}

// TestNewApplicator_CopiesInput ensures later caller mutation is ignored.
func TestNewApplicator_CopiesInput(t *testing.T) {
	v := []float64{1, 2}
	slots := []int{0}
	a, err := hedit.NewApplicator([]hedit.Edit{{Path: hedit.Path{Children: slots}, Op: hedit.Add, Value: v}})
	require.NoError(t, err)
	v[0] = 100
	slots[0] = 3
	assert.Equal(t, []float64{1, 2}, a.Edit(0).Value)
	assert.Equal(t, []int{0}, a.Edit(0).Path.Children)
}
