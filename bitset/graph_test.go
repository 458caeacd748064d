package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parasols/maxclique/bitset"
)

func triangleGraph(t *testing.T) *bitset.Graph {
	t.Helper()
	g, err := bitset.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	return g
}

func TestAddEdgeSymmetric(t *testing.T) {
	g := triangleGraph(t)
	assert.True(t, g.Adjacent(0, 1))
	assert.True(t, g.Adjacent(1, 0))
	assert.Equal(t, 2, g.Degree(0))
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g, err := bitset.New(3)
	require.NoError(t, err)
	err = g.AddEdge(0, 0)
	assert.ErrorIs(t, err, bitset.ErrSelfLoop)
}

func TestAddEdgeRejectsOutOfRange(t *testing.T) {
	g, err := bitset.New(3)
	require.NoError(t, err)
	err = g.AddEdge(0, 5)
	assert.ErrorIs(t, err, bitset.ErrVertexRange)
}

func TestIntersectWithRow(t *testing.T) {
	g := triangleGraph(t)
	p := g.NewWorkingSet()
	p.SetAll()
	g.IntersectWithRow(0, &p)
	assert.ElementsMatch(t, []int{1, 2}, p.Members())
}

func TestIntersectWithRowComplement(t *testing.T) {
	g := triangleGraph(t)
	p := g.NewWorkingSet()
	p.SetAll()
	g.IntersectWithRowComplement(0, &p)
	assert.ElementsMatch(t, []int{0}, p.Members())
}

func TestRowIsReadOnlyView(t *testing.T) {
	g := triangleGraph(t)
	row := g.Row(0).Clone()
	row.Clear(1)
	// the graph itself must be unaffected since we mutated a clone
	assert.True(t, g.Adjacent(0, 1))
}

func TestFromEdgesStripsSelfLoops(t *testing.T) {
	g, err := bitset.FromEdges(3, [][2]int{{0, 0}, {0, 1}, {1, 2}})
	require.NoError(t, err)
	assert.False(t, g.Adjacent(0, 0))
	assert.True(t, g.Adjacent(0, 1))
	assert.True(t, g.Adjacent(1, 2))
}

func TestFromEdgesTooLarge(t *testing.T) {
	_, err := bitset.FromEdges(bitset.MaxWords*bitset.WordBits+1, nil)
	assert.ErrorIs(t, err, bitset.ErrGraphTooLarge)
}

func TestRecodePreservesAdjacencyUnderPermutation(t *testing.T) {
	g := triangleGraph(t)
	perm := []int{2, 0, 1} // new index i <- old vertex perm[i]
	recoded, err := g.Recode(perm)
	require.NoError(t, err)
	// Triangle is complete, so every recoding is still a triangle.
	assert.True(t, recoded.Adjacent(0, 1))
	assert.True(t, recoded.Adjacent(1, 2))
	assert.True(t, recoded.Adjacent(0, 2))
}

func TestRecodeRoundTrip(t *testing.T) {
	g, err := bitset.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	perm := []int{3, 1, 0, 2}
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	recoded, err := g.Recode(perm)
	require.NoError(t, err)
	roundTripped, err := recoded.Recode(inv)
	require.NoError(t, err)

	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			assert.Equal(t, g.Adjacent(u, v), roundTripped.Adjacent(u, v), "edge (%d,%d)", u, v)
		}
	}
}
