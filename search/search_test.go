package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parasols/maxclique/bitset"
	"github.com/parasols/maxclique/colour"
	"github.com/parasols/maxclique/incumbent"
	"github.com/parasols/maxclique/result"
	"github.com/parasols/maxclique/search"
)

// solve runs a single-threaded, whole-graph search.Expand to exhaustion
// and returns the final incumbent size and its member clique.
func solve(t *testing.T, g *bitset.Graph, initialBound int) (int, []int) {
	t.Helper()

	inc := incumbent.New(initialBound)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local)

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)

	k.Expand(make([]int, 0, g.Size()), p, col, []int{0}, nil)

	return inc.Get(), local.Members
}

func graphFromEdges(t *testing.T, n int, edges [][2]int) *bitset.Graph {
	t.Helper()
	g, err := bitset.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func assertIsClique(t *testing.T, g *bitset.Graph, members []int) {
	t.Helper()
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			assert.True(t, g.Adjacent(members[i], members[j]), "expected %d,%d adjacent", members[i], members[j])
		}
	}
}

func TestExpandTriangle(t *testing.T) {
	g := graphFromEdges(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	size, members := solve(t, g, 0)
	assert.Equal(t, 3, size)
	assert.Len(t, members, 3)
	assertIsClique(t, g, members)
}

func TestExpandPathP4(t *testing.T) {
	// 0-1-2-3: a simple path, omega = 2.
	g := graphFromEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	size, members := solve(t, g, 0)
	assert.Equal(t, 2, size)
	assertIsClique(t, g, members)
}

func TestExpandC5(t *testing.T) {
	// 5-cycle: omega = 2 (no triangle in a pentagon).
	g := graphFromEdges(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	size, members := solve(t, g, 0)
	assert.Equal(t, 2, size)
	assertIsClique(t, g, members)
}

func TestExpandC5WithInitialBoundAtOptimum(t *testing.T) {
	// Seeding the incumbent exactly at omega must still report omega and
	// must not fabricate a larger clique.
	g := graphFromEdges(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	size, _ := solve(t, g, 2)
	assert.Equal(t, 2, size)
}

func TestExpandK4PlusPendant(t *testing.T) {
	// K4 on {0,1,2,3} plus a pendant vertex 4 attached only to 0.
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		{0, 4},
	}
	g := graphFromEdges(t, 5, edges)
	size, members := solve(t, g, 0)
	assert.Equal(t, 4, size)
	assertIsClique(t, g, members)
	for _, v := range members {
		assert.NotEqual(t, 4, v, "the pendant cannot belong to the maximum clique")
	}
}

func TestExpandTwoDisjointTriangles(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	}
	g := graphFromEdges(t, 6, edges)
	size, members := solve(t, g, 0)
	assert.Equal(t, 3, size)
	assertIsClique(t, g, members)
}

func TestExpandEmptyGraph(t *testing.T) {
	g, err := bitset.New(0)
	require.NoError(t, err)
	size, members := solve(t, g, 0)
	assert.Equal(t, 0, size)
	assert.Empty(t, members)
}

func TestExpandStopAfterFindingReportsFirstMaximalClique(t *testing.T) {
	// K4: only maximal cliques are recorded, and the first one reached is
	// the whole graph. Its size 4 meets the stop-after-finding target of 3.
	g, err := bitset.New(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	inc := incumbent.New(0)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local, search.WithStopAfterFinding(3))

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	k.Expand(make([]int, 0, g.Size()), p, col, []int{0}, nil)

	assert.Equal(t, 4, inc.Get())
}

func TestExpandWithOrderDepermutesMembers(t *testing.T) {
	// Relabel a triangle under order = [2,0,1]: working id i corresponds
	// to original vertex order[i].
	g := graphFromEdges(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	orderPerm := []int{2, 0, 1}

	inc := incumbent.New(0)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local, search.WithOrder(orderPerm))

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	k.Expand(make([]int, 0, g.Size()), p, col, []int{0}, nil)

	assert.Equal(t, 3, inc.Get())
	got := append([]int(nil), local.Members...)
	assert.ElementsMatch(t, []int{0, 1, 2}, got)
}

func TestExpandCountEnumeratesAllMaximumCliques(t *testing.T) {
	// Two disjoint edges {0-1} and {2-3}: omega = 2, and there are
	// exactly two distinct maximum cliques.
	g := graphFromEdges(t, 4, [][2]int{{0, 1}, {2, 3}})

	inc := incumbent.New(0)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local)

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	var count uint64
	k.ExpandCount(make([]int, 0, g.Size()), p, col, &count)

	assert.Equal(t, 2, inc.Get())
	assert.Equal(t, uint64(2), count)
}

func TestExpandCountSingleMaximumClique(t *testing.T) {
	g := graphFromEdges(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	inc := incumbent.New(0)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local)

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	var count uint64
	k.ExpandCount(make([]int, 0, g.Size()), p, col, &count)

	assert.Equal(t, 3, inc.Get())
	assert.Equal(t, uint64(1), count)
}

func TestExpandRecordsNodeCount(t *testing.T) {
	g := graphFromEdges(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	inc := incumbent.New(0)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local)

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	k.Expand(make([]int, 0, g.Size()), p, col, nil, nil)

	assert.Greater(t, local.Nodes, uint64(0))
}

func TestFanOutRootLevelMatchesOneOffsetPerVertex(t *testing.T) {
	g, err := bitset.New(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	inc := incumbent.New(0)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local)

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	offsets := k.FanOut(p, col, 0)

	require.Len(t, offsets, 4)
	for _, o := range offsets {
		assert.Len(t, o, 1)
	}
}

func TestFanOutOffsetsReplayToTheirOwnBranch(t *testing.T) {
	// K4: each offset FanOut(maxDepth=1) produces resumes, via Expand's
	// subproblem parameter, into its own branch. Skipped vertices leave P,
	// so a branch's best clique is four minus the branches skipped before
	// it: [0 0]→4, [0 1]→3, [0 2]→2, [1 0]→3, [1 1]→2, [2 0]→2.
	g, err := bitset.New(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	producerInc := incumbent.New(0)
	colourer := colour.NewColourer(colour.None, g.Size())
	producer := search.New(g, colourer, producerInc, result.NewLocal())

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	offsets := producer.FanOut(p, col, 1)
	require.NotEmpty(t, offsets)

	var sizes []int
	for _, off := range offsets {
		inc := incumbent.New(0)
		local := result.NewLocal()
		workerColourer := colour.NewColourer(colour.None, g.Size())
		k := search.New(g, workerColourer, inc, local)

		pp := g.NewWorkingSet()
		pp.SetAll()
		workerCol := workerColourer.Colour(g, pp)
		k.Expand(make([]int, 0, g.Size()), pp, workerCol, []int{0}, off)

		sizes = append(sizes, inc.Get())
	}
	assert.Equal(t, []int{4, 3, 2, 3, 2, 2}, sizes, "offsets %v", offsets)
}

func TestExpandSubproblemRestrictsToOneBranch(t *testing.T) {
	// K4: with a subproblem pinning depth 0 to skip branch index 3 (the
	// highest-bound vertex under None colouring order) and take exactly
	// the next one, the call must not explore every branch at depth 0.
	// The skipped vertex leaves P, so the taken branch sees only K3.
	g, err := bitset.New(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	inc := incumbent.New(0)
	local := result.NewLocal()
	colourer := colour.NewColourer(colour.None, g.Size())
	k := search.New(g, colourer, inc, local)

	p := g.NewWorkingSet()
	p.SetAll()
	col := colourer.Colour(g, p)
	// Skip 1 branch at depth 0, then take exactly the next one and stop.
	k.Expand(make([]int, 0, g.Size()), p, col, []int{0}, []int{1})

	// The one branch taken finds the remaining triangle, not all of K4.
	assert.Equal(t, 3, inc.Get())
}
