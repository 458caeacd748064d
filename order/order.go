package order

import (
	"errors"
	"sort"

	"github.com/parasols/maxclique/bitset"
)

// ErrUnknownOrder is returned by Lookup for an unrecognised ordering name.
var ErrUnknownOrder = errors.New("order: unknown ordering")

// Func computes a permutation perm of [0, g.Size()) to be handed to
// bitset.Graph.Recode: perm[i] is the original vertex id placed at new
// index i.
type Func func(g *bitset.Graph) []int

// Names of the orderings selectable from the CLI (the <order> positional
// argument of spec.md §6) and their Lookup keys.
const (
	Degree      = "degree"
	MinWidth    = "min-width"
	ExDegree    = "ex-degree"
	DynExDegree = "dyn-ex-degree"
)

// Lookup resolves a CLI-facing ordering name to its Func. It returns
// ErrUnknownOrder, checkable with errors.Is, for anything else — including
// "manual", which is not a Func at all but a caller-supplied permutation
// handled directly by package solver.
func Lookup(name string) (Func, error) {
	switch name {
	case Degree:
		return DegreeOrder, nil
	case MinWidth:
		return MinWidthOrder, nil
	case ExDegree:
		return ExDegreeOrder, nil
	case DynExDegree:
		return DynExDegreeOrder, nil
	default:
		return nil, ErrUnknownOrder
	}
}

// DegreeOrder sorts vertices by descending degree, breaking ties by
// ascending original id so the ordering is deterministic and stable.
// High-degree vertices come first: they are the ones most likely to
// restrict the candidate set quickly once colouring begins.
func DegreeOrder(g *bitset.Graph) []int {
	n := g.Size()
	perm := identity(n)
	sort.SliceStable(perm, func(i, j int) bool {
		return g.Degree(perm[i]) > g.Degree(perm[j])
	})

	return perm
}

// ExDegreeOrder sorts by descending degree, breaking ties by descending
// "extended degree" — the sum of each neighbour's degree, computed once
// over the original (unordered) graph. Two vertices of equal degree but
// more heavily connected neighbourhoods are judged more constraining and
// placed earlier.
func ExDegreeOrder(g *bitset.Graph) []int {
	n := g.Size()
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = g.Degree(v)
	}
	exDegree := make([]int, n)
	for v := 0; v < n; v++ {
		sum := 0
		for _, u := range g.Row(v).Members() {
			sum += degree[u]
		}
		exDegree[v] = sum
	}

	perm := identity(n)
	sort.SliceStable(perm, func(i, j int) bool {
		a, b := perm[i], perm[j]
		if degree[a] != degree[b] {
			return degree[a] > degree[b]
		}
		return exDegree[a] > exDegree[b]
	})

	return perm
}

// MinWidthOrder computes the smallest-last (degeneracy) ordering:
// repeatedly remove, from the remaining induced subgraph, a vertex of
// minimum remaining degree. The removal sequence is then reversed, so
// perm[0] is the last vertex standing — the core of the graph — and
// perm[n-1] is the first vertex peeled off.
func MinWidthOrder(g *bitset.Graph) []int {
	n := g.Size()
	remaining := g.NewWorkingSet()
	remaining.SetAll()
	remainingDegree := make([]int, n)
	for v := 0; v < n; v++ {
		remainingDegree[v] = g.Degree(v)
	}

	peeled := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v := minDegreeMember(remaining, remainingDegree)
		peeled = append(peeled, v)
		remaining.Clear(v)
		for _, u := range g.Row(v).Members() {
			if remaining.Test(u) {
				remainingDegree[u]--
			}
		}
	}

	return reversed(peeled)
}

// DynExDegreeOrder is MinWidthOrder with ties broken dynamically: at each
// step the extended degree used for tie-breaking is the sum of remaining
// degrees of a candidate's still-remaining neighbours, recomputed against
// the current remaining set rather than the original graph.
func DynExDegreeOrder(g *bitset.Graph) []int {
	n := g.Size()
	remaining := g.NewWorkingSet()
	remaining.SetAll()
	remainingDegree := make([]int, n)
	for v := 0; v < n; v++ {
		remainingDegree[v] = g.Degree(v)
	}

	peeled := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v := minDegreeExMember(g, remaining, remainingDegree)
		peeled = append(peeled, v)
		remaining.Clear(v)
		for _, u := range g.Row(v).Members() {
			if remaining.Test(u) {
				remainingDegree[u]--
			}
		}
	}

	return reversed(peeled)
}

// minDegreeMember returns the member of remaining with the smallest
// remainingDegree, breaking ties by ascending vertex id.
func minDegreeMember(remaining bitset.Set, remainingDegree []int) int {
	best := -1
	for _, v := range remaining.Members() {
		if best == -1 || remainingDegree[v] < remainingDegree[best] {
			best = v
		}
	}

	return best
}

// minDegreeExMember is minDegreeMember with ties broken by ascending
// dynamic extended degree (sum of remaining neighbours' remaining
// degree), then ascending vertex id.
func minDegreeExMember(g *bitset.Graph, remaining bitset.Set, remainingDegree []int) int {
	members := remaining.Members()
	best := -1
	bestExDegree := 0
	for _, v := range members {
		exDegree := 0
		for _, u := range g.Row(v).Members() {
			if remaining.Test(u) {
				exDegree += remainingDegree[u]
			}
		}
		if best == -1 ||
			remainingDegree[v] < remainingDegree[best] ||
			(remainingDegree[v] == remainingDegree[best] && exDegree < bestExDegree) {
			best = v
			bestExDegree = exDegree
		}
	}

	return best
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return perm
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
