package bitset

import "errors"

// ErrSelfLoop is returned by AddEdge when u == v; the clique kernel
// forbids self-loops and callers are expected to have stripped them
// during ingestion.
var ErrSelfLoop = errors.New("bitset: self-loops are not permitted")

// ErrVertexRange is returned when a vertex id is outside [0, n).
var ErrVertexRange = errors.New("bitset: vertex id out of range")

// Graph is a dense, symmetric adjacency matrix over up to Words()*WordBits
// vertices, stored as one Set per row. It never reallocates after New: the
// word count is fixed by n at construction.
type Graph struct {
	n     int
	words int
	rows  []Set
}

// New constructs an empty Graph over n vertices, picking the smallest word
// count from the ladder that covers n. It returns ErrGraphTooLarge if n
// exceeds MaxWords*WordBits.
func New(n int) (*Graph, error) {
	w, err := WordsFor(n)
	if err != nil {
		return nil, err
	}

	rows := make([]Set, n)
	for i := range rows {
		rows[i] = NewSet(w, n)
	}

	return &Graph{n: n, words: w, rows: rows}, nil
}

// Size returns the number of vertices.
func (g *Graph) Size() int { return g.n }

// Words returns the storage word count shared by every row and by every
// working Set a caller builds to interact with this graph.
func (g *Graph) Words() int { return g.words }

// NewWorkingSet allocates a Set sized to match this graph's word count and
// capacity, suitable as a candidate clique or candidate-extension set.
func (g *Graph) NewWorkingSet() Set {
	return NewSet(g.words, g.n)
}

// AddEdge symmetrically sets the bit for (u,v) and (v,u). Both endpoints
// must be within [0, n) and distinct.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexRange
	}
	g.rows[u].Set(v)
	g.rows[v].Set(u)

	return nil
}

// Adjacent reports whether u and v are adjacent. O(1).
func (g *Graph) Adjacent(u, v int) bool {
	return g.rows[u].Test(v)
}

// Degree returns the popcount of row u.
func (g *Graph) Degree(u int) int {
	return g.rows[u].PopCount()
}

// Row returns a read-only view of vertex v's adjacency row. The returned
// Set shares backing storage with the graph: callers must Clone() it
// before passing it to any mutating Set method.
func (g *Graph) Row(v int) Set {
	return g.rows[v]
}

// IntersectWithRow mutates p to p ∩ N(row). O(Words()).
func (g *Graph) IntersectWithRow(row int, p *Set) {
	p.IntersectWith(g.rows[row])
}

// IntersectWithRowComplement mutates p to p \ N(row). O(Words()).
func (g *Graph) IntersectWithRowComplement(row int, p *Set) {
	p.IntersectWithComplement(g.rows[row])
}

// FromEdges builds a Graph over n vertices from a slice of (u,v) pairs,
// skipping any pair where u == v (ingestion strips self-loops per the
// spec's BitGraph contract instead of failing the whole parse). Duplicate
// edges and edges given in either direction are both safe: AddEdge is
// idempotent for a given unordered pair.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Recode returns a new Graph over the same vertex count, relabelled under
// the permutation perm: new index i holds old vertex perm[i]. perm must be
// a permutation of [0, n).
func (g *Graph) Recode(perm []int) (*Graph, error) {
	out, err := New(g.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.Adjacent(perm[i], perm[j]) {
				if err := out.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
