// Package bitset provides fixed-capacity bitsets and a dense bitset-backed
// adjacency matrix (BitGraph) for undirected simple graphs.
//
// A Set is a fixed-size collection of vertex ids backed by W machine words
// of 64 bits each; W is chosen once, at construction, from the ladder
// returned by WordsFor so that it is just large enough to hold the working
// graph. Every upper layer (colour, search, scheduler) is generic over the
// concrete Set/Graph pair returned by New for a given n.
//
// Indices are 0-based. Bit order within a word is fixed so that the lowest
// set bit of word 0 is vertex 0 — this is what makes FirstSet return the
// numerically smallest member of a Set.
//
// Graph is a plain adjacency matrix: row v is a Set holding v's neighbours.
// It is symmetric for undirected graphs and forbids self-loops; callers
// strip loops before calling AddEdge.
package bitset
