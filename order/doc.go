// Package order implements the vertex ordering functions of spec.md §4.6:
// the permutation π used to relabel a graph before it is recoded into
// bitset.Graph form. A good ordering is what makes the colour package's
// bound tight early in the search.
//
// Four orderings are provided: Degree, MinWidth, ExDegree, and
// DynExDegree. A fifth, manual ordering is just a caller-supplied
// permutation and is not a function of this package — see
// solver.WithManualOrder.
package order
