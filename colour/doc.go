// Package colour implements the greedy sequential colouring used to bound
// the branch-and-bound search in package search.
//
// Colour(P) produces a pair of parallel arrays (Order, Bound) such that:
//
//  1. Order holds every vertex of P exactly once.
//  2. Bound is non-decreasing.
//  3. For every prefix length k, {Order[0:k]} can be partitioned into
//     Bound[k-1] colours (independent sets of the complement graph).
//  4. The sequence is meant to be consumed right to left: the rightmost
//     vertex carries the highest bound and is branched on first.
//
// Six variants are provided, matching spec.md §4.2 exactly: None (the
// base greedy sweep), Defer1 (singleton colour classes relocated to the
// tail), RepairAll and RepairSelected (one-step repair before opening a
// new colour class), and their …+Defer1 combinations. The variants are
// pure functions of (Graph, P). The returned Order/Bound arrays live in
// scratch buffers owned by a Colourer, which are sized once per
// Colourer and reused across calls — the Go analogue of the
// thread-local static buffers the spec's source uses for the same
// purpose (see SPEC_FULL.md's Design Notes). Each call still allocates
// its working colour classes and copies of the candidate set.
package colour
