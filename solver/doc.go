// Package solver is the top-level orchestration of spec.md §2's data
// flow: a graph is relabelled under a vertex ordering, recoded into
// bitset.Graph form, its root candidate set coloured once to fan out
// into per-branch subproblems, handed to the scheduler's strategy 4.5.1
// run, and the per-worker results merged into one result.Result.
//
// Solve is deliberately thin: every piece of real work belongs to
// bitset, colour, incumbent, search, scheduler, or order; this package
// only wires them together the way a caller — cmd/maxclique or a test —
// would otherwise have to by hand.
package solver
