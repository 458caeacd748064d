// Package maxclique is a parallel branch-and-bound maximum clique solver.
//
// The module is organised the way the problem decomposes rather than
// around one importable root type:
//
//	bitset/    — fixed-capacity bitset and bit-adjacency-matrix graph
//	colour/    — greedy sequential colouring, the search kernel's upper bound
//	incumbent/ — shared best-clique-size tracker
//	search/    — the branch-and-bound kernel (Expand / ExpandCount)
//	scheduler/ — producer/donation-queue work distribution across workers
//	order/     — vertex orderings used to recode a graph before search
//	result/    — per-worker accumulation and merge into one Result
//	solver/    — Solve/Verify, the entry point tying the above together
//	dimacs/    — DIMACS and pairs graph input formats
//	cmd/maxclique/ — the CLI front end
//
// Library callers depend on package solver; cmd/maxclique is the reference
// consumer.
package maxclique
