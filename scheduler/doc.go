// Package scheduler carves the root search tree into subproblems and
// keeps T worker goroutines busy on the irregular workload a maximum
// clique search produces (spec.md §4.5).
//
// Two primitives are provided. Queue implements §4.5.1's producer +
// donation queue: a bounded FIFO fed by a single producer, drained by
// blocking workers, with a coupled want_donations flag and a
// busy-counter-gated termination predicate. StealPoint implements the
// per-depth rendezvous of §4.5.2: a mutex+condition-variable state
// machine a thief can use to claim part of a victim's remaining work at
// a chosen depth.
//
// Run drives the default strategy (4.5.1): the caller (package solver)
// restricts expand to split_depth levels of recursion and hands Run the
// resulting fan-out as a []Subproblem, one per branch reached at that
// depth; workers drain the queue until the producer is done and the
// queue is empty. DonationHooks plugs the same Queue into search.Hooks so
// a worker still running Expand can itself enqueue its own remaining
// branches once WantDonations is observed true, the other half of
// §4.5.1. StealPoint is exercised directly by its own tests and is
// available to a caller wanting §4.5.2's per-depth stealing instead; see
// DESIGN.md for why it is not wired as an alternative to Run.
package scheduler
