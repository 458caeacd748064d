// Package result holds the additive, per-worker counters the search
// kernel and scheduler accumulate, and the logic that merges them into a
// single Result at the end of a solve.
//
// Every field except Size and Members is a monotone counter: nodes,
// donations, and per-worker wall time are thread-local until a worker
// finishes, then folded into the shared total under a mutex (spec.md
// §4.5.2's merge step). Size and Members instead track the incumbent's
// final value — whichever worker's local result holds the winning size
// at merge time.
package result
