// Package incumbent holds the shared best-known clique size used to prune
// the search, plus an occasional serialised snapshot of the clique that
// achieved it.
//
// Get is a relaxed read: it may observe a slightly stale value, which is
// fine for pruning because pruning is conservative — a stale smaller
// bound only causes extra work, never a missed solution. TryUpdate is a
// compare-and-swap loop; it returns true only for the call that actually
// raised the global maximum, and that caller alone is responsible for
// publishing the clique members via SetMembers.
//
// The shape mirrors the teacher's core.Graph.nextEdgeID atomic counter
// (core/methods.go) generalised from a monotonic generator to a
// monotonic maximum, plus a small mutex-guarded critical section for the
// members snapshot — used only on strict improvement, per spec.md §4.3.
package incumbent
