package search

import (
	"math"
	"sync/atomic"

	"github.com/parasols/maxclique/bitset"
	"github.com/parasols/maxclique/colour"
	"github.com/parasols/maxclique/incumbent"
	"github.com/parasols/maxclique/result"
)

// Hooks lets a scheduler steer one Kernel's expansion without search
// depending on scheduler internals (spec.md §4.5's subproblem and
// steal_point parameters to expand).
type Hooks interface {
	// StealPoint is consulted after every branch at depth has been fully
	// explored and popped. Returning true tells the Kernel
	// that this depth's rendezvous has just been consumed by another
	// worker, so the caller must stop iterating further branches here.
	StealPoint(depth int) bool

	// Donate is consulted after every branch that has been fully explored
	// and popped, only while siblings are still left to visit at this
	// depth. offsets is the root-to-here branch path: each earlier entry
	// is the skip count of the branch taken at that depth, and its last
	// entry is already the skip count that would resume
	// at the next sibling. remaining is how many siblings (including
	// that next one) are still unvisited. Returning true means every one
	// of them has been handed off to another worker, so the caller must
	// stop iterating this depth.
	Donate(offsets []int, remaining int) bool
}

// NoHooks is a Hooks that never reports a steal or accepts a donation.
type NoHooks struct{}

// StealPoint always reports false.
func (NoHooks) StealPoint(depth int) bool { return false }

// Donate always reports false.
func (NoHooks) Donate(offsets []int, remaining int) bool { return false }

// Kernel holds everything one worker needs to run expand: the shared
// read-only graph, a private Colourer (scratch buffers are not safe for
// concurrent use), the shared Incumbent, and a private result.Local to
// accumulate into. One Kernel belongs to exactly one worker goroutine.
type Kernel struct {
	graph     *bitset.Graph
	colourer  *colour.Colourer
	incumbent *incumbent.Incumbent
	local     *result.Local

	// order maps a working (post-recode) vertex id to its original,
	// pre-ordering id, used only to depermute a clique snapshot before
	// it is published to Local. A nil order is the identity.
	order []int

	stopAfterFinding int // 0 means unlimited
	abort            *atomic.Bool
	hooks            Hooks
}

// Option configures a Kernel at construction.
type Option func(*Kernel)

// WithOrder supplies the depermutation vector used when snapshotting a
// found clique: order[newID] == originalID.
func WithOrder(order []int) Option {
	return func(k *Kernel) { k.order = order }
}

// WithStopAfterFinding sets spec.md §6's --stop-after-finding threshold:
// once Incumbent reaches this size, every Kernel returns without further
// branching. 0 (the default) means unlimited.
func WithStopAfterFinding(n int) Option {
	return func(k *Kernel) { k.stopAfterFinding = n }
}

// WithAbort wires a shared cancellation flag; Expand polls it at every
// loop head, per spec.md §4.5's cancellation model.
func WithAbort(flag *atomic.Bool) Option {
	return func(k *Kernel) { k.abort = flag }
}

// WithHooks wires the scheduler's steal-point rendezvous and donation
// path. The default is NoHooks{}.
func WithHooks(h Hooks) Option {
	return func(k *Kernel) { k.hooks = h }
}

// New constructs a Kernel. graph and inc are shared across every worker's
// Kernel; colourer and local must be owned by this Kernel alone.
func New(graph *bitset.Graph, colourer *colour.Colourer, inc *incumbent.Incumbent, local *result.Local, opts ...Option) *Kernel {
	k := &Kernel{
		graph:     graph,
		colourer:  colourer,
		incumbent: inc,
		local:     local,
		hooks:     NoHooks{},
	}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

func (k *Kernel) stopBound() int {
	if k.stopAfterFinding <= 0 {
		return math.MaxInt
	}

	return k.stopAfterFinding
}

func (k *Kernel) aborted() bool {
	return k.abort != nil && k.abort.Load()
}

func (k *Kernel) depermute(c []int) []int {
	out := make([]int, len(c))
	for i, v := range c {
		if k.order != nil {
			out[i] = k.order[v]
		} else {
			out[i] = v
		}
	}

	return out
}

// Expand runs the decision/optimisation form of spec.md §4.4's expand
// over subproblem rooted at (c, p, col). c is the current candidate
// clique (appended to and popped in place — callers must pass a slice
// with spare capacity if they intend to reuse its backing array, but
// Expand itself never retains a reference past return). position tracks
// the branch offset at every depth from the root to here (its last entry
// is incremented once per branch entered at this depth, and each earlier
// entry is the skip count of the branch taken at that depth); a
// Hooks.Donate implementation turns it directly into a Subproblem offset
// vector. It may be nil, which disables donation for this call and every
// call below it. subproblem is the
// optional offset vector of spec.md §4.4 — nil means "branch freely
// forever". It reports whether this call's own steal point (if any) was
// consumed, so a caller one level up knows to stop iterating its own
// loop.
func (k *Kernel) Expand(c []int, p bitset.Set, col colour.Colouring, position []int, subproblem []int) (consumed bool) {
	return k.expand(c, p, col, position, subproblem)
}

func (k *Kernel) expand(c []int, p bitset.Set, col colour.Colouring, position []int, subproblem []int) bool {
	k.local.RecordNode()
	depth := len(c)
	// The recursive Colour calls below reuse the Colourer's buffers, which
	// col may alias, so this frame keeps its own copy.
	col = colour.Colouring{Order: append([]int(nil), col.Order...), Bound: append([]int(nil), col.Bound...)}

	skip := 0
	bounded := subproblem != nil && depth < len(subproblem)
	if bounded {
		skip = subproblem[depth]
	}

	for n := col.Len() - 1; n >= 0; n-- {
		if len(position) > 0 {
			position[len(position)-1]++
		}

		if depth+col.Bound[n] <= k.incumbent.Get() {
			return false
		}
		if k.incumbent.Get() >= k.stopBound() || k.aborted() {
			return false
		}

		v := col.Order[n]
		if skip > 0 {
			skip--
			p.Clear(v)
			continue
		}

		c = append(c, v)
		pPrime := p.Clone()
		k.graph.IntersectWithRow(v, &pPrime)

		var childConsumed bool
		if pPrime.Empty() {
			size := len(c)
			if size > k.incumbent.Get() && k.incumbent.TryUpdate(size) {
				k.local.RecordFind(size, k.depermute(c))
			}
		} else {
			childCol := k.colourer.Colour(k.graph, pPrime)
			var childPosition []int
			if len(position) > 0 {
				childPosition = append(append([]int(nil), position...), 0)
				childPosition[len(position)-1]-- // skip count of the branch just taken
			}
			childConsumed = k.expand(c, pPrime, childCol, childPosition, subproblem)
		}

		c = c[:len(c)-1]
		p.Clear(v)

		if bounded {
			// A subproblem offset vector pins this call to exactly one
			// branch at this depth: skip the prescribed count, take the
			// next branch, then stop regardless of what remains.
			return childConsumed
		}
		if childConsumed {
			return false
		}
		if k.hooks.StealPoint(depth) {
			return true
		}
		if n > 0 && len(position) > 0 && k.hooks.Donate(position, n) {
			return false
		}
	}

	return false
}

// FanOut restricts expand to recursion depth <= maxDepth, returning one
// offset vector per branch that reaches that depth instead of recursing
// into it — spec.md §4.5.1 step 1's producer phase, and the --split-depth
// flag's only consumer. maxDepth 0 reproduces the original single-level
// fan-out: one offset vector per top-level colouring branch. A branch
// that completes a maximal clique before reaching maxDepth is recorded
// against Incumbent/Local directly, the same way expand would, and does
// not appear in the returned offsets.
func (k *Kernel) FanOut(p bitset.Set, col colour.Colouring, maxDepth int) [][]int {
	var out [][]int
	k.fanOut(nil, p, col, 0, maxDepth, nil, &out)

	return out
}

func (k *Kernel) fanOut(c []int, p bitset.Set, col colour.Colouring, depth, maxDepth int, prefix []int, out *[][]int) {
	k.local.RecordNode()
	// The recursive Colour calls below reuse the Colourer's buffers, which
	// col may alias, so this frame keeps its own copy.
	col = colour.Colouring{Order: append([]int(nil), col.Order...), Bound: append([]int(nil), col.Bound...)}

	for n := col.Len() - 1; n >= 0; n-- {
		if depth+col.Bound[n] <= k.incumbent.Get() {
			return
		}
		if k.incumbent.Get() >= k.stopBound() || k.aborted() {
			return
		}

		v := col.Order[n]
		offset := append(append([]int(nil), prefix...), col.Len()-1-n)

		if depth == maxDepth {
			*out = append(*out, offset)
			continue
		}

		c = append(c, v)
		pPrime := p.Clone()
		k.graph.IntersectWithRow(v, &pPrime)

		if pPrime.Empty() {
			size := len(c)
			if size > k.incumbent.Get() && k.incumbent.TryUpdate(size) {
				k.local.RecordFind(size, k.depermute(c))
			}
		} else {
			childCol := k.colourer.Colour(k.graph, pPrime)
			k.fanOut(c, pPrime, childCol, depth+1, maxDepth, offset, out)
		}

		c = c[:len(c)-1]
		p.Clear(v)
	}
}

// ExpandCount is the enumeration variant of spec.md §4.4's tie-break
// note: the bound check is relaxed by one (effectively "<" rather than
// "<="), so maximal cliques matching the current incumbent size are
// explored rather than pruned, and count is incremented for each one
// found. count is reset to 1 whenever a strictly larger clique supersedes
// the incumbent, matching the usual "count all cliques of the maximum
// size" semantics. ExpandCount does not support subproblem/Hooks — it is
// intended for a single sequential counting pass once the optimum is
// known, per spec.md §1's "simple enumeration counter" carve-out.
func (k *Kernel) ExpandCount(c []int, p bitset.Set, col colour.Colouring, count *uint64) {
	k.local.RecordNode()
	// The recursive Colour calls below reuse the Colourer's buffers, which
	// col may alias, so this frame keeps its own copy.
	col = colour.Colouring{Order: append([]int(nil), col.Order...), Bound: append([]int(nil), col.Bound...)}

	for n := col.Len() - 1; n >= 0; n-- {
		if len(c)+col.Bound[n] < k.incumbent.Get() {
			return
		}
		if k.aborted() {
			return
		}

		v := col.Order[n]
		c = append(c, v)
		pPrime := p.Clone()
		k.graph.IntersectWithRow(v, &pPrime)

		if pPrime.Empty() {
			size := len(c)
			cur := k.incumbent.Get()
			switch {
			case size > cur:
				if k.incumbent.TryUpdate(size) {
					atomic.StoreUint64(count, 1)
					k.local.RecordFind(size, k.depermute(c))
				}
			case size == cur:
				atomic.AddUint64(count, 1)
			}
		} else {
			childCol := k.colourer.Colour(k.graph, pPrime)
			k.ExpandCount(c, pPrime, childCol, count)
		}

		c = c[:len(c)-1]
		p.Clear(v)
	}
}
