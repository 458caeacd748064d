package scheduler

import "sync"

type stealState int

const (
	stealIdle stealState = iota
	stealPublished
	stealStolen
	stealFinished
)

// StealPoint is spec.md §3's per-thread, per-depth rendezvous: a
// publication slot for an optional offset vector, a "was stolen" flag,
// and a "finished" flag, reset on each re-entry into its depth.
//
// A victim worker, on reaching this depth with branches still to
// explore, calls Publish with the offsets describing where it is. An
// idle thief calls TrySteal; if it wins, the victim's later WasStolen
// check tells it to stop iterating its own loop at that depth (the
// "break out of the loop" step of spec.md §4.4's algorithm).
type StealPoint struct {
	mu    sync.Mutex
	cond  *sync.Cond
	state stealState
	offs  []int
}

// NewStealPoint returns an idle StealPoint.
func NewStealPoint() *StealPoint {
	sp := &StealPoint{}
	sp.cond = sync.NewCond(&sp.mu)

	return sp
}

// Publish offers offsets for a thief to claim.
func (sp *StealPoint) Publish(offsets []int) {
	sp.mu.Lock()
	sp.state = stealPublished
	sp.offs = offsets
	sp.mu.Unlock()

	sp.cond.Broadcast()
}

// UnpublishAndKeepGoing withdraws an unclaimed publication because the
// victim has moved on. A publication already claimed by TrySteal is left
// untouched (the state is stealStolen, not stealPublished).
func (sp *StealPoint) UnpublishAndKeepGoing() {
	sp.mu.Lock()
	if sp.state == stealPublished {
		sp.state = stealIdle
		sp.offs = nil
	}
	sp.mu.Unlock()
}

// TrySteal claims a published offset vector. It returns the offsets and
// true exactly once per publication; a second caller, or a caller
// arriving when nothing is published, gets (nil, false).
func (sp *StealPoint) TrySteal() ([]int, bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.state != stealPublished {
		return nil, false
	}
	sp.state = stealStolen
	offs := sp.offs
	sp.offs = nil

	return offs, true
}

// WasStolen reports whether the most recent publication was claimed.
func (sp *StealPoint) WasStolen() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	return sp.state == stealStolen
}

// Finish marks this rendezvous as no longer reachable at this depth
// (the victim has returned past it for good) and wakes any waiter.
func (sp *StealPoint) Finish() {
	sp.mu.Lock()
	sp.state = stealFinished
	sp.mu.Unlock()

	sp.cond.Broadcast()
}

// Finished reports whether Finish has been called.
func (sp *StealPoint) Finished() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	return sp.state == stealFinished
}

// Reset returns the StealPoint to idle, ready for the next re-entry into
// its depth.
func (sp *StealPoint) Reset() {
	sp.mu.Lock()
	sp.state = stealIdle
	sp.offs = nil
	sp.mu.Unlock()
}

// Hooks adapts a slice of per-depth StealPoints to search.Hooks: depth i
// is considered consumed once points[i] reports WasStolen. Depths beyond
// the slice never report a steal.
type Hooks struct {
	points []*StealPoint
}

// NewHooks wraps points as a search.Hooks implementation.
func NewHooks(points []*StealPoint) Hooks {
	return Hooks{points: points}
}

// StealPoint implements search.Hooks.
func (h Hooks) StealPoint(depth int) bool {
	if depth < 0 || depth >= len(h.points) {
		return false
	}

	return h.points[depth].WasStolen()
}

// Donate always reports false: strategy 4.5.2's steal points have no
// donation path of their own (that's DonationHooks, strategy 4.5.1's).
func (h Hooks) Donate(offsets []int, remaining int) bool { return false }
