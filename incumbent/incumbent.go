package incumbent

import (
	"sync"
	"sync/atomic"
)

// Incumbent is a word-sized shared best-known clique size, updated
// lock-free and read frequently. The zero value is ready to use, with
// size 0.
type Incumbent struct {
	size uint64 // atomic

	mu      sync.Mutex
	members []int // snapshot, valid only for the winning size above
}

// New returns an Incumbent seeded at the given initial bound (spec.md
// §6's --initial-bound). A seeded incumbent that is never beaten leaves
// Members empty, per spec.md §8's monotonicity property.
func New(initialBound int) *Incumbent {
	inc := &Incumbent{}
	if initialBound > 0 {
		inc.size = uint64(initialBound)
	}

	return inc
}

// Get returns the current best-known size. It is a relaxed read: callers
// may observe a value that is about to be superseded by a concurrent
// TryUpdate; that is always safe for pruning.
func (inc *Incumbent) Get() int {
	return int(atomic.LoadUint64(&inc.size))
}

// TryUpdate attempts to raise the incumbent to newSize. It loops a
// compare-and-swap until either it wins (newSize becomes the new value,
// returns true) or it observes a value already >= newSize (returns
// false, no-op). Only the winning call should publish a members snapshot
// via SetMembers.
func (inc *Incumbent) TryUpdate(newSize int) bool {
	n := uint64(newSize)
	for {
		cur := atomic.LoadUint64(&inc.size)
		if n <= cur {
			return false
		}
		if atomic.CompareAndSwapUint64(&inc.size, cur, n) {
			return true
		}
	}
}

// SetMembers publishes the clique snapshot that achieved size. Callers
// must only call this immediately after a winning TryUpdate(size); it
// does not itself re-check size against Get(), since a later winner may
// already have overwritten it — callers race-losing this is harmless
// because a strictly larger incumbent will overwrite the snapshot again.
func (inc *Incumbent) SetMembers(members []int) {
	snapshot := make([]int, len(members))
	copy(snapshot, members)

	inc.mu.Lock()
	inc.members = snapshot
	inc.mu.Unlock()
}

// Members returns a copy of the most recently published clique snapshot.
// Readers must take the current Get() value to know what size it
// corresponds to; between a TryUpdate win and the matching SetMembers
// call, Members may still return an older, smaller clique — callers that
// need a consistent (size, members) pair should structure their call
// site so SetMembers always immediately follows a winning TryUpdate.
// Package search does not publish members here; it records them in its
// worker's result.Local.
func (inc *Incumbent) Members() []int {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	out := make([]int, len(inc.members))
	copy(out, inc.members)

	return out
}
