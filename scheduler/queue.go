package scheduler

import (
	"sync"
	"sync/atomic"
)

// Subproblem is the offset vector of spec.md §3/§4.4: at depth d, if
// d < len(Offsets), expand must skip Offsets[d] branches before
// branching for real, and stop after the branch it takes at that depth.
type Subproblem struct {
	Offsets []int
}

// Queue is spec.md §4.5.1's producer + donation queue: a bounded FIFO
// fed by one producer and drained by many blocking workers, with an
// atomic want_donations flag that flips once the producer empties the
// queue, and a busy-counter-gated termination predicate.
//
// The mutex+condition-variable shape mirrors the teacher's
// core.Graph twin-mutex model (core/types.go), generalised from guarding
// plain field reads/writes to guarding a blocking-queue predicate —
// std::condition_variable becomes sync.Cond, the one addition a plain
// RWMutex doesn't give for free.
type Queue struct {
	mu   sync.Mutex
	cond *sync.Cond

	items []Subproblem
	cap   int

	producerDone     bool
	donationsEnabled bool
	busy             int // workers not currently blocked in DequeueBlocking

	wantDonations atomic.Bool
}

// NewQueue constructs a Queue with the given capacity (the threshold
// EnqueueBlocking blocks above), donation support, and worker count (the
// initial busy count — every worker starts "busy").
func NewQueue(capacity int, donationsEnabled bool, workers int) *Queue {
	q := &Queue{
		cap:              capacity,
		donationsEnabled: donationsEnabled,
		busy:             workers,
	}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// EnqueueBlocking is the producer's insertion path: it blocks while the
// queue already holds more than cap items, then appends and clears
// want_donations (a freshly-produced item means donations are no longer
// needed to keep workers busy).
func (q *Queue) EnqueueBlocking(item Subproblem) {
	q.mu.Lock()
	for len(q.items) > q.cap {
		q.cond.Wait()
	}
	q.items = append(q.items, item)
	q.wantDonations.Store(false)
	q.mu.Unlock()

	q.cond.Broadcast()
}

// Enqueue is the non-blocking donation path used by a worker that has
// observed WantDonations and chosen to hand off part of its own work.
func (q *Queue) Enqueue(item Subproblem) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	q.cond.Broadcast()
}

// InitialProducerDone is the producer's latch: once called, no more
// items will ever be enqueued via EnqueueBlocking. If the queue happens
// to be empty at the time of the call, want_donations is raised so any
// worker still running can offer to split its own work.
func (q *Queue) InitialProducerDone() {
	q.mu.Lock()
	q.producerDone = true
	if len(q.items) == 0 {
		q.wantDonations.Store(true)
	}
	q.mu.Unlock()

	q.cond.Broadcast()
}

// WantDonations is a relaxed read of the donation flag.
func (q *Queue) WantDonations() bool {
	return q.wantDonations.Load()
}

// DequeueBlocking blocks until an item is available, returning it and
// true. It returns false iff the producer is done, the queue is empty,
// and either donations are disabled or every other worker is also idle
// (busy has reached zero) — the coupled termination predicate of
// spec.md §4.5.1. Spurious wakeups are handled by looping.
func (q *Queue) DequeueBlocking() (Subproblem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if len(q.items) > 0 {
			item := q.items[0]
			q.items = q.items[1:]
			if q.producerDone && len(q.items) == 0 {
				q.wantDonations.Store(true)
			}
			q.cond.Broadcast() // wake a producer blocked on capacity

			return item, true
		}

		q.busy--
		if q.producerDone && (!q.donationsEnabled || q.busy == 0) {
			q.cond.Broadcast() // wake every other waiting worker too

			return Subproblem{}, false
		}
		q.cond.Wait()
		q.busy++
	}
}

// Len reports the current queue depth. Intended for diagnostics/tests;
// racy under concurrent use beyond that.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
