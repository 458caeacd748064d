package scheduler

import "github.com/parasols/maxclique/result"

// DonationOption configures a DonationHooks at construction.
type DonationOption func(*DonationHooks)

// WithMinDonationSize sets the minimum number of unvisited sibling
// branches a Donate call must see before it offers them up (spec.md
// §4.5.1's "optionally rate-limited by a minimum donation size"). The
// default, 0, donates as soon as WantDonations is observed true.
func WithMinDonationSize(n int) DonationOption {
	return func(d *DonationHooks) { d.minSize = n }
}

// DonationHooks adapts a Queue to search.Hooks, giving a worker mid-Expand
// a way to hand off its own remaining sibling branches once the queue
// reports WantDonations true (spec.md §4.5.1 step 3). It never reports a
// steal of its own — 4.5.1 has no steal points; that's stealpoint.go's
// Hooks, for strategy 4.5.2.
type DonationHooks struct {
	queue   *Queue
	local   *result.Local
	minSize int
}

// NewDonationHooks wires q (the worker pool's shared queue) and local
// (this worker's own accumulator) into a search.Hooks implementation.
func NewDonationHooks(q *Queue, local *result.Local, opts ...DonationOption) *DonationHooks {
	d := &DonationHooks{queue: q, local: local}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// StealPoint always reports false: the donation queue has no steal
// points of its own.
func (d *DonationHooks) StealPoint(depth int) bool { return false }

// Donate checks WantDonations and, if set and remaining reaches minSize,
// hands off every still-unvisited sibling at this depth as its own
// Subproblem — the same shape the producer's own fan-out uses. offsets is
// the root-to-here branch path; its last entry is already the skip count
// that resumes at the next sibling, so offsets[:len-1]+{offsets[len-1]+i}
// enumerates exactly the remaining branches. It returns true iff it took
// ownership of all of them.
func (d *DonationHooks) Donate(offsets []int, remaining int) bool {
	if remaining <= 0 || remaining < d.minSize || len(offsets) == 0 || !d.queue.WantDonations() {
		return false
	}

	prefix := append([]int(nil), offsets[:len(offsets)-1]...)
	base := offsets[len(offsets)-1]
	for i := 0; i < remaining; i++ {
		sub := make([]int, len(prefix)+1)
		copy(sub, prefix)
		sub[len(prefix)] = base + i
		d.queue.Enqueue(Subproblem{Offsets: sub})
		d.local.RecordDonation()
	}

	return true
}
