package scheduler

import "sync"

// Params tunes the strategy 4.5.1 run: worker count, the donation
// queue's capacity threshold, and whether donations are enabled at all.
type Params struct {
	Workers          int
	QueueCapacity    int
	DonationsEnabled bool
}

// WorkFunc processes one dequeued Subproblem on behalf of workerID. It is
// the caller's integration point with package search: a typical WorkFunc
// builds (or reuses) a search.Kernel and calls Kernel.Expand with
// sub.Offsets as the subproblem parameter. q is the same Queue Run is
// draining, exposed so work can wire a DonationHooks and let the worker
// hand off its own remaining branches mid-Expand.
type WorkFunc func(workerID int, sub Subproblem, q *Queue)

// Run drives spec.md §4.5.1: a single producer pushes the caller-supplied
// subproblems — the fan-out a restricted-depth expand already produced,
// one per branch reached at split_depth — through a Queue, then latches
// the queue as done. Params.Workers goroutines drain the queue
// concurrently via work until every worker observes the coupled
// termination predicate, donating their own remaining branches along the
// way when work wires that up. Run blocks until all workers have exited.
func Run(subproblems []Subproblem, params Params, work WorkFunc) {
	workers := params.Workers
	if workers <= 0 {
		workers = 1
	}

	q := NewQueue(params.QueueCapacity, params.DonationsEnabled, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for {
				sub, ok := q.DequeueBlocking()
				if !ok {
					return
				}
				work(id, sub, q)
			}
		}(w)
	}

	for _, sub := range subproblems {
		q.EnqueueBlocking(sub)
	}
	q.InitialProducerDone()

	wg.Wait()
}
