package solver

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/parasols/maxclique/bitset"
	"github.com/parasols/maxclique/colour"
	"github.com/parasols/maxclique/incumbent"
	"github.com/parasols/maxclique/order"
	"github.com/parasols/maxclique/result"
	"github.com/parasols/maxclique/scheduler"
	"github.com/parasols/maxclique/search"
)

// ErrUnknownAlgorithm is returned by Solve for an algorithm name Lookup
// does not recognise.
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// ErrUnknownOrder is returned by Solve for an order name that is neither
// one of order.Lookup's names nor "manual".
var ErrUnknownOrder = errors.New("solver: unknown order")

// ErrNotAClique is returned by Verify when two members of the given set
// are not adjacent.
var ErrNotAClique = errors.New("solver: vertex set is not a clique")

// ManualOrderName selects a caller-supplied permutation (Params.Manual)
// instead of one of order.Lookup's computed orderings.
const ManualOrderName = "manual"

// Algorithm names, one per colour.Variant, selectable from the CLI's
// <algorithm> positional (spec.md §6): "algorithm selects a variant
// (colouring permutation × threading strategy × inference)". This
// rendering ties the algorithm choice to the colouring permutation; the
// threading strategy is a separate Params field (WorkDonation) since
// spec.md §6 exposes it as its own flag, not folded into <algorithm>.
const (
	AlgorithmNone                 = "none"
	AlgorithmDefer1               = "defer1"
	AlgorithmRepairAll            = "repair-all"
	AlgorithmRepairAllDefer1      = "repair-all-defer1"
	AlgorithmRepairSelected       = "repair-selected"
	AlgorithmRepairSelectedDefer1 = "repair-selected-defer1"
)

// LookupAlgorithm resolves a CLI-facing algorithm name to a colour.Variant.
func LookupAlgorithm(name string) (colour.Variant, error) {
	switch name {
	case AlgorithmNone:
		return colour.None, nil
	case AlgorithmDefer1:
		return colour.Defer1, nil
	case AlgorithmRepairAll:
		return colour.RepairAll, nil
	case AlgorithmRepairAllDefer1:
		return colour.RepairAllDefer1, nil
	case AlgorithmRepairSelected:
		return colour.RepairSelected, nil
	case AlgorithmRepairSelectedDefer1:
		return colour.RepairSelectedDefer1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Params tunes one Solve call, mirroring spec.md §6's core-relevant CLI
// flags.
type Params struct {
	Threads          int           // 0 means runtime.NumCPU()
	StopAfterFinding int           // 0 means unlimited
	InitialBound     int           // seeds Incumbent
	WorkDonation     bool          // enable donations in strategy 4.5.1
	QueueCapacity    int           // 0 means DefaultQueueCapacity
	SplitDepth       int           // producer fan-out depth, spec.md §6's --split-depth
	Timeout          time.Duration // 0 means no timeout
	Manual           []int         // used only when order name is "manual"
	OnIncumbent      func(size int, members []int)
	Abort            *atomic.Bool // optional externally-owned abort flag
}

// DefaultQueueCapacity is used when Params.QueueCapacity is left at 0.
const DefaultQueueCapacity = 64

// DefaultSplitDepth is used when Params.SplitDepth is left at 0: the
// producer fans out only the root level, one subproblem per top-level
// colouring branch.
const DefaultSplitDepth = 0

// Option configures Params via the functional-options shape used
// throughout this module (colour.Option, search.Option,
// scheduler.DonationOption).
type Option func(*Params)

// WithThreads sets the worker count. 0 (the default) resolves to
// runtime.NumCPU() at Solve time.
func WithThreads(n int) Option { return func(p *Params) { p.Threads = n } }

// WithStopAfterFinding sets the early-termination threshold.
func WithStopAfterFinding(k int) Option { return func(p *Params) { p.StopAfterFinding = k } }

// WithInitialBound seeds the incumbent.
func WithInitialBound(k int) Option { return func(p *Params) { p.InitialBound = k } }

// WithWorkDonation enables strategy 4.5.1's donation path.
func WithWorkDonation(enabled bool) Option { return func(p *Params) { p.WorkDonation = enabled } }

// WithQueueCapacity overrides the donation queue's capacity threshold.
func WithQueueCapacity(n int) Option { return func(p *Params) { p.QueueCapacity = n } }

// WithSplitDepth sets how many levels of colouring branches the producer
// descends before enqueuing a subproblem per branch reached (spec.md
// §4.5.1 step 1, §6's --split-depth). 0, the default, fans out only the
// root level.
func WithSplitDepth(d int) Option { return func(p *Params) { p.SplitDepth = d } }

// WithTimeout sets a wall-clock deadline after which the run aborts.
func WithTimeout(d time.Duration) Option { return func(p *Params) { p.Timeout = d } }

// WithManualOrder supplies the permutation used when the order name is
// ManualOrderName.
func WithManualOrder(perm []int) Option { return func(p *Params) { p.Manual = perm } }

// WithOnIncumbent registers a callback for spec.md §6's
// --print-incumbents. It is invoked from a worker goroutine after that
// worker finishes a subproblem, and only when the subproblem raised the
// worker's best clique; it receives that best size and its members.
// Improvements made inside a subproblem are reported once, when the
// subproblem ends, and cliques found by the producer's fan-out do not
// trigger it.
func WithOnIncumbent(fn func(size int, members []int)) Option {
	return func(p *Params) { p.OnIncumbent = fn }
}

// WithAbort wires an externally-owned abort flag; storing true in it
// stops the run. A Timeout, when set, trips the same flag.
func WithAbort(flag *atomic.Bool) Option { return func(p *Params) { p.Abort = flag } }

// Solve runs spec.md §2's full data flow over g: relabel under the named
// ordering, recode, fan out colouring branches down to Params.SplitDepth
// levels into one subproblem per branch reached, run strategy 4.5.1
// across Params.Threads workers, and merge. Returned members are in g's
// original vertex labelling.
func Solve(g *bitset.Graph, algorithm, orderName string, opts ...Option) (result.Result, error) {
	variant, err := LookupAlgorithm(algorithm)
	if err != nil {
		return result.Result{}, err
	}

	params := Params{QueueCapacity: DefaultQueueCapacity}
	for _, opt := range opts {
		opt(&params)
	}
	if params.QueueCapacity <= 0 {
		params.QueueCapacity = DefaultQueueCapacity
	}

	perm, err := resolveOrder(g, orderName, params.Manual)
	if err != nil {
		return result.Result{}, err
	}

	recoded, err := g.Recode(perm)
	if err != nil {
		return result.Result{}, err
	}

	inc := incumbent.New(params.InitialBound)
	if recoded.Size() == 0 {
		return result.Result{Size: inc.Get()}, nil
	}

	abort := params.Abort
	var timeoutAbort atomic.Bool
	if params.Timeout > 0 && abort == nil {
		abort = &timeoutAbort
	}
	if params.Timeout > 0 {
		timer := time.AfterFunc(params.Timeout, func() { abort.Store(true) })
		defer timer.Stop()
	}

	merger := result.NewMerger()
	threads := params.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	producerLocal := result.NewLocal()
	producerColourer := colour.NewColourer(variant, recoded.Size())
	fullSet := recoded.NewWorkingSet()
	fullSet.SetAll()
	rootCol := producerColourer.Colour(recoded, fullSet)
	producerOpts := []search.Option{
		search.WithOrder(perm),
		search.WithStopAfterFinding(params.StopAfterFinding),
	}
	if abort != nil {
		producerOpts = append(producerOpts, search.WithAbort(abort))
	}
	producerKernel := search.New(recoded, producerColourer, inc, producerLocal, producerOpts...)
	offsets := producerKernel.FanOut(fullSet, rootCol, params.SplitDepth)

	subproblems := make([]scheduler.Subproblem, len(offsets))
	for i, o := range offsets {
		subproblems[i] = scheduler.Subproblem{Offsets: o}
	}
	if len(subproblems) == 0 {
		merger.Merge(producerLocal)
		if abort != nil && abort.Load() {
			merger.MarkAborted()
		}

		out := merger.Result()
		if out.Size < inc.Get() {
			out.Size = inc.Get() // an unbeaten initial bound
		}
		return out, nil
	}

	// One Local per worker, merged once after the run; worker 0's also
	// carries the producer's fan-out.
	locals := make([]*result.Local, threads)
	locals[0] = producerLocal
	for i := 1; i < threads; i++ {
		locals[i] = result.NewLocal()
	}

	work := func(workerID int, sub scheduler.Subproblem, q *scheduler.Queue) {
		start := time.Now()
		local := locals[workerID]
		before := local.Size
		colourer := colour.NewColourer(variant, recoded.Size())

		kernelOpts := []search.Option{
			search.WithOrder(perm),
			search.WithStopAfterFinding(params.StopAfterFinding),
		}
		if abort != nil {
			kernelOpts = append(kernelOpts, search.WithAbort(abort))
		}
		if params.WorkDonation {
			kernelOpts = append(kernelOpts, search.WithHooks(scheduler.NewDonationHooks(q, local)))
		}
		k := search.New(recoded, colourer, inc, local, kernelOpts...)

		p := recoded.NewWorkingSet()
		p.SetAll()
		col := colourer.Colour(recoded, p)
		k.Expand(make([]int, 0, recoded.Size()), p, col, []int{0}, sub.Offsets)

		local.Elapsed += time.Since(start)
		if params.OnIncumbent != nil && local.Size > before {
			params.OnIncumbent(local.Size, local.Members)
		}
	}

	scheduler.Run(subproblems, scheduler.Params{
		Workers:          threads,
		QueueCapacity:    params.QueueCapacity,
		DonationsEnabled: params.WorkDonation,
	}, work)
	for _, l := range locals {
		merger.Merge(l)
	}

	if abort != nil && abort.Load() {
		merger.MarkAborted()
	}

	out := merger.Result()
	if out.Size < inc.Get() {
		out.Size = inc.Get() // an unbeaten initial bound
	}
	return out, nil
}

// Verify re-checks that members forms a clique in g (spec.md §6's
// --verify, grounded in the original test_max_clique.cc harness). It
// operates on g directly — the original, unpermuted graph — so callers
// should pass Solve's returned (already-depermuted) Members.
func Verify(g *bitset.Graph, members []int) error {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !g.Adjacent(members[i], members[j]) {
				return fmt.Errorf("%w: %d and %d are not adjacent", ErrNotAClique, members[i], members[j])
			}
		}
	}

	return nil
}

// resolveOrder returns the permutation to recode g under: either a
// computed order.Func result, or (for ManualOrderName) the caller's own
// permutation, defaulting to the identity if none was given.
func resolveOrder(g *bitset.Graph, orderName string, manual []int) ([]int, error) {
	if orderName == ManualOrderName {
		if manual != nil {
			return manual, nil
		}
		return identity(g.Size()), nil
	}

	fn, err := order.Lookup(orderName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, orderName)
	}

	return fn(g), nil
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return perm
}
