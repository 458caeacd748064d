package colour

import (
	"errors"

	"github.com/parasols/maxclique/bitset"
)

// Variant selects one of the permutation strategies from spec.md §4.2.
// All variants preserve the colouring contract (see package doc); they
// differ only in the ordering they produce, which tunes bound tightness
// against colouring cost.
type Variant int

const (
	// None is the base greedy sweep: repeatedly take the lowest remaining
	// vertex, grow its colour class with the lowest compatible survivors,
	// and move to the next colour once the class is maximal.
	None Variant = iota

	// Defer1 runs None, then relocates every singleton colour class to
	// the tail of the order, each keeping its own fresh colour. Singleton
	// classes tighten the bound the least, so pushing them to the
	// right-hand side (consumed first) fails the prune check earliest.
	Defer1

	// RepairAll attempts a one-step repair before opening a new colour
	// class for a vertex v: if v conflicts with exactly one vertex w of
	// some earlier class c, and w can be moved to a later class without
	// creating a conflict there, the move is made and v joins c instead
	// of starting a new class.
	RepairAll

	// RepairAllDefer1 is RepairAll followed by the Defer1 tail relocation.
	RepairAllDefer1

	// RepairSelected is RepairAll restricted to the case where the
	// current class count already exceeds Colourer's configured Delta —
	// i.e. repair is skipped while few colours are in use.
	RepairSelected

	// RepairSelectedDefer1 is RepairSelected followed by Defer1.
	RepairSelectedDefer1
)

// ErrEmptyPrefix is an out-of-range index error exposed for callers that
// build their own diagnostics around a Colouring; nothing in this package
// returns it.
var ErrEmptyPrefix = errors.New("colour: index out of range")

// Colouring is the (p_order, p_bound) pair described by spec.md §4.2.
// Both slices have the same length, m = |P|. It is stack-local to one
// expansion frame: never retained past the call that produced it, since
// its backing arrays are owned and reused by a Colourer.
type Colouring struct {
	Order []int // p_order: every vertex of P exactly once
	Bound []int // p_bound: non-decreasing
}

// Len returns the number of coloured vertices.
func (c Colouring) Len() int { return len(c.Order) }

// Colourer holds the scratch buffers for one thread's repeated colouring
// calls. It is not safe for concurrent use; the search kernel owns one
// Colourer per worker goroutine (mirroring the "own it per thread in the
// kernel frame" guidance for the spec's thread-local static buffers).
type Colourer struct {
	variant Variant
	delta   int // RepairSelected threshold

	order []int
	bound []int
}

// Option configures a Colourer at construction.
type Option func(*Colourer)

// WithDelta sets the RepairSelected threshold: repair is attempted only
// once the number of colour classes already opened exceeds delta. It has
// no effect on variants other than RepairSelected/RepairSelectedDefer1.
// Default is 0.
func WithDelta(delta int) Option {
	return func(c *Colourer) { c.delta = delta }
}

// NewColourer constructs a Colourer whose scratch buffers are sized to
// capacity (the largest |P| it will ever be asked to colour — typically
// the graph's vertex count).
func NewColourer(variant Variant, capacity int, opts ...Option) *Colourer {
	c := &Colourer{
		variant: variant,
		order:   make([]int, 0, capacity),
		bound:   make([]int, 0, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Variant reports the configured Variant.
func (c *Colourer) Variant() Variant { return c.variant }

// Colour computes the colouring of p under graph g. The returned
// Colouring's Order/Bound slices alias c's internal scratch buffers and
// are only valid until the next call to Colour on the same Colourer.
func (c *Colourer) Colour(g *bitset.Graph, p bitset.Set) Colouring {
	classes := c.buildClasses(g, p)

	switch c.variant {
	case Defer1, RepairAllDefer1, RepairSelectedDefer1:
		classes = deferSingletons(classes)
	}

	c.order = c.order[:0]
	c.bound = c.bound[:0]
	for ci, class := range classes {
		for _, v := range class {
			c.order = append(c.order, v)
			c.bound = append(c.bound, ci+1)
		}
	}

	return Colouring{Order: c.order, Bound: c.bound}
}

// repairEnabled reports whether one-step repair should be attempted given
// the number of classes already opened.
func (c *Colourer) repairEnabled(openedClasses int) bool {
	switch c.variant {
	case RepairAll, RepairAllDefer1:
		return true
	case RepairSelected, RepairSelectedDefer1:
		return openedClasses > c.delta
	default:
		return false
	}
}

// buildClasses runs the base sweep (spec.md §4.2's "None" algorithm),
// optionally attempting a one-step repair before each new colour class is
// opened. It returns the colour classes in the order they were produced,
// each an independent set (no internal conflicts) in the complement
// graph.
func (c *Colourer) buildClasses(g *bitset.Graph, p bitset.Set) [][]int {
	q := p.Clone()
	r := p.Clone()
	var classes [][]int

	for !q.Empty() {
		seed := q.FirstSet()

		if c.repairEnabled(len(classes)) && tryRepair(g, classes, seed) {
			q.Clear(seed)
			continue
		}

		r.CopyFrom(q)
		var class []int
		for !r.Empty() {
			w := r.FirstSet()
			q.Clear(w)
			r.Clear(w)
			g.IntersectWithRowComplement(w, &r)
			class = append(class, w)
		}
		classes = append(classes, class)
	}

	return classes
}

// tryRepair looks for a class c such that v conflicts with exactly one
// member w of c, and w can legally move to some later class c' > c (i.e.
// w is non-adjacent to every member of c'). If found, it performs the
// move, places v into c, and returns true. classes is mutated in place.
func tryRepair(g *bitset.Graph, classes [][]int, v int) bool {
	for ci, class := range classes {
		conflicts := 0
		conflictAt := -1
		for wi, w := range class {
			if g.Adjacent(v, w) {
				conflicts++
				conflictAt = wi
				if conflicts > 1 {
					break
				}
			}
		}
		if conflicts != 1 {
			continue
		}

		w := class[conflictAt]
		for cj := ci + 1; cj < len(classes); cj++ {
			if fitsInClass(g, classes[cj], w) {
				classes[ci] = removeAt(class, conflictAt)
				classes[ci] = append(classes[ci], v)
				classes[cj] = append(classes[cj], w)

				return true
			}
		}
	}

	return false
}

// fitsInClass reports whether w has no conflicts with any member of class.
func fitsInClass(g *bitset.Graph, class []int, w int) bool {
	for _, u := range class {
		if g.Adjacent(w, u) {
			return false
		}
	}

	return true
}

// removeAt returns class with the element at index i removed, preserving
// the relative order of the rest.
func removeAt(class []int, i int) []int {
	out := make([]int, 0, len(class)-1)
	out = append(out, class[:i]...)
	out = append(out, class[i+1:]...)

	return out
}

// deferSingletons relocates every colour class of exactly one vertex to
// the tail, preserving the relative order within each group, each
// singleton keeping its own fresh colour (spec.md §4.2's Defer1 variant).
func deferSingletons(classes [][]int) [][]int {
	out := make([][]int, 0, len(classes))
	var singles [][]int
	for _, class := range classes {
		if len(class) == 1 {
			singles = append(singles, class)
		} else {
			out = append(out, class)
		}
	}

	return append(out, singles...)
}
