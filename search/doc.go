// Package search implements the recursive colour-and-branch expansion of
// spec.md §4.4: given a candidate clique C, a candidate extension set P,
// and a colouring of P computed by package colour, it explores the
// search tree right-to-left, pruning branches whose coloured bound can
// no longer beat the shared incumbent.
//
// Kernel.Expand is the decision/optimisation form: it only records a new
// best clique on strict improvement. Kernel.ExpandCount is the
// enumeration variant described in spec.md §4.4's tie-break note — it
// relaxes the bound check by one and tallies how many maximum cliques of
// the winning size exist, without collecting each one.
//
// Neither method owns concurrency: a scheduler drives many goroutines,
// each with its own Kernel (own Colourer, own result.Local), consulting
// the same shared BitGraph and incumbent.Incumbent. The optional
// subproblem offsets and Hooks rendezvous are how a scheduler restricts
// or redirects one Kernel's traversal; package search itself is agnostic
// to how those are produced.
package search
