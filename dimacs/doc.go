// Package dimacs reads the two input formats of spec.md §6: DIMACS
// edge-list (`p edge n m`, `e u v` one-based, `c` comments) and a
// "pairs" format of two tokens per line. Both map vertex names to
// 0-based ids; Graph.Names lets a caller print a found clique's original
// vertex names instead of the internal working ids.
package dimacs
