// Command maxclique is the CLI front end of spec.md §6: read a graph,
// solve maximum clique under a chosen algorithm/ordering, and print the
// result. Argument parsing, the DIMACS/pairs readers, and this whole
// binary are themselves "external collaborators" per spec.md §1 — the
// interesting work lives in package solver and the packages it wires
// together.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
