package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/parasols/maxclique/dimacs"
	"github.com/parasols/maxclique/internal/applog"
	"github.com/parasols/maxclique/result"
	"github.com/parasols/maxclique/solver"
)

// flags holds every CLI flag from spec.md §6.
type flags struct {
	threads          int
	stopAfterFinding int
	initialBound     int
	splitDepth       int
	workDonation     bool
	timeoutSeconds   int
	printIncumbents  bool
	format           string
	verify           bool
}

// run builds and executes the root command, returning the process exit
// code (0 normal completion, 1 usage/parse/internal error per spec.md
// §7's error taxonomy).
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	return 0
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "maxclique <algorithm> <order> <input-file>",
		Short: "Parallel branch-and-bound maximum clique solver",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], args[1], args[2], f, stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&f.threads, "threads", 0, "worker count (default: hardware concurrency)")
	cmd.Flags().IntVar(&f.stopAfterFinding, "stop-after-finding", 0, "terminate once a clique of this size is proven (0: unlimited)")
	cmd.Flags().IntVar(&f.initialBound, "initial-bound", 0, "seed the incumbent")
	cmd.Flags().IntVar(&f.splitDepth, "split-depth", 0, "split depth used by the producer/donation scheduler")
	cmd.Flags().BoolVar(&f.workDonation, "work-donation", false, "enable donations in the producer/donation scheduler")
	cmd.Flags().IntVar(&f.timeoutSeconds, "timeout", 0, "seconds before abort (0: no timeout)")
	cmd.Flags().BoolVar(&f.printIncumbents, "print-incumbents", false, "print a worker's new best clique when the subproblem that found it finishes")
	cmd.Flags().StringVar(&f.format, "format", dimacs.FormatDIMACS, "input format: dimacs or pairs")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "re-check that the returned set is a clique")

	return cmd
}

// solve parses the input file, runs solver.Solve, optionally verifies the
// result, and writes spec.md §6's stdout format.
func solve(algorithm, orderName, inputPath string, f *flags, stdout io.Writer) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer file.Close()

	g, err := dimacs.Parse(file, f.format)
	if err != nil {
		return err
	}

	var logger applog.Logger = applog.Null{}
	if f.printIncumbents {
		logger = applog.New(applog.LevelInfo, stdout)
	}

	opts := []solver.Option{
		solver.WithThreads(f.threads),
		solver.WithStopAfterFinding(f.stopAfterFinding),
		solver.WithInitialBound(f.initialBound),
		solver.WithSplitDepth(f.splitDepth),
		solver.WithWorkDonation(f.workDonation),
	}
	if f.timeoutSeconds > 0 {
		opts = append(opts, solver.WithTimeout(time.Duration(f.timeoutSeconds)*time.Second))
	}
	if f.printIncumbents {
		opts = append(opts, solver.WithOnIncumbent(func(size int, members []int) {
			logger.Info("new incumbent: size=%d", size)
		}))
	}

	start := time.Now()
	out, err := solver.Solve(g.Graph, algorithm, orderName, opts...)
	if err != nil {
		return err
	}
	overall := time.Since(start)

	if f.verify {
		if err := solver.Verify(g.Graph, out.Members); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}

	writeResult(stdout, g, out, overall, f.workDonation)

	return nil
}

// writeResult renders spec.md §6's stdout format:
//  1. "<size> <nodes>[ aborted]"
//  2. space-separated original vertex names of the clique
//  3. "<overall-ms>[ <per-worker-ms>...]"
//  4. "<donations>", only when donations are enabled
func writeResult(w io.Writer, g *dimacs.Graph, out result.Result, overall time.Duration, donationsEnabled bool) {
	fmt.Fprintf(w, "%d %d", out.Size, out.Nodes)
	if out.Aborted {
		fmt.Fprint(w, " aborted")
	}
	fmt.Fprintln(w)

	names := make([]string, len(out.Members))
	for i, v := range out.Members {
		names[i] = g.Name(v)
	}
	fmt.Fprintln(w, joinNames(names))

	fmt.Fprintf(w, "%d", overall.Milliseconds())
	for _, d := range out.TimesPerWorker {
		fmt.Fprintf(w, " %d", d.Milliseconds())
	}
	fmt.Fprintln(w)

	if donationsEnabled {
		fmt.Fprintln(w, out.Donations)
	}
}

func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += name
	}

	return out
}
