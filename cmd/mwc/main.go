// Command mwc finds the maximum weight clique of a DIMACS graph.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/otclique/otclique/clique"
	"github.com/otclique/otclique/dimacs"
	"github.com/otclique/otclique/otclique"
)

var rootCmd = &cobra.Command{
	Use:   "mwc <graph-file> [limit] [seconds]",
	Short: "Find the maximum weight clique of a DIMACS graph",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runMWC,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var progress = log.New(os.Stderr, "mwc: ", log.LstdFlags)

func runMWC(cmd *cobra.Command, args []string) error {
	readStart := time.Now()
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("mwc: %w", err)
	}
	defer f.Close()

	g, err := dimacs.ReadGraph(f)
	if err != nil {
		return fmt.Errorf("mwc: %w", err)
	}
	progress.Printf("parsed %d vertices in %s", g.N(), time.Since(readStart))

	opts := otclique.DefaultOptions(g.N())
	if len(args) >= 2 {
		limit, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("mwc: limit: %w", err)
		}
		if limit > 0 {
			opts.Limit = limit
		}
	}
	if len(args) >= 3 {
		seconds, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("mwc: seconds: %w", err)
		}
		if seconds > 0 {
			opts.Deadline = time.Duration(seconds) * time.Second
		}
	}
	progress.Printf("precomputation phase starting, limit=%d", opts.Limit)

	searchStart := time.Now()
	result, timedOut, err := otclique.Solve(g, opts)
	if err != nil {
		return fmt.Errorf("mwc: %w", err)
	}
	elapsed := time.Since(searchStart)
	progress.Printf("branch-and-bound phase = %s, %d branches", elapsed, result.BranchCount)

	if !clique.IsClique(result, g) {
		log.Fatalf("mwc: internal error — result is not a clique")
	}

	if timedOut {
		fmt.Println("TIMEOUT")
	}
	fmt.Printf("n=%d limit=%d weight=%d size=%d time=%s\n", g.N(), opts.Limit, result.Weight, result.Size, elapsed)
	fmt.Println(result.Vertices)

	return nil
}
