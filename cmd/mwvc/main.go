// Command mwvc finds the minimum weight vertex cover of a DIMACS graph, via
// the maximum weight clique of its complement.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/otclique/otclique/dimacs"
	"github.com/otclique/otclique/otclique"
)

var rootCmd = &cobra.Command{
	Use:   "mwvc <graph-file> [limit]",
	Short: "Find the minimum weight vertex cover of a DIMACS graph",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runMWVC,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var progress = log.New(os.Stderr, "mwvc: ", log.LstdFlags)

func runMWVC(cmd *cobra.Command, args []string) error {
	readStart := time.Now()
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("mwvc: %w", err)
	}
	defer f.Close()

	g, err := dimacs.ReadGraph(f)
	if err != nil {
		return fmt.Errorf("mwvc: %w", err)
	}
	progress.Printf("parsed %d vertices in %s", g.N(), time.Since(readStart))

	opts := otclique.DefaultOptions(g.N())
	if len(args) >= 2 {
		limit, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("mwvc: limit: %w", err)
		}
		if limit > 0 {
			opts.Limit = limit
		}
	}
	progress.Printf("precomputation phase starting, limit=%d", opts.Limit)

	searchStart := time.Now()
	cover, timedOut, err := otclique.SolveMWVC(g, opts)
	if err != nil {
		return fmt.Errorf("mwvc: %w", err)
	}
	elapsed := time.Since(searchStart)
	progress.Printf("branch-and-bound phase = %s, %d branches", elapsed, cover.BranchCount)

	if timedOut {
		fmt.Println("TIMEOUT")
	}
	fmt.Printf("n=%d limit=%d weight=%d size=%d time=%s\n", g.N(), opts.Limit, cover.Weight, len(cover.Vertices), elapsed)
	fmt.Println(cover.Vertices)

	return nil
}
