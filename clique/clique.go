// Package clique defines the Clique result type returned by the solver and
// orchestrator, and a validity check used by tests and callers that want to
// assert the search's output before trusting it.
package clique

import "github.com/otclique/otclique/graphview"

// Clique is a vertex subset together with its total weight, expressed in the
// original (input) vertex numbering.
type Clique struct {
	// Vertices holds the clique's member vertex ids, original numbering.
	Vertices []int

	// Weight is the sum of the member vertices' weights.
	Weight int64

	// Size is len(Vertices), kept as a field to mirror the reference
	// implementation's result struct and to make size comparisons cheap.
	Size int

	// BranchCount is the number of branch-and-bound recursions the search
	// performed, for callers that want to log search progress.
	BranchCount uint64
}

// IsClique reports whether every pair of c's member vertices is adjacent in
// g. An empty or singleton clique is trivially valid.
func IsClique(c *Clique, g *graphview.Graph) bool {
	for i := 0; i < len(c.Vertices)-1; i++ {
		for j := i + 1; j < len(c.Vertices); j++ {
			if !g.Adjacent(c.Vertices[i], c.Vertices[j]) {
				return false
			}
		}
	}

	return true
}
