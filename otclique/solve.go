package otclique

import (
	"sort"

	"github.com/otclique/otclique/clique"
	"github.com/otclique/otclique/coloring"
	"github.com/otclique/otclique/graphview"
	"github.com/otclique/otclique/msbtable"
	"github.com/otclique/otclique/otable"
	"github.com/otclique/otclique/solver"
)

// isWeighted reports whether g's vertices do not all share the same weight,
// the same test the reference precomputation runs to pick between the
// weighted and unweighted colouring strategies.
func isWeighted(g *graphview.Graph) bool {
	w := g.Weights()
	for _, x := range w[1:] {
		if x != w[0] {
			return true
		}
	}

	return false
}

// buildPaddedSeq expands seq's contiguous permutation into one slot per
// partition*limit, filling each partition's unused tail with old vertex 0.
func buildPaddedSeq(seq coloring.Sequence, limit int) []int {
	numPartitions := len(seq.PartitionSizes)
	padded := make([]int, numPartitions*limit)
	pos := 0
	for i, s := range seq.PartitionSizes {
		for j := 0; j < limit; j++ {
			if j < s {
				padded[i*limit+j] = seq.Perm[pos]
				pos++
			}
		}
	}

	return padded
}

// Solve runs the maximum weight clique search over g and returns the best
// clique found (original vertex numbering), whether the deadline cut the
// search short, and any precomputation error.
func Solve(g *graphview.Graph, opts Options) (*clique.Clique, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if opts.Limit <= 0 {
		return nil, false, ErrBadLimit
	}
	if g.N() == 0 {
		return &clique.Clique{}, false, nil
	}

	limit := opts.Limit
	weighted := isWeighted(g)

	var seq coloring.Sequence
	var err error
	if weighted {
		seq, err = coloring.ColorWeighted(g, limit)
	} else {
		seq, err = coloring.ColorUnweighted(g, limit)
	}
	if err != nil {
		return nil, false, err
	}

	padded := buildPaddedSeq(seq, limit)
	gPrime, err := g.InducedSubgraph(padded)
	if err != nil {
		return nil, false, err
	}

	adjacency, err := gPrime.BitAdjacency(limit)
	if err != nil {
		return nil, false, err
	}
	tables, err := otable.Build(seq.PartitionSizes, gPrime, limit)
	if err != nil {
		return nil, false, err
	}
	msb, err := msbtable.Build(limit)
	if err != nil {
		return nil, false, err
	}

	deadline := solver.NoDeadline()
	if opts.Deadline > 0 {
		deadline = solver.After(opts.Deadline)
	}

	engine, err := solver.NewEngine(adjacency, tables, gPrime.Weights(), seq.PartitionSizes, msb, limit, g.N(), weighted, deadline)
	if err != nil {
		return nil, false, err
	}

	record, weight, timedOut := engine.Run()

	vertices := make([]int, len(record))
	for i, v := range record {
		vertices[i] = padded[v]
	}
	sort.Ints(vertices)

	return &clique.Clique{Vertices: vertices, Weight: weight, Size: len(vertices), BranchCount: engine.BranchCount()}, timedOut, nil
}

// SolveMWVC runs the minimum weight vertex cover search over g: the maximum
// weight clique of g's complement, subtracted from g's full vertex set.
func SolveMWVC(g *graphview.Graph, opts Options) (*VertexCover, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}

	comp := g.Complement()
	mwc, timedOut, err := Solve(comp, opts)
	if err != nil {
		return nil, false, err
	}

	inClique := make(map[int]bool, len(mwc.Vertices))
	for _, v := range mwc.Vertices {
		inClique[v] = true
	}

	var vertices []int
	var weight int64
	for v := 0; v < g.N(); v++ {
		if !inClique[v] {
			vertices = append(vertices, v)
			weight += g.Weight(v)
		}
	}

	return &VertexCover{Vertices: vertices, Weight: weight, BranchCount: mwc.BranchCount}, timedOut, nil
}
