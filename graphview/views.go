package graphview

// InducedSubgraph builds the subgraph induced by seq, where new vertex i
// corresponds to old vertex seq[i]. seq may repeat vertices (the orchestrator
// pads unused partition slots with vertex 0 — see otclique's
// buildPaddedSeq): callers are responsible for ensuring that
// any padding vertices are never selected by downstream search, which holds
// because the solver only ever sets candidate bits for the real, non-padded
// slots of a partition.
func (g *Graph) InducedSubgraph(seq []int) (*Graph, error) {
	size := len(seq)
	if size == 0 {
		return &Graph{n: 0, adjacency: nil, weight: nil}, nil
	}
	for _, v := range seq {
		if v < 0 || v >= g.n {
			return nil, ErrOutOfRange
		}
	}

	sub := &Graph{
		n:         size,
		adjacency: make([][]bool, size),
		weight:    make([]int64, size),
	}
	for i := 0; i < size; i++ {
		sub.adjacency[i] = make([]bool, size)
		sub.weight[i] = g.weight[seq[i]]
	}
	for i := 0; i < size; i++ {
		row := g.adjacency[seq[i]]
		for j := 0; j < size; j++ {
			sub.adjacency[i][j] = row[seq[j]]
		}
	}

	return sub, nil
}

// BitAdjacency packs the strict lower triangle of the adjacency matrix into
// words of wordBits bits each. Row v has ceil(v/wordBits) words; bit j of
// word (j / wordBits) of row v is set iff v and j are adjacent, for j < v
// only — the upper triangle and diagonal are never represented, since every
// consumer (the optimal-table DP, the solver's candidate-restriction step)
// only ever needs a vertex's lower-indexed neighbours.
//
// Row 0 is always a single zero word rather than an empty slice: vertex 0
// has no lower-indexed neighbours, but the solver's rooted sweep computes
// its restriction formula generically and does index row 0's first word
// for the very first vertex it visits, expecting it to read as empty.
func (g *Graph) BitAdjacency(wordBits int) ([][]uint64, error) {
	if wordBits < 1 || wordBits > 63 {
		return nil, ErrBadWordBits
	}

	rows := make([][]uint64, g.n)
	for v := 1; v < g.n; v++ {
		words := (v-1)/wordBits + 1
		row := make([]uint64, words)
		adjv := g.adjacency[v]
		for j := 0; j < v; j++ {
			if adjv[j] {
				row[j/wordBits] |= 1 << uint(j%wordBits)
			}
		}
		rows[v] = row
	}
	if g.n > 0 {
		rows[0] = make([]uint64, 1)
	}

	return rows, nil
}

// Complement returns the complement graph: every non-adjacent, distinct
// vertex pair in g becomes adjacent, and vice versa. Vertex weights are
// copied unchanged. This is the basis of the MWVC reduction: the minimum
// weight vertex cover of g is the complement of the maximum weight clique
// found in Complement(g).
func (g *Graph) Complement() *Graph {
	comp := &Graph{
		n:         g.n,
		adjacency: make([][]bool, g.n),
		weight:    make([]int64, g.n),
	}
	copy(comp.weight, g.weight)
	for i := 0; i < g.n; i++ {
		comp.adjacency[i] = make([]bool, g.n)
		for j := 0; j < g.n; j++ {
			if i != j && !g.adjacency[i][j] {
				comp.adjacency[i][j] = true
			}
		}
	}

	return comp
}
