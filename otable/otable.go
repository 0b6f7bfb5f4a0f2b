package otable

import "github.com/otclique/otclique/graphview"

// Build computes one optimal table per partition. g must already be the
// reordered/reindexed graph G' (partition i occupying new ids
// [i*limit, i*limit+partitionSizes[i])); Build carves each partition's
// induced subgraph out of g itself rather than requiring a separate
// per-partition graph from the caller.
func Build(partitionSizes []int, g *graphview.Graph, limit int) ([][]int64, error) {
	tables := make([][]int64, len(partitionSizes))

	var totalEntries int64
	for _, s := range partitionSizes {
		if s < 0 || s > 62 {
			return nil, ErrPartitionTooLarge
		}
		totalEntries += int64(1) << uint(s)
		if totalEntries > MaxTotalEntries {
			return nil, ErrBudgetExceeded
		}
	}

	for i, s := range partitionSizes {
		table, err := buildOne(g, limit, i, s)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}

	return tables, nil
}

// buildOne runs the subset-DP for a single partition of size s, whose
// vertices occupy new ids [limit*i, limit*i+s) in g.
func buildOne(g *graphview.Graph, limit, i, s int) ([]int64, error) {
	if s == 0 {
		return []int64{0}, nil
	}

	seq := make([]int, s)
	for j := 0; j < s; j++ {
		seq[j] = limit*i + j
	}
	h, err := g.InducedSubgraph(seq)
	if err != nil {
		return nil, err
	}
	rows, err := h.BitAdjacency(s)
	if err != nil {
		return nil, err
	}

	// adj0[j] holds vertex j's neighbours among 0..j-1, as a single word
	// (a partition's own word size equals its vertex count, so every row
	// needs at most one word).
	adj0 := make([]uint64, s)
	for j := 1; j < s; j++ {
		adj0[j] = rows[j][0]
	}

	table := make([]int64, int64(1)<<uint(s))
	table[0] = 0
	for j := 0; j < s; j++ {
		start := uint64(1) << uint(j)
		end := uint64(1) << uint(j+1)
		adjj := adj0[j]
		weightj := h.Weight(j)
		for m := start; m < end; m++ {
			unused := table[m-start]
			used := table[adjj&m] + weightj
			if used > unused {
				table[m] = used
			} else {
				table[m] = unused
			}
		}
	}

	return table, nil
}
