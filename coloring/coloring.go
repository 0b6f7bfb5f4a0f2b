package coloring

import (
	"sort"

	"github.com/otclique/otclique/graphview"
)

func validateLimit(limit int) error {
	if limit <= 0 {
		return ErrBadLimit
	}
	if limit > 62 {
		return ErrLimitTooLarge
	}

	return nil
}

func degrees(g *graphview.Graph) []int {
	n := g.N()
	dg := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.Adjacent(i, j) {
				dg[i]++
			}
		}
	}

	return dg
}

// greedyColor carves vertices (given in sorted order, highest-priority last —
// the walk scans order from its tail towards its head, matching the
// reference DP's "for j = n-1 downto 0" sweep) into colour classes, each an
// independent set of at most colorCap vertices. It returns the resulting
// permutation (new id -> old id, built back-to-front per colour) and the
// size of every colour in build order.
func greedyColor(g *graphview.Graph, order []int, colorCap int) ([]int, []int) {
	n := len(order)
	uncolored := make([]bool, n)
	for j := range uncolored {
		uncolored[j] = true
	}

	seq := make([]int, n)
	var colorSizes []int

	k := n
	for k > 0 {
		i := k
		size := 0
		for j := n - 1; j >= 0; j-- {
			if !uncolored[j] {
				continue
			}
			v := order[j]
			independent := true
			for h := i; h < k; h++ {
				if g.Adjacent(v, seq[h]) {
					independent = false
					break
				}
			}
			if !independent {
				continue
			}
			i--
			seq[i] = v
			uncolored[j] = false
			size++
			if size == colorCap {
				break
			}
		}
		colorSizes = append(colorSizes, size)
		k = i
	}

	return seq, colorSizes
}

// packPartitions greedily bundles colours, processed from the last colour
// built back to the first, into partitions of at most limit vertices. A
// colour is never split across partitions.
func packPartitions(colorSizes []int, limit int) []int {
	sizes := []int{0}
	for i := len(colorSizes) - 1; i >= 0; i-- {
		last := len(sizes) - 1
		if sizes[last]+colorSizes[i] > limit {
			sizes = append(sizes, 0)
			last++
		}
		sizes[last] += colorSizes[i]
	}

	return sizes
}

// colorCapForDensity derives the weighted variant's colour-size cap from
// edge density d: limit when d > 0.5, 8 when 0.4 <= d <= 0.5, 12 when
// 0.3 <= d < 0.4, 20 when 0.2 <= d < 0.3, and limit when d < 0.2. The cap
// never exceeds limit.
func colorCapForDensity(n, m, limit int) int {
	colorCap := limit
	pairs := n * (n - 1) / 2
	density := float64(m) / float64(pairs)
	switch {
	case density > 0.5:
		colorCap = limit
	case density >= 0.4:
		colorCap = 8
	case density >= 0.3:
		colorCap = 12
	case density >= 0.2:
		colorCap = 20
	}
	if colorCap > limit {
		colorCap = limit
	}

	return colorCap
}

// ColorWeighted produces a vertex sequence and partition for a graph whose
// vertex weights are not all equal. Vertices are sorted by weight ascending,
// ties broken by degree descending, then greedily coloured with a
// density-derived cap and packed into partitions (see colorCapForDensity).
func ColorWeighted(g *graphview.Graph, limit int) (Sequence, error) {
	if err := validateLimit(limit); err != nil {
		return Sequence{}, err
	}

	n := g.N()
	dg := degrees(g)
	wt := g.Weights()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		va, vb := order[a], order[b]
		if wt[va] != wt[vb] {
			return wt[va] < wt[vb]
		}

		return dg[va] > dg[vb]
	})

	colorCap := colorCapForDensity(n, g.EdgeCount(), limit)
	seq, colorSizes := greedyColor(g, order, colorCap)
	partitionSizes := packPartitions(colorSizes, limit)

	return Sequence{Perm: seq, PartitionSizes: partitionSizes}, nil
}

// ColorUnweighted produces a vertex sequence and partition for a graph whose
// vertices are treated as uniformly weighted. Vertices are sorted by degree
// ascending and coloured with cap == limit; after packing, both the sequence
// and the partition sizes are reversed, placing the highest-degree vertices
// (which are coloured first) at the front of the new-id order.
func ColorUnweighted(g *graphview.Graph, limit int) (Sequence, error) {
	if err := validateLimit(limit); err != nil {
		return Sequence{}, err
	}

	n := g.N()
	dg := degrees(g)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return dg[order[a]] < dg[order[b]]
	})

	seq, colorSizes := greedyColor(g, order, limit)
	partitionSizes := packPartitions(colorSizes, limit)

	reverseInts(seq)
	reverseInts(partitionSizes)

	return Sequence{Perm: seq, PartitionSizes: partitionSizes}, nil
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
