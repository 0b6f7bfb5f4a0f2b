package solver

// Run executes the rooted sweep followed by the full branch-and-bound
// search and returns the best clique found (as new/reindexed ids), its
// weight, and whether the deadline cut the search short.
//
// A timed-out search still returns the best incumbent found so far: the
// invariant that current[:currentSize] is always a genuine clique prefix
// holds at every point in the recursion, so record is never corrupted by
// an interrupted branch.
func (e *Engine) Run() ([]int, int64, bool) {
	e.sweepAndSearch()

	record := make([]int, e.recordSize)
	copy(record, e.record[:e.recordSize])

	return record, e.recordWeight, e.timedOut
}

// BranchCount reports how many times expand recursed, valid after Run. It
// exists for callers that want to log search progress, mirroring the
// reference implementation's branch-count printf.
func (e *Engine) BranchCount() uint64 {
	return e.branchCount
}

// sweepAndSearch performs the rooted sweep: for each new-id vertex v in
// ascending order, seed current = {v} and recurse into expand restricted to
// v's lower-id neighbours, then cache the resulting record weight in
// c[v]. Once stop vertices have been swept (n for unweighted graphs, 0.8n
// for weighted ones — weighted instances see diminishing pruning benefit
// from completing the full sweep), the remaining candidate bits are filled
// in without recursing per-vertex and a single final root search covers
// whatever the sweep left unexplored.
func (e *Engine) sweepAndSearch() {
	stop := e.nReal
	if e.weighted {
		stop = int(float64(e.nReal) * 0.8)
	}

	set := make([]uint64, e.numPartitions)
	l := 0
	i, j := 0, 0

outer:
	for ; i < e.numPartitions; i++ {
		for ; j < e.partitionSizes[i]; j++ {
			if l == stop {
				break outer
			}
			l++

			set[i] |= uint64(1) << uint(j)
			v := i*e.limit + j

			// set2 is always sized i+1 (one word per partition up to and
			// including v's own), matching what expand(set2, i+1, ...)
			// expects; but only the first k = (v-1)/limit+1 words (v's
			// actual lower-id neighbour partitions) are filled from
			// adjacency — any remaining words up to index i stay zero.
			k := (v-1)/e.limit + 1
			set2 := make([]uint64, i+1)
			adjv := e.adjacency[v]
			var upper int64
			for h := k - 1; h >= 0; h-- {
				set2[h] = set[h] & adjv[h]
				upper += e.tables[h][set2[h]]
			}

			e.current[0] = v
			e.currentSize = 1
			e.currentWeight = e.weight[v]

			if e.currentWeight+upper > e.recordWeight {
				e.expand(set2, i+1, upper)
			}
			e.c[v] = e.recordWeight
		}
		j = 0
	}

	// Complete the candidate set over whatever the sweep left unexplored,
	// then run one final unrestricted root search.
	for ; i < e.numPartitions; i++ {
		for ; j < e.partitionSizes[i]; j++ {
			set[i] |= uint64(1) << uint(j)
		}
		j = 0
	}

	var upper int64
	for h := 0; h < e.numPartitions; h++ {
		upper += e.tables[h][set[h]]
	}
	e.currentSize = 0
	e.currentWeight = 0
	if upper > e.recordWeight {
		e.expand(set, e.numPartitions, upper)
	}
}

// expand recurses over the candidate set, always branching on the
// highest-new-id vertex remaining in the highest-index nonempty partition
// (descending order, via msb lookups), with two independent pruning checks:
// the optimal-table bound (upper) and the swept lower-bound cache (c[v]).
func (e *Engine) expand(set []uint64, setSize int, upper int64) {
	e.branchCount++
	if e.branchCount%100000 == 0 && e.deadline.Exceeded() {
		e.timedOut = true
	}
	if e.timedOut {
		return
	}

	for i := setSize - 1; i >= 0; i-- {
		for set[i] != 0 {
			if e.currentWeight+upper <= e.recordWeight {
				return
			}

			msb := int(e.msb[set[i]])
			vertex := i*e.limit + msb
			if e.currentWeight+e.c[vertex] <= e.recordWeight {
				return
			}

			// Include vertex.
			e.current[e.currentSize] = vertex
			e.currentSize++
			e.currentWeight += e.weight[vertex]

			set2Size := 0
			if vertex != 0 {
				set2Size = (vertex-1)/e.limit + 1
			}
			set2 := make([]uint64, set2Size)
			adjv := e.adjacency[vertex]
			var newUpper int64
			for h := set2Size - 1; h >= 0; h-- {
				set2[h] = set[h] & adjv[h]
				newUpper += e.tables[h][set2[h]]
			}
			if e.currentWeight+newUpper > e.recordWeight {
				e.expand(set2, set2Size, newUpper)
			}

			e.currentSize--
			e.currentWeight -= e.weight[vertex]
			if e.timedOut {
				return
			}

			// Exclude vertex: clear its bit and update upper incrementally
			// rather than recomputing the whole partition's table lookup.
			upper -= e.tables[i][set[i]]
			set[i] &^= uint64(1) << uint(msb)
			upper += e.tables[i][set[i]]
		}
	}

	if e.currentWeight > e.recordWeight {
		copy(e.record, e.current[:e.currentSize])
		e.recordSize = e.currentSize
		e.recordWeight = e.currentWeight
	}
}
