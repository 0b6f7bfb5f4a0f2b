package solver

// Engine holds every piece of mutable state the branch-and-bound search
// touches. A dedicated struct (rather than package-level globals, which is
// how the search this package ports was originally written) keeps the
// engine safe to build more than once in the same process — one per Solve
// call, never shared.
type Engine struct {
	// Static inputs, built once by graphview/coloring/otable/msbtable and
	// handed in read-only.
	adjacency      [][]uint64 // bit adjacency of the reindexed graph G', word size limit
	tables         [][]int64  // tables[i] is partition i's optimal table
	weight         []int64    // weight[v], v a new (reindexed) id, len == numPartitions*limit
	msb            []int64    // msbtable.Build(limit)
	partitionSizes []int
	limit          int
	numPartitions  int
	nReal          int // count of genuine (non-padding) vertices
	weighted       bool
	deadline       Deadline

	// Search state.
	c            []int64 // per-vertex lower-bound cache, len == numPartitions*limit
	current      []int
	currentSize  int
	currentWeight int64
	record       []int
	recordSize   int
	recordWeight int64
	branchCount  uint64
	timedOut     bool
}

// recordSentinel is record_weight's initial value: low enough that any
// genuine clique weight beats it on the first comparison.
const recordSentinel = -(int64(1) << 62)

// cSentinel is c[v]'s initial value, before the rooted sweep has reached v.
// It must read as "no information yet" rather than "nothing reachable": the
// final, unrestricted search after the sweep (see sweepAndSearch) can still
// branch into vertices the sweep never got to (when it stopped early at
// the l == stop cutoff), and the c[v] prune in expand must not cut those
// branches off before they get a chance to extend the record. A very large
// positive value keeps current_weight + c[v] <= record_weight false until
// the sweep legitimately tightens it down.
const cSentinel = int64(1) << 62

// NewEngine builds a search engine over a reindexed graph G' whose bit
// adjacency, per-partition optimal tables, and per-vertex weights are
// supplied by the caller (graphview, otable, and coloring respectively).
// nReal is the count of genuine vertices in the original (pre-padding,
// pre-reindex) graph.
func NewEngine(adjacency [][]uint64, tables [][]int64, weight []int64, partitionSizes []int, msb []int64, limit, nReal int, weighted bool, deadline Deadline) (*Engine, error) {
	if nReal <= 0 {
		return nil, ErrEmptyGraph
	}
	numPartitions := len(partitionSizes)
	padded := numPartitions * limit
	if len(adjacency) != padded || len(weight) != padded || len(tables) != numPartitions {
		return nil, ErrShapeMismatch
	}

	e := &Engine{
		adjacency:      adjacency,
		tables:         tables,
		weight:         weight,
		msb:            msb,
		partitionSizes: partitionSizes,
		limit:          limit,
		numPartitions:  numPartitions,
		nReal:          nReal,
		weighted:       weighted,
		deadline:       deadline,
		c:              make([]int64, padded),
		current:        make([]int, nReal),
		record:         make([]int, nReal),
		recordWeight:   recordSentinel,
	}
	for i := range e.c {
		e.c[i] = cSentinel
	}

	return e, nil
}
