package otclique

import "time"

// Options configures a Solve/SolveMWVC run.
type Options struct {
	// Limit bounds the size of every colour-aligned partition (L in the
	// partitioning scheme); it is also the word size used throughout the
	// bit-packed adjacency and optimal tables. Must be positive and at
	// most 62.
	Limit int

	// Deadline bounds search wall-clock time. Zero means no deadline.
	Deadline time.Duration
}

// Option mutates an Options value; see With* constructors below.
type Option func(*Options)

// WithLimit overrides the partition-size limit.
func WithLimit(limit int) Option {
	return func(o *Options) { o.Limit = limit }
}

// WithDeadline bounds search wall-clock time.
func WithDeadline(d time.Duration) Option {
	return func(o *Options) { o.Deadline = d }
}

// DefaultOptions picks a partition-size limit from the instance size: small
// instances (n <= 1500) can afford a larger limit (more expensive
// precomputation, tighter pruning); larger ones use a smaller one to keep
// the optimal tables and bit-adjacency words cheap to build.
func DefaultOptions(n int) Options {
	limit := 20
	if n <= 1500 {
		limit = 25
	}

	return Options{Limit: limit}
}

// NewOptions builds Options for an instance of size n, applying opts over
// the size-derived defaults.
func NewOptions(n int, opts ...Option) Options {
	o := DefaultOptions(n)
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// VertexCover is a vertex subset, in original vertex numbering, together
// with its total weight.
type VertexCover struct {
	Vertices []int
	Weight   int64

	// BranchCount is the underlying clique search's branch-and-bound
	// recursion count, carried through for callers that want to log it.
	BranchCount uint64
}
