package otable

import "errors"

// Sentinel errors for the otable package.
var (
	// ErrPartitionTooLarge indicates a partition size too large to build a
	// dense 2^s table for (s must fit the module's uint64 masks).
	ErrPartitionTooLarge = errors.New("otable: partition size exceeds addressable bit-table space")

	// ErrBudgetExceeded indicates the combined size of all requested tables
	// (sum of 2^s_i) exceeds MaxTotalEntries, the configured memory budget.
	// Per spec.md §9, silently allocating tens of gigabytes is not acceptable;
	// callers must choose a smaller partition limit L instead.
	ErrBudgetExceeded = errors.New("otable: combined optimal-table size exceeds memory budget")
)

// MaxTotalEntries bounds the combined number of int64 table entries Build
// will allocate across all partitions (sum of 2^s_i). At 8 bytes per entry
// this caps optimal-table memory at 8 GiB.
const MaxTotalEntries = 1 << 30
