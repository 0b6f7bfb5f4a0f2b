package coloring

import "errors"

// Sentinel errors for the coloring package.
var (
	// ErrBadLimit indicates a non-positive partition size limit.
	ErrBadLimit = errors.New("coloring: limit must be > 0")

	// ErrLimitTooLarge indicates a limit too large to address with the
	// module's uint64 partition masks and msbtable (see graphview.ErrBadWordBits).
	ErrLimitTooLarge = errors.New("coloring: limit exceeds addressable bit-table space")
)
