package graphview

import "errors"

// Sentinel errors for graphview operations. Do not wrap these with
// fmt.Errorf where the sentinel alone is sufficient; callers rely on
// errors.Is.
var (
	// ErrBadShape indicates a requested vertex count was not positive.
	ErrBadShape = errors.New("graphview: vertex count must be > 0")

	// ErrOutOfRange indicates a vertex id fell outside [0, n).
	ErrOutOfRange = errors.New("graphview: vertex id out of range")

	// ErrNonPositiveWeight indicates a vertex weight was <= 0. OTClique
	// assumes strictly positive integer weights throughout.
	ErrNonPositiveWeight = errors.New("graphview: vertex weight must be positive")

	// ErrBadWordBits indicates a bit-adjacency word size outside [1, 63].
	ErrBadWordBits = errors.New("graphview: word size must be in [1, 63]")
)
