package otclique

import "errors"

// ErrNilGraph indicates Solve/SolveMWVC was called with a nil graph.
var ErrNilGraph = errors.New("otclique: graph is nil")

// ErrBadLimit indicates a non-positive Options.Limit.
var ErrBadLimit = errors.New("otclique: limit must be positive")
