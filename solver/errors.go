package solver

import "errors"

// ErrEmptyGraph indicates the engine was built over a graph with no vertices.
var ErrEmptyGraph = errors.New("solver: graph has no vertices")

// ErrShapeMismatch indicates the adjacency, weight, table, and partition-size
// inputs handed to NewEngine are not mutually consistent.
var ErrShapeMismatch = errors.New("solver: inconsistent engine input shapes")
