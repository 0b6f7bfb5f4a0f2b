package dimacs

import "errors"

// ErrMalformedLine indicates a recognised line kind with the wrong number
// or type of fields.
var ErrMalformedLine = errors.New("dimacs: malformed line")

// ErrUnknownLineKind indicates a line whose first token is not one of
// c, p, e, n, d, v, x.
var ErrUnknownLineKind = errors.New("dimacs: unknown line kind")

// ErrDuplicateHeader indicates a second p line in the same input.
var ErrDuplicateHeader = errors.New("dimacs: duplicate p line")

// ErrMissingHeader indicates an e or n line before any p line, or an input
// with no p line at all.
var ErrMissingHeader = errors.New("dimacs: e/n line before p header")
