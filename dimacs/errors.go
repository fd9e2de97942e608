package dimacs

import "errors"

var (
	// ErrMalformedHeader indicates a missing, duplicate or unparsable header.
	ErrMalformedHeader = errors.New("dimacs: malformed header")

	// ErrMalformedLine indicates an edge or arc line that cannot be parsed.
	ErrMalformedLine = errors.New("dimacs: malformed line")

	// ErrCountMismatch indicates the number of edges read differs from the
	// count announced in the header.
	ErrCountMismatch = errors.New("dimacs: edge count mismatch")
)
