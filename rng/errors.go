package rng

import "errors"

var (
	// ErrZeroBound indicates Uint64N/IntN was called with an empty range.
	ErrZeroBound = errors.New("rng: bound must be positive")
	// ErrBadSeed indicates a seed string that is not a 64-bit integer.
	ErrBadSeed = errors.New("rng: malformed seed")
)
