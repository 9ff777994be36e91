// Package rng - xorshift64 generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical stream across platforms.
//   - Exactness: all arithmetic is uint64 with natural wraparound.
//   - Safety: no panics; only sentinel errors from errors.go.
package rng

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSeed is the state used when callers pass seed==0.
const DefaultSeed uint64 = 88172645463325252

// XorShift is a 64-bit xorshift generator (shifts 13, 7, 17).
type XorShift struct {
	x uint64
}

// New returns a generator seeded with seed.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed uint64) *XorShift {
	var s uint64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return &XorShift{x: s}
}

// Next advances the state and returns it.
//
// Complexity: O(1).
func (r *XorShift) Next() uint64 {
	r.x ^= r.x << 13
	r.x ^= r.x >> 7
	r.x ^= r.x << 17
	return r.x
}

// Uint64N returns a uniform value in [0, n) without modulo bias.
//
// Raw draws at or above upper = (2^64-1)/n*n are rejected and redrawn.
// The expected number of draws is below 2 for every n, so the loop is not
// capped. For n==0, returns ErrZeroBound.
//
// Complexity: O(1) expected.
func (r *XorShift) Uint64N(n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrZeroBound
	}

	var (
		upper uint64
		v     uint64
	)
	upper = math.MaxUint64 / n * n
	v = r.Next()
	for v >= upper {
		v = r.Next()
	}
	return v % n, nil
}

// IntN is Uint64N for int bounds. For n<=0, returns ErrZeroBound.
//
// Complexity: O(1) expected.
func (r *XorShift) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrZeroBound
	}
	v, err := r.Uint64N(uint64(n))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// ParseSeed converts a decimal seed into generator state.
//
// Unsigned values up to 2^64-1 are taken verbatim. Negative values are
// accepted down to -2^63 and mapped to their two's complement bit pattern,
// which is what the reference tooling ends up with after masking.
//
// Complexity: O(len(s)).
func ParseSeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSeed, s)
	}
	return uint64(i), nil
}
