// Package rng provides the deterministic xorshift64 generator used to
// sample test instances.
//
// The generator is the compatibility anchor of the whole module: the same
// seed must yield the same sequence on every platform and in every
// implementation of the contest tooling, so the transform, the default
// seed and the rejection threshold are fixed.
//
// Concurrency:
//   - *XorShift is NOT goroutine-safe. Create one generator per instance
//     construction; never share it across goroutines.
package rng
