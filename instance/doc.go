// Package instance models a tour-variance test case: a fixed-size set of
// integer points on a square grid.
//
// Instances come from one of two places:
//
//   - Generate samples N=200 points in [0,500]² from an rng.XorShift
//     seeded by the caller, drawing x then y for each point.
//   - Parse reads the plain-text form written by WriteTo:
//
//     N
//     x0 y0
//     x1 y1
//     ...
//
// Both paths produce an immutable *Instance; Parse(String()) reproduces
// the original point sequence exactly.
package instance
