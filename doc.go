// Package tourvar is the tooling for a tour-variance optimisation contest:
// an instance generator, an answer judge and a local tester.
//
// The problem: given N points on a plane, output a permutation of the
// points that forms a closed tour whose edge lengths are as uniform as
// possible. A tour with edge-length variance v scores ceil(1e6 / (1 + v)).
//
// Packages:
//
//	rng/      — xorshift64 generator with unbiased bounded draws
//	instance/ — point sets: seeded sampling, text parsing and printing
//	judge/    — answer reading, tagged validation, scoring
//	tester/   — run a solver over many seeds in parallel and summarise
//	store/    — SQLite persistence for tester runs
//
// Binaries live under cmd/: generator, judge and tester.
//
// Quick example (a 10×10 square toured in order scores the maximum):
//
//	(0,10)───(10,10)
//	  │          │
//	(0,0)────(10,0)
//
//	go run ./cmd/generator 42 > in.txt
//	go run ./cmd/judge in.txt out.txt
package tourvar
