// Package tester runs a contestant solver locally over a range of seeds.
//
// For every seed the runner generates the instance, pipes its text form
// into the solver's stdin, judges whatever the solver prints, and records
// the score. Cases run in parallel up to Config.Workers, each under its
// own timeout. A failing case scores 0 and keeps its failure kind; only
// cancellation of the caller's context stops the sweep.
//
// Configuration is YAML:
//
//	command: ./solver --fast
//	env: [OMP_NUM_THREADS=1]
//	seeds: {from: 1, to: 100}
//	workers: 4
//	timeout: 10s
//	database: results.db
//	log_level: info
package tester
