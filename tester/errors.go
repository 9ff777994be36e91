package tester

import "errors"

var (
	// ErrNoCommand indicates a config without a solver command.
	ErrNoCommand = errors.New("tester: solver command is required")
	// ErrBadSeedRange indicates seeds.from > seeds.to.
	ErrBadSeedRange = errors.New("tester: invalid seed range")
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("tester: workers must be positive")
	// ErrBadTimeout indicates a non-positive per-case timeout.
	ErrBadTimeout = errors.New("tester: timeout must be positive")
	// ErrSolverFailed indicates the solver process could not run or exited non-zero.
	ErrSolverFailed = errors.New("tester: solver failed")
	// ErrTimeout indicates the solver exceeded the per-case timeout.
	ErrTimeout = errors.New("tester: solver timed out")
)
