// Package judge validates and scores contestant tours.
//
// A submission is a permutation of point indices read as one integer per
// line. The judge closes it into a cycle, measures every edge, and scores
// the population variance v of the edge lengths as
//
//	score = ceil(1e6 / (1 + v))
//
// so a perfectly uniform tour earns MaxScore.
//
// Validation is a fixed sequence of pure checks (length, range, coverage)
// that stops at the first failure. Every failure is a *Error tagged with a
// Kind; callers branch with errors.Is against the package sentinels or
// with KindOf. Nothing in this package logs, panics on input, or exits;
// turning a failure into a process status is the caller's job.
package judge
