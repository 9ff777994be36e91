package judge

import (
	"fmt"
	"io"

	"github.com/katalvlaran/tourvar/instance"
)

// Result is the outcome of a successful evaluation.
type Result struct {
	Score    int64
	Mean     float64
	Variance float64
	// Edges holds the tour edge lengths; Edges[i] leaves perm[i].
	Edges []float64
}

// Evaluate validates perm against in and scores it.
// No score is computed unless every check passes.
//
// Complexity: O(N).
func Evaluate(in *instance.Instance, perm []int) (Result, error) {
	if in == nil {
		return Result{}, UsageError("no instance")
	}
	if err := Validate(perm, in.N()); err != nil {
		return Result{}, err
	}

	edges := EdgeLengths(in, perm)
	mean, variance := Variance(edges)
	return Result{
		Score:    Score(variance),
		Mean:     mean,
		Variance: variance,
		Edges:    edges,
	}, nil
}

// Run is the whole judge pipeline: parse the instance, read the answer,
// evaluate. Instance parse failures are reported as KindParse.
//
// Complexity: O(N) plus input size.
func Run(instanceText, answer io.Reader) (Result, error) {
	in, err := instance.Parse(instanceText)
	if err != nil {
		return Result{}, &Error{Kind: KindParse, Msg: "malformed instance file", Err: err}
	}
	perm, err := ReadPermutation(answer, in.N())
	if err != nil {
		return Result{}, err
	}
	return Evaluate(in, perm)
}

// String renders the result the way the judge prints it.
func (r Result) String() string {
	return fmt.Sprintf("score:%d", r.Score)
}
