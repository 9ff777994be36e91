package judge_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tourvar/instance"
	"github.com/katalvlaran/tourvar/judge"
)

// ExampleEvaluate scores a perfect square tour and a crossing one.
func ExampleEvaluate() {
	in, _ := instance.New([]instance.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}})

	res, _ := judge.Evaluate(in, []int{0, 1, 2, 3})
	fmt.Println(res)

	res, _ = judge.Evaluate(in, []int{0, 2, 1, 3})
	fmt.Printf("%s variance=%.4f\n", res, res.Variance)

	_, err := judge.Evaluate(in, []int{0, 1, 1, 3})
	fmt.Println(judge.KindOf(err), err)
	// Output:
	// score:1000000
	// score:189061 variance=4.2893
	// coverage 2 is not used
}

// ExampleRun judges raw instance and answer text.
func ExampleRun() {
	res, err := judge.Run(
		strings.NewReader("3\n0 0\n3 4\n0 4\n"),
		strings.NewReader("0\n1\n2\n\n"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s mean=%.1f\n", res, res.Mean)
	// Output:
	// score:600000 mean=4.0
}
