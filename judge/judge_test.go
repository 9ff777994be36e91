package judge_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/tourvar/instance"
	"github.com/katalvlaran/tourvar/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_SquareTour(t *testing.T) {
	res, err := judge.Evaluate(square(t), []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 10, 10}, res.Edges)
	assert.Equal(t, 10.0, res.Mean)
	assert.Equal(t, 0.0, res.Variance)
	assert.Equal(t, judge.MaxScore, res.Score)
	assert.Equal(t, "score:1000000", res.String())
}

func TestEvaluate_CrossingTour(t *testing.T) {
	res, err := judge.Evaluate(square(t), []int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 4.2893218813452485, res.Variance, 1e-12)
	assert.Equal(t, int64(189061), res.Score)
	assert.Less(t, res.Score, judge.MaxScore)
}

func TestEvaluate_AllPointsIdentical(t *testing.T) {
	pts := make([]instance.Point, instance.N)
	for i := range pts {
		pts[i] = instance.Point{X: 250, Y: 250}
	}
	in, err := instance.New(pts)
	require.NoError(t, err)

	res, err := judge.Evaluate(in, identity(instance.N))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Variance)
	assert.Equal(t, judge.MaxScore, res.Score)
}

// TestEvaluate_GoldenGenerated pins identity-tour scores on generated
// instances against the reference judge.
func TestEvaluate_GoldenGenerated(t *testing.T) {
	res, err := judge.Evaluate(instance.Generate(1), identity(instance.N))
	require.NoError(t, err)
	assert.InDelta(t, 14238.270467433025, res.Variance, 1e-9)
	assert.Equal(t, int64(71), res.Score)

	res, err = judge.Evaluate(instance.Generate(42), identity(instance.N))
	require.NoError(t, err)
	assert.InDelta(t, 16366.230736144067, res.Variance, 1e-9)
	assert.Equal(t, int64(62), res.Score)
}

func TestEvaluate_Rejections(t *testing.T) {
	in := instance.Generate(1)
	n := instance.N

	dup := identity(n)
	dup[1] = 0

	shifted := identity(n)
	shifted[0] = n - 1

	neg := identity(n)
	neg[5] = -1

	big := identity(n)
	big[7] = n

	cases := []struct {
		name  string
		perm  []int
		kind  judge.Kind
		index int
	}{
		{"short", identity(n - 1), judge.KindLength, 0},
		{"long", identity(n + 1), judge.KindLength, 0},
		{"empty", nil, judge.KindLength, 0},
		{"duplicate", dup, judge.KindCoverage, 1},
		{"missing zero", shifted, judge.KindCoverage, 0},
		{"negative", neg, judge.KindRange, 5},
		{"too large", big, judge.KindRange, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := judge.Evaluate(in, tc.perm)
			require.Error(t, err)
			assert.Equal(t, judge.Result{}, res)
			assert.Equal(t, tc.kind, judge.KindOf(err))
			assert.True(t, errors.Is(err, tc.kind.Sentinel()))

			var je *judge.Error
			require.ErrorAs(t, err, &je)
			assert.Equal(t, tc.index, je.Index)
		})
	}
}

func TestEvaluate_NilInstance(t *testing.T) {
	_, err := judge.Evaluate(nil, []int{0})
	assert.ErrorIs(t, err, judge.ErrUsage)
}

func TestRun_EndToEnd(t *testing.T) {
	in := instance.Generate(1)
	res, err := judge.Run(strings.NewReader(in.String()), strings.NewReader(lines(identity(instance.N))+"\n  \n"))
	require.NoError(t, err)
	assert.Equal(t, int64(71), res.Score)
}

func TestRun_BadInstance(t *testing.T) {
	_, err := judge.Run(strings.NewReader("2\n1 1\n"), strings.NewReader("0\n1\n"))
	require.Error(t, err)
	assert.Equal(t, judge.KindParse, judge.KindOf(err))
	assert.ErrorIs(t, err, judge.ErrParse)
	assert.ErrorIs(t, err, instance.ErrMalformed)
}

func TestRun_AnswerFailuresPropagate(t *testing.T) {
	text := square(t).String()
	cases := []struct {
		answer string
		kind   judge.Kind
	}{
		{"0\n1\n2\n", judge.KindLength},
		{"0\n1\nx\n3\n", judge.KindParse},
		{"0\n1\n2\n3\n4\n", judge.KindTrailingOutput},
		{"0\n1\n2\n4\n", judge.KindRange},
		{"0\n1\n2\n2\n", judge.KindCoverage},
	}
	for _, tc := range cases {
		_, err := judge.Run(strings.NewReader(text), strings.NewReader(tc.answer))
		assert.Equal(t, tc.kind, judge.KindOf(err), "answer %q: %v", tc.answer, err)
	}
}
