package judge_test

import (
	"testing"

	"github.com/katalvlaran/tourvar/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Identity(t *testing.T) {
	for _, n := range []int{1, 2, 4, 200} {
		assert.NoError(t, judge.Validate(identity(n), n), "n=%d", n)
	}
}

func TestValidate_Order(t *testing.T) {
	// Wrong length wins over an out-of-range value.
	err := judge.Validate([]int{9, 0}, 3)
	assert.Equal(t, judge.KindLength, judge.KindOf(err))

	// Range wins over coverage, and the first bad position is reported.
	err = judge.Validate([]int{0, 0, 7, -1}, 4)
	var je *judge.Error
	require.ErrorAs(t, err, &je)
	assert.Equal(t, judge.KindRange, je.Kind)
	assert.Equal(t, 2, je.Index)
	assert.Equal(t, 7, je.Value)
	assert.Contains(t, je.Error(), "2th answer is out of range")
}

func TestChecks_Standalone(t *testing.T) {
	assert.NoError(t, judge.CheckLength([]int{5, 5}, 2))
	assert.NoError(t, judge.CheckRange([]int{1, 1, 0}, 2))

	// CheckCoverage tolerates out-of-range entries when called on its own.
	err := judge.CheckCoverage([]int{3, 0, 2, 99}, 4)
	var je *judge.Error
	require.ErrorAs(t, err, &je)
	assert.Equal(t, judge.KindCoverage, je.Kind)
	assert.Equal(t, 1, je.Index)
	assert.Equal(t, "1 is not used", je.Error())

	assert.NoError(t, judge.CheckCoverage(nil, 0))
}

func TestKind_Names(t *testing.T) {
	assert.Equal(t, "coverage", judge.KindCoverage.String())
	assert.Equal(t, "trailing-output", judge.KindTrailingOutput.String())
	assert.Equal(t, "kind(42)", judge.Kind(42).String())
	assert.Nil(t, judge.Kind(42).Sentinel())
	assert.Equal(t, judge.Kind(0), judge.KindOf(nil))
}
