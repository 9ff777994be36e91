package judge_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/tourvar/instance"
	"github.com/stretchr/testify/require"
)

// square returns the 10×10 square (0,0),(0,10),(10,10),(10,0).
func square(t *testing.T) *instance.Instance {
	t.Helper()
	in, err := instance.New([]instance.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}})
	require.NoError(t, err)
	return in
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// lines renders perm one value per line.
func lines(perm []int) string {
	var sb strings.Builder
	for _, v := range perm {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte('\n')
	}
	return sb.String()
}
