package judge

import (
	"math"

	"github.com/katalvlaran/tourvar/instance"
)

// MaxScore is the score of a tour whose edges all have the same length.
const MaxScore int64 = 1_000_000

// EdgeLengths returns the N edge lengths of the closed tour perm:
// edge i joins perm[i] and perm[(i+1) mod N].
// perm must already satisfy Validate for in.N().
//
// Complexity: O(N).
func EdgeLengths(in *instance.Instance, perm []int) []float64 {
	var (
		n   = len(perm)
		out = make([]float64, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = in.Dist(perm[i], perm[(i+1)%n])
	}
	return out
}

// Variance returns the arithmetic mean and the population variance
// (divisor len(xs)) of xs. Both sums run left to right so the result is
// reproducible bit for bit. Empty input yields zeros.
//
// Complexity: O(len(xs)).
func Variance(xs []float64) (mean, variance float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var (
		sum float64
		d   float64
	)
	for _, x := range xs {
		sum += x
	}
	mean = sum / float64(len(xs))

	for _, x := range xs {
		d = x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return mean, variance
}

// Score maps a variance to an integer score in [1, MaxScore]:
// ceil(1e6 / (1 + variance)).
//
// Complexity: O(1).
func Score(variance float64) int64 {
	return int64(math.Ceil(float64(MaxScore) / (1 + variance)))
}
