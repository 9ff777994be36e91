package instance

import "github.com/katalvlaran/tourvar/rng"

// Generate samples an N-point instance from seed.
//
// One generator serves all 2N draws in x, y, x, y, ... order, so the
// output is fully determined by seed. seed==0 selects rng.DefaultSeed.
//
// Complexity: O(N) expected.
func Generate(seed uint64) *Instance {
	r := rng.New(seed)
	points := make([]Point, N)

	var i int
	for i = 0; i < N; i++ {
		points[i].X = drawInclusive(r, MinX, MaxX)
		points[i].Y = drawInclusive(r, MinY, MaxY)
	}
	return &Instance{points: points}
}

// drawInclusive returns a uniform integer in [lo, hi].
// The span is a positive compile-time constant, so IntN cannot fail here.
func drawInclusive(r *rng.XorShift, lo, hi int) int {
	v, _ := r.IntN(hi - lo + 1)
	return v + lo
}
