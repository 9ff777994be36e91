package instance

import (
	"fmt"
	"math"
)

// Sampling domain. Bounds are inclusive on both ends.
const (
	N    = 200
	MinX = 0
	MaxX = 500
	MinY = 0
	MaxY = 500
)

// MaxAbsCoord bounds the magnitude of any coordinate accepted by New and
// Parse. Squared deltas then fit in a uint64.
const MaxAbsCoord = 1 << 30

// maxPrealloc caps slice preallocation driven by an untrusted point count.
const maxPrealloc = 1 << 16

// DefaultSeed is the seed the generator uses when none is given.
const DefaultSeed uint64 = 1

// Point is an integer coordinate pair.
type Point struct {
	X, Y int
}

// Instance is an ordered, immutable sequence of points.
type Instance struct {
	points []Point
}

// New copies points into a fresh Instance.
// Returns ErrEmpty when points is empty and ErrCoordinateRange when a
// coordinate exceeds MaxAbsCoord in magnitude.
//
// Complexity: O(n).
func New(points []Point) (*Instance, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	for i, p := range points {
		if !inRange(p.X) || !inRange(p.Y) {
			return nil, fmt.Errorf("%w: point %d is (%d, %d)", ErrCoordinateRange, i, p.X, p.Y)
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Instance{points: cp}, nil
}

// N returns the number of points.
func (in *Instance) N() int { return len(in.points) }

// Point returns the i-th point.
func (in *Instance) Point(i int) (Point, error) {
	if i < 0 || i >= len(in.points) {
		return Point{}, ErrIndexOutOfRange
	}
	return in.points[i], nil
}

// Points returns a copy of the point sequence.
func (in *Instance) Points() []Point {
	cp := make([]Point, len(in.points))
	copy(cp, in.points)
	return cp
}

// Dist returns the Euclidean distance between points i and j.
// The squared length is computed exactly in uint64 before the root; with
// coordinates bounded by MaxAbsCoord it cannot overflow.
// Callers must pass indices in [0, N); Dist does not re-check them.
//
// Complexity: O(1).
func (in *Instance) Dist(i, j int) float64 {
	var (
		a  = in.points[i]
		b  = in.points[j]
		dx = absDelta(a.X, b.X)
		dy = absDelta(a.Y, b.Y)
	)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

func absDelta(a, b int) uint64 {
	if a < b {
		return uint64(b - a)
	}
	return uint64(a - b)
}

func inRange(v int) bool { return v >= -MaxAbsCoord && v <= MaxAbsCoord }

// Equal reports whether two instances hold the same point sequence.
func (in *Instance) Equal(other *Instance) bool {
	if in == nil || other == nil {
		return in == other
	}
	if len(in.points) != len(other.points) {
		return false
	}
	for i := range in.points {
		if in.points[i] != other.points[i] {
			return false
		}
	}
	return true
}
