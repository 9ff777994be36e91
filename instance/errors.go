package instance

import "errors"

var (
	// ErrMalformed indicates instance text that does not follow the
	// "N, then N lines of x y" layout. Wrapped errors name the 1-based line.
	ErrMalformed = errors.New("instance: malformed input")
	// ErrEmpty indicates an instance without points.
	ErrEmpty = errors.New("instance: no points")
	// ErrCoordinateRange indicates a coordinate whose magnitude exceeds
	// MaxAbsCoord.
	ErrCoordinateRange = errors.New("instance: coordinate out of range")
	// ErrIndexOutOfRange indicates a point index outside [0, N).
	ErrIndexOutOfRange = errors.New("instance: point index out of range")
)
