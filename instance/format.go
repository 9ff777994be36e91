package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes the text form: N on its own line, then "x y" per point.
// It implements io.WriterTo.
//
// Complexity: O(N).
func (in *Instance) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64

	n, err := fmt.Fprintf(bw, "%d\n", len(in.points))
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, p := range in.points {
		n, err = fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// String returns the text form written by WriteTo.
func (in *Instance) String() string {
	var sb strings.Builder
	_, _ = in.WriteTo(&sb)
	return sb.String()
}

// Parse reads an instance in the text form produced by WriteTo.
//
// The first line holds N (≥1); each of the next N lines holds exactly two
// whitespace-separated integers. Anything after the N-th point line is
// ignored. Every failure wraps ErrMalformed and names the 1-based line.
//
// Complexity: O(N).
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	line := 0

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	head, ok := next()
	if !ok {
		return nil, scanErr(sc, 1, "missing point count")
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: point count %q is not an integer", ErrMalformed, line, head)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: line %d: point count %d must be positive", ErrMalformed, line, n)
	}

	points := make([]Point, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		text, ok := next()
		if !ok {
			return nil, scanErr(sc, line+1, fmt.Sprintf("expected %d points, found %d", n, i))
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		points = append(points, p)
	}
	return &Instance{points: points}, nil
}

// scanErr reports an early end of input, preferring the reader's own error.
func scanErr(sc *bufio.Scanner, line int, msg string) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
	}
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, msg)
}

func parsePoint(text string) (Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("want 2 integers, got %d fields", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, fmt.Errorf("x %q is not an integer", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Point{}, fmt.Errorf("y %q is not an integer", fields[1])
	}
	if !inRange(x) || !inRange(y) {
		return Point{}, fmt.Errorf("point (%d, %d) outside ±%d", x, y, MaxAbsCoord)
	}
	return Point{X: x, Y: y}, nil
}
