// Package judge - permutation validation.
//
// Each check is a pure predicate over (perm, n) returning nil or a tagged
// *Error. Validate runs them in a fixed order and stops at the first
// failure, so a later check may assume the earlier ones passed; each check
// is still safe to call on its own.
package judge

import "fmt"

// Check is one validation stage.
type Check func(perm []int, n int) error

// checks is the validation pipeline, in reporting order.
var checks = []Check{
	CheckLength,
	CheckRange,
	CheckCoverage,
}

// Validate reports whether perm is a permutation of {0..n-1}.
// Together, equal length, in-range values and full coverage force a
// bijection, so duplicates surface as a coverage failure.
//
// Complexity: O(n) time, O(n) space.
func Validate(perm []int, n int) error {
	for _, check := range checks {
		if err := check(perm, n); err != nil {
			return err
		}
	}
	return nil
}

// CheckLength requires len(perm) == n.
//
// Complexity: O(1).
func CheckLength(perm []int, n int) error {
	if len(perm) != n {
		return &Error{
			Kind:  KindLength,
			Value: len(perm),
			Msg:   fmt.Sprintf("answer length != N (got %d, want %d)", len(perm), n),
		}
	}
	return nil
}

// CheckRange requires every entry to lie in [0, n) and reports the first
// offending position.
//
// Complexity: O(len(perm)).
func CheckRange(perm []int, n int) error {
	for i, v := range perm {
		if v < 0 || v >= n {
			return &Error{
				Kind:  KindRange,
				Index: i,
				Value: v,
				Msg:   fmt.Sprintf("%dth answer is out of range: %d not in [0, %d)", i, v, n),
			}
		}
	}
	return nil
}

// CheckCoverage requires every index in [0, n) to appear in perm and
// reports the smallest missing one. Out-of-range entries are ignored.
//
// Complexity: O(n + len(perm)) time, O(n) space.
func CheckCoverage(perm []int, n int) error {
	if n <= 0 {
		return nil
	}
	used := make([]bool, n)
	for _, v := range perm {
		if v >= 0 && v < n {
			used[v] = true
		}
	}
	for i := 0; i < n; i++ {
		if !used[i] {
			return &Error{
				Kind:  KindCoverage,
				Index: i,
				Msg:   fmt.Sprintf("%d is not used", i),
			}
		}
	}
	return nil
}
