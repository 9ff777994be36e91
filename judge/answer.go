package judge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single answer line; longer lines are parse errors.
const maxLineBytes = 1 << 20

// maxPrealloc caps preallocation driven by the caller's point count.
const maxPrealloc = 1 << 16

// ReadPermutation reads exactly n integers, one per line, from r.
//
// Rules, in the order they are applied:
//   - fewer than n lines ⇒ KindLength;
//   - a line among the first n that is not an integer (surrounding
//     whitespace allowed) ⇒ KindParse with its 1-based Line;
//   - any non-blank line after the n-th ⇒ KindTrailingOutput.
//
// Range and coverage are not checked here; see Validate.
//
// Complexity: O(size of input).
func ReadPermutation(r io.Reader, n int) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	perm := make([]int, 0, min(n, maxPrealloc))
	line := 0
	for len(perm) < n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &Error{Kind: KindParse, Line: line + 1, Msg: fmt.Sprintf("line %d: cannot read answer", line+1), Err: err}
			}
			return nil, &Error{
				Kind:  KindLength,
				Value: len(perm),
				Msg:   fmt.Sprintf("answer has %d lines, want N=%d", len(perm), n),
			}
		}
		line++
		text := strings.TrimSpace(sc.Text())
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, &Error{
				Kind: KindParse,
				Line: line,
				Msg:  fmt.Sprintf("line %d: answer %q is not an integer", line, text),
			}
		}
		perm = append(perm, v)
	}

	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, &Error{
				Kind: KindTrailingOutput,
				Line: line,
				Msg:  fmt.Sprintf("line %d: unexpected output after %d answers", line, n),
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: KindParse, Line: line + 1, Msg: fmt.Sprintf("line %d: cannot read answer", line+1), Err: err}
	}
	return perm, nil
}
