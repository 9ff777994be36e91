package judge

import (
	"errors"
	"fmt"
)

// Kind classifies a judging failure.
type Kind int

const (
	// KindUsage: the caller did not supply the required inputs.
	KindUsage Kind = iota + 1
	// KindParse: an answer line is not an integer, or the instance is malformed.
	KindParse
	// KindLength: the answer does not have exactly N entries.
	KindLength
	// KindTrailingOutput: non-blank content follows the N answer lines.
	KindTrailingOutput
	// KindRange: an answer entry lies outside [0, N).
	KindRange
	// KindCoverage: some index in [0, N) never appears in the answer.
	KindCoverage
)

// Sentinels, one per Kind. A *Error unwraps to the sentinel of its Kind.
var (
	ErrUsage          = errors.New("judge: usage")
	ErrParse          = errors.New("judge: parse error")
	ErrLength         = errors.New("judge: wrong answer length")
	ErrTrailingOutput = errors.New("judge: trailing output")
	ErrRange          = errors.New("judge: answer out of range")
	ErrCoverage       = errors.New("judge: index not covered")
)

var kindNames = map[Kind]string{
	KindUsage:          "usage",
	KindParse:          "parse",
	KindLength:         "length",
	KindTrailingOutput: "trailing-output",
	KindRange:          "range",
	KindCoverage:       "coverage",
}

var kindSentinels = map[Kind]error{
	KindUsage:          ErrUsage,
	KindParse:          ErrParse,
	KindLength:         ErrLength,
	KindTrailingOutput: ErrTrailingOutput,
	KindRange:          ErrRange,
	KindCoverage:       ErrCoverage,
}

// String returns a stable lowercase name, suitable for storage.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel returns the package sentinel for k, or nil for unknown kinds.
func (k Kind) Sentinel() error {
	return kindSentinels[k]
}

// Error is a tagged judging failure.
//
// Line is the 1-based input line and Index the answer position or missing
// point index; either is zero-valued when it does not apply (see Kind).
type Error struct {
	Kind  Kind
	Line  int
	Index int
	Value int
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes both the Kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var je *Error
	if errors.As(err, &je) {
		return je.Kind
	}
	return 0
}

// UsageError builds a KindUsage failure for command-line front ends.
func UsageError(msg string) *Error {
	return &Error{Kind: KindUsage, Msg: msg}
}
