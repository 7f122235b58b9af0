package pattern

import (
	"errors"
	"fmt"
)

// Fatal matcher errors. These are disjoint from "no match": a pattern that
// simply fails to match returns a nil result with a nil error, while the
// conditions below abort the whole call.
var (
	// ErrTooComplex indicates the recursion-depth budget was exhausted.
	ErrTooComplex = errors.New("pattern too complex")

	// ErrTooManyCaptures indicates more than MaxCaptures simultaneous captures.
	ErrTooManyCaptures = errors.New("too many captures")

	// ErrMalformedPattern indicates invalid pattern syntax.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrInvalidCaptureIndex indicates a backreference to a capture that does
	// not exist or is still open.
	ErrInvalidCaptureIndex = errors.New("invalid capture index")

	// ErrUnbalancedCapture indicates a ')' with no open capture to close.
	ErrUnbalancedCapture = errors.New("invalid pattern capture")

	// ErrUnfinishedCapture indicates a capture left open by a successful match.
	ErrUnfinishedCapture = errors.New("unfinished capture")
)

// SyntaxError wraps a fatal matcher error with the detail of what was wrong.
type SyntaxError struct {
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v (%s)", e.Err, e.Detail)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// malformed builds a SyntaxError around ErrMalformedPattern.
func malformed(detail string) error {
	return &SyntaxError{Detail: detail, Err: ErrMalformedPattern}
}
