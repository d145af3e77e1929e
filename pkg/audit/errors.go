package audit

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidThreshold   = errors.New("audit: threshold must satisfy 1 ≤ k ≤ n")
	ErrInsufficientShares = errors.New("audit: not enough shares")
)

// InsufficientSharesError is returned when fewer than k shares could be decoded.
type InsufficientSharesError struct {
	Need, Have int
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("audit: not enough shares (need %d, got %d)", e.Need, e.Have)
}

func (e *InsufficientSharesError) Is(target error) bool { return target == ErrInsufficientShares }

// Error is a failure of a single test case, which does not affect the other cases of a run.
type Error struct {
	// Case is the name of the failed test case
	Case string
	// Err is the underlying error
	Err error
}

func (e Error) Error() string {
	return fmt.Sprintf("case %s: %s", e.Case, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}
