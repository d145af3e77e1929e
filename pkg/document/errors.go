package document

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKeys = errors.New("document: missing or malformed \"keys\" object")
	ErrNoCases     = errors.New("document: no test case found")
)

// Error is a failure attached to a single test case, and possibly a single share of it.
// The message does not repeat the case name, which reports print on their own.
type Error struct {
	// Case is the name of the test case
	Case string
	// Index is 0 if the error does not concern a particular share
	Index int
	// Err is the underlying error
	Err error
}

func (e Error) Error() string {
	if e.Index == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("share %d: %s", e.Index, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}
