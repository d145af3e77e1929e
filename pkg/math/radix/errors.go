package radix

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBase  = errors.New("radix: invalid base")
	ErrInvalidDigit = errors.New("radix: invalid digit")
	ErrOverflow     = errors.New("radix: value overflows int64")
)

// InvalidBaseError is returned when a base lies outside [params.MinBase, params.MaxBase].
type InvalidBaseError struct {
	Base int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("radix: base %d is not in [2, 16]", e.Base)
}

func (e *InvalidBaseError) Is(target error) bool { return target == ErrInvalidBase }

// InvalidDigitError reports the first character of a value that is not a digit in the declared base.
type InvalidDigitError struct {
	Digits   string
	Position int
	Base     int
}

func (e *InvalidDigitError) Error() string {
	if e.Position >= len(e.Digits) {
		return fmt.Sprintf("radix: empty value in base %d", e.Base)
	}
	return fmt.Sprintf("radix: invalid digit %q at position %d of %q in base %d",
		e.Digits[e.Position], e.Position, e.Digits, e.Base)
}

func (e *InvalidDigitError) Is(target error) bool { return target == ErrInvalidDigit }

// OverflowError is returned when a value does not fit in a signed 64-bit integer.
type OverflowError struct {
	Digits string
	Base   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("radix: %q in base %d overflows int64", e.Digits, e.Base)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }
