package share

import (
	"errors"
	"fmt"
)

var ErrDuplicateAbscissa = errors.New("share: duplicate x-coordinate")

// DuplicateAbscissaError is returned when two points of a basis share the same x-coordinate,
// which would make a Lagrange denominator zero.
type DuplicateAbscissaError struct {
	X             int64
	First, Second int
}

func (e *DuplicateAbscissaError) Error() string {
	return fmt.Sprintf("share: shares %d and %d both have x = %d", e.First, e.Second, e.X)
}

func (e *DuplicateAbscissaError) Is(target error) bool { return target == ErrDuplicateAbscissa }

// PointSet is the ordered basis used for interpolation.
type PointSet []Share

// Basis returns the first k shares, in order.
// It panics if fewer than k shares are given; callers check the count first.
func Basis(shares []Share, k int) PointSet {
	basis := make(PointSet, k)
	copy(basis, shares[:k])
	return basis
}

// Validate checks that the set is non-empty and that all x-coordinates are pairwise distinct.
func (ps PointSet) Validate() error {
	if len(ps) == 0 {
		return errors.New("share: empty point set")
	}
	seen := make(map[int64]int, len(ps))
	for _, s := range ps {
		if first, ok := seen[s.X]; ok {
			return &DuplicateAbscissaError{X: s.X, First: first, Second: s.Index}
		}
		seen[s.X] = s.Index
	}
	return nil
}

// Xs returns the x-coordinates of the set, in order.
func (ps PointSet) Xs() []int64 {
	xs := make([]int64, len(ps))
	for i, s := range ps {
		xs[i] = s.X
	}
	return xs
}
