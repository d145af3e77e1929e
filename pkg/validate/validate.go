// Package validate checks shares against the polynomial defined by a basis.
package validate

import (
	"fmt"

	"github.com/taurusgroup/share-audit/pkg/math/polynomial"
	"github.com/taurusgroup/share-audit/pkg/share"
)

// Validator checks every share against the interpolation of a basis.
// The zero value uses polynomial.Float.
type Validator struct {
	Arithmetic polynomial.Arithmetic
}

// New returns a Validator using the given arithmetic.
func New(a polynomial.Arithmetic) *Validator {
	return &Validator{Arithmetic: a}
}

func (v *Validator) arithmetic() polynomial.Arithmetic {
	if v == nil || v.Arithmetic == nil {
		return polynomial.Float
	}
	return v.Arithmetic
}

// Validate returns one result per share, in the order of shares.
// Basis members are checked as well. A mismatch does not stop the remaining checks.
func (v *Validator) Validate(shares []share.Share, basis share.PointSet) ([]share.ValidationResult, error) {
	if err := basis.Validate(); err != nil {
		return nil, err
	}
	a := v.arithmetic()
	results := make([]share.ValidationResult, 0, len(shares))
	for _, s := range shares {
		expected, err := a.EvaluateAt(basis, s.X)
		if err != nil {
			return nil, fmt.Errorf("validate: %s: %w", s, err)
		}
		results = append(results, share.ValidationResult{
			Index:    s.Index,
			Reported: s.Y,
			Expected: expected,
			Matches:  expected == s.Y,
		})
	}
	return results, nil
}

// Validate is (&Validator{}).Validate.
func Validate(shares []share.Share, basis share.PointSet) ([]share.ValidationResult, error) {
	return (*Validator)(nil).Validate(shares, basis)
}

// Mismatches returns the indices of the shares that do not lie on the polynomial.
func Mismatches(results []share.ValidationResult) []int {
	var indices []int
	for _, r := range results {
		if !r.Matches {
			indices = append(indices, r.Index)
		}
	}
	return indices
}
