package polynomial

import (
	"math/big"

	"github.com/taurusgroup/share-audit/pkg/share"
)

type floatArithmetic struct{}

func (floatArithmetic) Name() string { return "float" }

// EvaluateAt computes
//
//	f(x) = ∑ᵢ round( yᵢ ⋅ ∏ⱼ≠ᵢ (x - xⱼ)/(xᵢ - xⱼ) ).
//
// Rounding each term separately means that, for bases whose x-coordinates are not
// consecutive, fractional terms may round to a value off by one from the true f(x).
func (floatArithmetic) EvaluateAt(points share.PointSet, x int64) (int64, error) {
	if err := points.Validate(); err != nil {
		return 0, err
	}
	var result int64
	for i, pI := range points {
		term := float64(pI.Y)
		for j, pJ := range points {
			if i == j {
				continue
			}
			term = term * float64(x-pJ.X) / float64(pI.X-pJ.X)
		}
		rounded, err := roundFloat(term)
		if err != nil {
			return 0, err
		}
		if result, err = addInt64(result, rounded); err != nil {
			return 0, err
		}
	}
	return result, nil
}

type exactArithmetic struct{}

func (exactArithmetic) Name() string { return "exact" }

// EvaluateAt computes f(x) = ∑ᵢ yᵢ ⋅ lᵢ(x) over ℚ, where
//
//	         (x - x₀)⋅⋅⋅(x - xᵢ₋₁)⋅(x - xᵢ₊₁)⋅⋅⋅(x - xₖ)
//	lᵢ(x) = --------------------------------------------------
//	        (xᵢ - x₀)⋅⋅⋅(xᵢ - xᵢ₋₁)⋅(xᵢ - xᵢ₊₁)⋅⋅⋅(xᵢ - xₖ)
//
// and rounds the sum to the nearest integer, ties away from zero.
func (exactArithmetic) EvaluateAt(points share.PointSet, x int64) (int64, error) {
	if err := points.Validate(); err != nil {
		return 0, err
	}
	sum := new(big.Rat)
	bigX := big.NewInt(x)
	tmp := new(big.Int)
	for i, pI := range points {
		numerator := big.NewInt(pI.Y)
		denominator := big.NewInt(1)
		xI := big.NewInt(pI.X)
		for j, pJ := range points {
			if i == j {
				continue
			}
			xJ := big.NewInt(pJ.X)
			// numerator *= x - xⱼ
			numerator.Mul(numerator, tmp.Sub(bigX, xJ))
			// denominator *= xᵢ - xⱼ
			denominator.Mul(denominator, tmp.Sub(xI, xJ))
		}
		sum.Add(sum, new(big.Rat).SetFrac(numerator, denominator))
	}
	return roundRat(sum)
}
