package polynomial

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/taurusgroup/share-audit/pkg/share"
)

var ErrOverflow = errors.New("polynomial: result overflows int64")

// Arithmetic performs Lagrange interpolation over a basis of points.
//
// All implementations reject a basis with duplicate x-coordinates with a *share.DuplicateAbscissaError
// before dividing by anything.
type Arithmetic interface {
	// EvaluateAt returns f(x), where f is the unique polynomial of degree len(points)-1
	// passing through every point of the basis.
	EvaluateAt(points share.PointSet, x int64) (int64, error)
	// Reconstruct returns the coefficients of f.
	Reconstruct(points share.PointSet) (*Polynomial, error)
	// Name identifies the arithmetic in configuration and logs.
	Name() string
}

var (
	// Float uses float64 intermediates and rounds each Lagrange term to the nearest integer,
	// ties away from zero, before summing.
	// Results are exact only while intermediates stay below params.MaxExactFloat.
	Float Arithmetic = floatArithmetic{}

	// Exact carries rational numbers through the whole computation, and only rounds the final value.
	Exact Arithmetic = exactArithmetic{}
)

// ArithmeticByName returns the Arithmetic whose Name is name.
func ArithmeticByName(name string) (Arithmetic, error) {
	switch name {
	case Float.Name():
		return Float, nil
	case Exact.Name():
		return Exact, nil
	default:
		return nil, fmt.Errorf("polynomial: unknown arithmetic %q (want %q or %q)", name, Float.Name(), Exact.Name())
	}
}

// EvaluateAt is Float.EvaluateAt.
func EvaluateAt(points share.PointSet, x int64) (int64, error) {
	return Float.EvaluateAt(points, x)
}

// Reconstruct is Float.Reconstruct.
func Reconstruct(points share.PointSet) (*Polynomial, error) {
	return Float.Reconstruct(points)
}

// roundFloat rounds v to the nearest integer, ties away from zero.
func roundFloat(v float64) (int64, error) {
	r := math.Round(v)
	if math.IsNaN(r) || r >= math.MaxInt64 || r < math.MinInt64 {
		return 0, fmt.Errorf("%w: term %g", ErrOverflow, v)
	}
	return int64(r), nil
}

// roundRat rounds r to the nearest integer, ties away from zero.
func roundRat(r *big.Rat) (int64, error) {
	// ⌊(2|a| + b) / 2b⌋ for r = a/b
	q := new(big.Int).Abs(r.Num())
	q.Lsh(q, 1)
	q.Add(q, r.Denom())
	q.Quo(q, new(big.Int).Lsh(r.Denom(), 1))
	if r.Sign() < 0 {
		q.Neg(q)
	}
	if !q.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, r.RatString())
	}
	return q.Int64(), nil
}

// addInt64 returns a + b, failing instead of wrapping around.
func addInt64(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}
