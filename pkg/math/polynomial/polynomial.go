package polynomial

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/taurusgroup/share-audit/internal/params"
	"github.com/taurusgroup/share-audit/pkg/share"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ with rational coefficients.
type Polynomial struct {
	coefficients []*big.Rat
}

// NewPolynomial returns the polynomial with the given coefficients, a₀ first.
// The coefficients are copied.
func NewPolynomial(coefficients ...*big.Rat) *Polynomial {
	p := &Polynomial{coefficients: make([]*big.Rat, len(coefficients))}
	for i, c := range coefficients {
		p.coefficients[i] = new(big.Rat).Set(c)
	}
	return p
}

// FromInt64 returns the polynomial with integer coefficients, a₀ first.
func FromInt64(coefficients ...int64) *Polynomial {
	p := &Polynomial{coefficients: make([]*big.Rat, len(coefficients))}
	for i, c := range coefficients {
		p.coefficients[i] = new(big.Rat).SetInt64(c)
	}
	return p
}

// Evaluate computes f(x) exactly, using Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Evaluate(x int64) *big.Rat {
	bigX := new(big.Rat).SetInt64(x)
	result := new(big.Rat)
	// reverse order
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result.Mul(result, bigX)
		result.Add(result, p.coefficients[i])
	}
	return result
}

// EvaluateInt returns f(x) rounded to the nearest integer, ties away from zero.
func (p *Polynomial) EvaluateInt(x int64) (int64, error) {
	return roundRat(p.Evaluate(x))
}

// Constant returns a copy of the constant coefficient a₀, which is the shared secret.
func (p *Polynomial) Constant() *big.Rat {
	return p.Coefficient(0)
}

// Coefficient returns a copy of aᵢ, or 0 when i is above the degree.
func (p *Polynomial) Coefficient(i int) *big.Rat {
	if i < 0 || i >= len(p.coefficients) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coefficients[i])
}

// Coefficients returns a copy of a₀, …, aₜ.
func (p *Polynomial) Coefficients() []*big.Rat {
	out := make([]*big.Rat, len(p.coefficients))
	for i := range p.coefficients {
		out[i] = p.Coefficient(i)
	}
	return out
}

// Degree is the highest power of the Polynomial.
// A reconstructed polynomial always has degree k-1, even when its leading coefficients are 0.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Format returns every coefficient as a decimal string with params.CoefficientPrecision digits
// after the point, a₀ first. The last digit is rounded half away from zero.
// Negative values that round to zero print without a sign.
func (p *Polynomial) Format() []string {
	out := make([]string, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = strings.TrimPrefix(c.FloatString(params.CoefficientPrecision), "-")
		if c.Sign() < 0 && strings.Trim(out[i], "0.") != "" {
			out[i] = "-" + out[i]
		}
	}
	return out
}

func (p *Polynomial) String() string {
	var b strings.Builder
	for i, c := range p.Format() {
		if i > 0 {
			b.WriteString(" + ")
		}
		switch i {
		case 0:
			b.WriteString(c)
		case 1:
			fmt.Fprintf(&b, "%s⋅X", c)
		default:
			fmt.Fprintf(&b, "%s⋅X^%d", c, i)
		}
	}
	return b.String()
}

// Reconstruct expands the Lagrange basis into explicit coefficients with float64 arithmetic.
//
// For each i, the basis polynomial ∏ⱼ≠ᵢ (X - xⱼ) is built by repeated multiplication by (X - xⱼ),
// scaled by yᵢ / ∏ⱼ≠ᵢ (xᵢ - xⱼ), and accumulated.
func (floatArithmetic) Reconstruct(points share.PointSet) (*Polynomial, error) {
	if err := points.Validate(); err != nil {
		return nil, err
	}
	k := len(points)
	coefficients := make([]float64, k)
	basis := make([]float64, k)
	for i, pI := range points {
		for d := range basis {
			basis[d] = 0
		}
		basis[0] = 1
		denominator := 1.0
		for j, pJ := range points {
			if i == j {
				continue
			}
			denominator *= float64(pI.X - pJ.X)
			mulLinear(basis, float64(pJ.X))
		}
		factor := float64(pI.Y) / denominator
		for d := range coefficients {
			coefficients[d] += factor * basis[d]
		}
	}

	p := &Polynomial{coefficients: make([]*big.Rat, k)}
	for d, c := range coefficients {
		// SetFloat64 is exact, and returns nil for ±Inf and NaN.
		r := new(big.Rat).SetFloat64(c)
		if r == nil {
			return nil, fmt.Errorf("%w: coefficient of X^%d is %g", ErrOverflow, d, c)
		}
		p.coefficients[d] = r
	}
	return p, nil
}

// mulLinear sets basis to basis⋅(X - root), in place: b'[d] = b[d-1] - root⋅b[d].
// The highest degree is updated first, so that basis[d-1] still holds its previous value.
// The top coefficient must be 0 on entry.
func mulLinear(basis []float64, root float64) {
	for d := len(basis) - 1; d >= 1; d-- {
		basis[d] = basis[d-1] - root*basis[d]
	}
	basis[0] *= -root
}

// Reconstruct expands the Lagrange basis into exact rational coefficients.
func (exactArithmetic) Reconstruct(points share.PointSet) (*Polynomial, error) {
	if err := points.Validate(); err != nil {
		return nil, err
	}
	k := len(points)
	p := &Polynomial{coefficients: make([]*big.Rat, k)}
	for d := range p.coefficients {
		p.coefficients[d] = new(big.Rat)
	}

	basis := make([]*big.Int, k)
	for d := range basis {
		basis[d] = new(big.Int)
	}
	tmp := new(big.Int)
	term := new(big.Rat)
	for i, pI := range points {
		for d := range basis {
			basis[d].SetInt64(0)
		}
		basis[0].SetInt64(1)
		denominator := big.NewInt(1)
		xI := big.NewInt(pI.X)
		for j, pJ := range points {
			if i == j {
				continue
			}
			xJ := big.NewInt(pJ.X)
			denominator.Mul(denominator, tmp.Sub(xI, xJ))
			for d := k - 1; d >= 1; d-- {
				tmp.Mul(xJ, basis[d])
				basis[d].Sub(basis[d-1], tmp)
			}
			basis[0].Mul(basis[0], tmp.Neg(xJ))
		}
		factor := new(big.Rat).SetFrac(big.NewInt(pI.Y), denominator)
		for d := range p.coefficients {
			term.SetInt(basis[d])
			term.Mul(term, factor)
			p.coefficients[d].Add(p.coefficients[d], term)
		}
	}
	return p, nil
}
