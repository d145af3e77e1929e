package polynomial

import (
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/share-audit/pkg/share"
)

var arithmetics = []Arithmetic{Float, Exact}

// sample returns the points (x, f(x)) for each x.
func sample(t *testing.T, f *Polynomial, xs ...int64) share.PointSet {
	points := make(share.PointSet, len(xs))
	for i, x := range xs {
		y, err := f.EvaluateInt(x)
		require.NoError(t, err)
		points[i] = share.Share{Index: int(x), X: x, Y: y}
	}
	return points
}

func randomPolynomial(r *mrand.Rand, degree int, bound int64) *Polynomial {
	coefficients := make([]int64, degree+1)
	for i := range coefficients {
		coefficients[i] = r.Int63n(2*bound+1) - bound
	}
	return FromInt64(coefficients...)
}

// assertCoefficientsNear checks that every coefficient of got is within 10⁻⁴ of expected.
func assertCoefficientsNear(t *testing.T, expected, got *Polynomial, msg string) {
	t.Helper()
	require.Equal(t, expected.Degree(), got.Degree(), msg)
	for d := 0; d <= expected.Degree(); d++ {
		e, _ := expected.Coefficient(d).Float64()
		g, _ := got.Coefficient(d).Float64()
		assert.InDelta(t, e, g, 1e-4, "%s: coefficient of X^%d", msg, d)
	}
}

func TestPolynomial_Evaluate(t *testing.T) {
	// f(X) = 1 + X²
	f := FromInt64(1, 0, 1)
	r := mrand.New(mrand.NewSource(0))
	for index := 0; index < 100; index++ {
		x := r.Int63n(1 << 20)
		expected := new(big.Rat).SetInt64(x*x + 1)
		assert.Equal(t, 0, expected.Cmp(f.Evaluate(x)))
	}
	assert.Equal(t, 2, f.Degree())
	assert.Equal(t, 0, f.Constant().Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, f.Coefficient(5).Sign())
}

func TestPolynomial_Format(t *testing.T) {
	f := NewPolynomial(big.NewRat(3, 1), big.NewRat(-1, 8), big.NewRat(1, 200), big.NewRat(-1, 3))
	assert.Equal(t, []string{"3.00", "-0.13", "0.01", "-0.33"}, f.Format())
	assert.Equal(t, "3.00 + -0.13⋅X + 0.01⋅X^2 + -0.33⋅X^3", f.String())
}

func TestPolynomial_FormatNegativeZero(t *testing.T) {
	f := NewPolynomial(big.NewRat(-1, 1000), big.NewRat(-1, 200), big.NewRat(-1, 201), new(big.Rat))
	assert.Equal(t, []string{"0.00", "-0.01", "0.00", "0.00"}, f.Format())

	// a + 3X sampled at x = 1…5: the vanishing coefficients carry float noise of either sign
	for a := int64(-20); a <= 20; a++ {
		basis := sample(t, FromInt64(a, 3), 1, 2, 3, 4, 5)
		g, err := Float.Reconstruct(basis)
		require.NoError(t, err)
		formatted := g.Format()
		for d := 2; d < len(formatted); d++ {
			assert.Equal(t, "0.00", formatted[d], "a = %d, X^%d", a, d)
		}
	}
}

func TestReconstruct_Line(t *testing.T) {
	// y = 2x + 3
	basis := share.PointSet{share.New(1, 5), share.New(2, 7), share.New(3, 9)}
	for _, a := range arithmetics {
		f, err := a.Reconstruct(basis)
		require.NoError(t, err, a.Name())
		assert.Equal(t, []string{"3.00", "2.00", "0.00"}, f.Format(), a.Name())

		y, err := a.EvaluateAt(basis, 4)
		require.NoError(t, err, a.Name())
		assert.Equal(t, int64(11), y, a.Name())
	}
}

func TestReconstruct_SingleShare(t *testing.T) {
	for _, a := range arithmetics {
		f, err := a.Reconstruct(share.PointSet{share.New(3, 42)})
		require.NoError(t, err)
		require.Equal(t, 0, f.Degree())
		assert.Equal(t, 0, f.Constant().Cmp(big.NewRat(42, 1)), a.Name())

		y, err := a.EvaluateAt(share.PointSet{share.New(3, 42)}, 17)
		require.NoError(t, err)
		assert.Equal(t, int64(42), y)
	}
}

func TestReconstruct_SelfConsistent(t *testing.T) {
	r := mrand.New(mrand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		k := r.Intn(7) + 1
		f := randomPolynomial(r, k-1, 1000)
		xs := make([]int64, k)
		for i := range xs {
			xs[i] = int64(i + 1)
		}
		basis := sample(t, f, xs...)

		for _, a := range arithmetics {
			g, err := a.Reconstruct(basis)
			require.NoError(t, err)
			require.Equal(t, k-1, g.Degree(), "coefficient count equals basis size")
			for _, p := range basis {
				y, err := g.EvaluateInt(p.X)
				require.NoError(t, err)
				assert.Equal(t, p.Y, y, "%s: f(%d)", a.Name(), p.X)

				y, err = a.EvaluateAt(basis, p.X)
				require.NoError(t, err)
				assert.Equal(t, p.Y, y, "%s: evaluateAt(%d)", a.Name(), p.X)
			}
			assertCoefficientsNear(t, f, g, a.Name())
		}
	}
}

func TestEvaluateAt_PointsOnCurve(t *testing.T) {
	r := mrand.New(mrand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		k := r.Intn(6) + 1
		f := randomPolynomial(r, k-1, 500)
		xs := make([]int64, k)
		for i := range xs {
			xs[i] = int64(i + 1)
		}
		basis := sample(t, f, xs...)
		for x := int64(1); x <= 12; x++ {
			expected, err := f.EvaluateInt(x)
			require.NoError(t, err)
			for _, a := range arithmetics {
				y, err := a.EvaluateAt(basis, x)
				require.NoError(t, err)
				assert.Equal(t, expected, y, "%s: f(%d)", a.Name(), x)
			}
		}
	}
}

func TestExact_SparseBasis(t *testing.T) {
	// f(X) = 7 - 3X + 2X³ sampled at non-consecutive x-coordinates
	f := FromInt64(7, -3, 0, 2)
	basis := sample(t, f, 2, 5, 9, 11)

	g, err := Exact.Reconstruct(basis)
	require.NoError(t, err)
	assert.Equal(t, f.Format(), g.Format())
	for x := int64(0); x < 20; x++ {
		expected, _ := f.EvaluateInt(x)
		y, err := Exact.EvaluateAt(basis, x)
		require.NoError(t, err)
		assert.Equal(t, expected, y)
	}
}

func TestExact_LargeCoefficients(t *testing.T) {
	// well beyond float64's exact-integer range
	f := FromInt64(1_000_000_000_000_007, 3, 123_456_789)
	basis := sample(t, f, 1, 2, 3)
	g, err := Exact.Reconstruct(basis)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Constant().Cmp(big.NewRat(1_000_000_000_000_007, 1)))

	y, err := Exact.EvaluateAt(basis, 4)
	require.NoError(t, err)
	expected, _ := f.EvaluateInt(4)
	assert.Equal(t, expected, y)
}

func TestFloat_RoundsEachTerm(t *testing.T) {
	// y = x through (1, 1) and (3, 3): at x = 2 the terms are 0.5 and 1.5,
	// which round to 1 and 2 before being summed.
	basis := share.PointSet{share.New(1, 1), share.New(3, 3)}
	y, err := Float.EvaluateAt(basis, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), y)

	y, err = Exact.EvaluateAt(basis, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), y)

	// y = -x: the terms are -0.5 and -1.5, which round to -1 and -2
	negative := share.PointSet{share.New(1, -1), share.New(3, -3)}
	y, err = Float.EvaluateAt(negative, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), y)

	y, err = Exact.EvaluateAt(negative, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), y)
}

func TestDuplicateAbscissa(t *testing.T) {
	basis := share.PointSet{share.New(1, 5), share.New(2, 7), {Index: 3, X: 2, Y: 9}}
	for _, a := range arithmetics {
		_, err := a.EvaluateAt(basis, 4)
		assert.True(t, errors.Is(err, share.ErrDuplicateAbscissa), a.Name())
		_, err = a.Reconstruct(basis)
		assert.True(t, errors.Is(err, share.ErrDuplicateAbscissa), a.Name())
	}
}

func TestOverflow(t *testing.T) {
	basis := share.PointSet{share.New(1, 1<<62), share.New(2, 1<<62+1<<61)}
	for _, a := range arithmetics {
		_, err := a.EvaluateAt(basis, 100)
		assert.True(t, errors.Is(err, ErrOverflow), a.Name())
	}
}

func TestRoundRat(t *testing.T) {
	for _, tt := range []struct {
		r    *big.Rat
		want int64
	}{
		{big.NewRat(1, 2), 1},
		{big.NewRat(-1, 2), -1},
		{big.NewRat(5, 2), 3},
		{big.NewRat(-5, 2), -3},
		{big.NewRat(7, 3), 2},
		{big.NewRat(-7, 3), -2},
		{big.NewRat(0, 1), 0},
		{big.NewRat(10, 1), 10},
	} {
		got, err := roundRat(tt.r)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.r.String())
	}
}

func TestArithmeticByName(t *testing.T) {
	a, err := ArithmeticByName("float")
	require.NoError(t, err)
	assert.Equal(t, Float, a)
	a, err = ArithmeticByName("exact")
	require.NoError(t, err)
	assert.Equal(t, Exact, a)
	_, err = ArithmeticByName("modular")
	assert.Error(t, err)
}
