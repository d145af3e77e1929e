package share

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointSet_Validate(t *testing.T) {
	ps := PointSet{New(1, 5), New(2, 7), New(3, 9)}
	assert.NoError(t, ps.Validate())
	assert.Equal(t, []int64{1, 2, 3}, ps.Xs())

	dup := PointSet{New(1, 5), {Index: 2, X: 1, Y: 7}}
	err := dup.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateAbscissa))
	var dupErr *DuplicateAbscissaError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, int64(1), dupErr.X)
	assert.Equal(t, 1, dupErr.First)
	assert.Equal(t, 2, dupErr.Second)

	assert.Error(t, PointSet{}.Validate())
}

func TestBasis(t *testing.T) {
	shares := []Share{New(1, 5), New(2, 7), New(4, 11), New(6, 15)}
	basis := Basis(shares, 2)
	assert.Equal(t, PointSet{New(1, 5), New(2, 7)}, basis)

	// the basis is a copy
	basis[0].Y = 100
	assert.Equal(t, int64(5), shares[0].Y)
}

func TestShare_WriteTo(t *testing.T) {
	var a, b bytes.Buffer
	n, err := New(1, 5).WriteTo(&a)
	require.NoError(t, err)
	assert.Equal(t, int64(24), n)
	_, err = New(1, 6).WriteTo(&b)
	require.NoError(t, err)
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestValidationResult_String(t *testing.T) {
	assert.Equal(t, "Share 4 is correct", ValidationResult{Index: 4, Reported: 11, Expected: 11, Matches: true}.String())
	assert.Equal(t, "Share 4 is WRONG (got 99, expected 11)", ValidationResult{Index: 4, Reported: 99, Expected: 11}.String())
}
