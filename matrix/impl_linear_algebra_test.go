// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/svdimg/matrix"
	"github.com/stretchr/testify/require"
)

// TestMul checks a hand-computed product and the inner-dimension guard.
func TestMul(t *testing.T) {
	a := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustFrom(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{58, 64, 139, 154}, c.Values())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// fixed is a minimal non-Dense Matrix used to reach the generic Mul path.
type fixed struct{ *matrix.Dense }

func (f fixed) Clone() matrix.Matrix { return fixed{f.Dense.Clone().(*matrix.Dense)} }

// TestMul_GenericPathMatchesDense compares the interface loop with the Dense fast path.
func TestMul_GenericPathMatchesDense(t *testing.T) {
	a := MustDense(t, 4, 5)
	b := MustDense(t, 5, 3)
	fillDenseRand(t, a, 1)
	fillDenseRand(t, b, 2)
	require.NoError(t, a.Set(1, 2, 0)) // exercise the zero skip

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(fixed{a}, fixed{b})
	require.NoError(t, err)

	ok, err := matrix.AllClose(fast, slow, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestScaleColsRows checks both diagonal folds against explicit products.
func TestScaleColsRows(t *testing.T) {
	s := []float64{2, -0.5}

	u := MustFrom(t, 3, 2, 1, 2, 3, 4, 5, 6)
	require.NoError(t, matrix.ScaleCols(u, s))
	require.Equal(t, []float64{2, -1, 6, -2, 10, -3}, u.Values())

	vt := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, matrix.ScaleRows(vt, s))
	require.Equal(t, []float64{2, 4, 6, -2, -2.5, -3}, vt.Values())

	require.ErrorIs(t, matrix.ScaleCols(u, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ScaleRows(vt, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ScaleRows(nil, s), matrix.ErrNilMatrix)
}
