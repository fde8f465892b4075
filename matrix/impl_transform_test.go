// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/svdimg/matrix"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Values())

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.Equal(t, m.Values(), back.Values())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMaxAbsDiff(t *testing.T) {
	a := MustFrom(t, 2, 2, 1, 2, 3, 4)
	b := MustFrom(t, 2, 2, 1, 2.5, 2, 4)
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	_, err = matrix.MaxAbsDiff(a, MustDense(t, 1, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	a := MustFrom(t, 1, 3, 1, 100, -2)
	b := MustFrom(t, 1, 3, 1.001, 100.5, -2)

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	require.False(t, ok) // 0.5 exceeds atol

	ok, err = matrix.AllClose(a, b, 1e-2, 1e-2)
	require.NoError(t, err)
	require.True(t, ok) // 0.5 ≤ 0.01 + 0.01·100.5

	ok, err = matrix.AllClose(a, b, -1e-2, -1e-2)
	require.NoError(t, err)
	require.True(t, ok) // tolerances are taken by magnitude

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
