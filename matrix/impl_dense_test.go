// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/svdimg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom covers adoption, length mismatch and the finite-only policy.
func TestNewDenseFrom(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6}
	m := MustFrom(t, 2, 3, vals...)
	vals[0] = 99 // the matrix owns a copy
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := matrix.NewDenseFrom(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowsCols verifies that Rows, Cols and Shape agree.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfRange ensures accessors return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the numeric policy on Set and Apply.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return v + 1
	}), matrix.ErrNaNInf)
	// Row 0 was written before the failure.
	require.Equal(t, 1.0, MustAt(t, m, 0, 1))
	require.Equal(t, 0.0, MustAt(t, m, 1, 0))
}

// TestRowColValues checks the copying accessors.
func TestRowColValues(t *testing.T) {
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	vals := m.Values()
	vals[0] = -1
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 0, 0, 2)
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestDoVisitsInOrder checks row-major order and early exit.
func TestDoVisitsInOrder(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestStringOutput checks that String formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4.5)
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
