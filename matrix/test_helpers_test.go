// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/svdimg/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense creates a rows×cols zero matrix or fails the test.
func MustDense(tb testing.TB, rows, cols int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(tb, err)

	return m
}

// MustFrom adopts row-major values or fails the test.
func MustFrom(tb testing.TB, rows, cols int, vals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))
}
