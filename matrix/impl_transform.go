// SPDX-License-Identifier: MIT
// Package matrix: layout transforms and element-wise comparison.
//
// Transpose is used by the SVD adapter to turn V into Vᵀ; MaxAbsDiff and
// AllClose back the reconstruction checks.

package matrix

import "math"

const (
	opTranspose  = "Transpose"
	opMaxAbsDiff = "MaxAbsDiff"
	opAllClose   = "AllClose"
)

// Transpose returns a new matrix with rows and columns of m swapped.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): data[i*cols+j] → res.data[j*rows+i].
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| over two matrices of equal shape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var d float64
	for idx, av := range a.data {
		d = math.Max(d, math.Abs(av-b.data[idx]))
	}

	return d, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx, av := range a.data {
		bv := b.data[idx]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
