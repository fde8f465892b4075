// SPDX-License-Identifier: MIT

package svd

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/svdimg/factor"
	"github.com/katalvlaran/svdimg/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrDecomposition is returned when the SVD routine reports non-convergence
// or produces non-finite factors.
var ErrDecomposition = errors.New("svd: decomposition failed")

// Decompose computes the economy SVD of a.
// MAIN DESCRIPTION:
//   - Oracle for the encode path: a = U·diag(S)·Vᵀ with K = min(M, N).
//
// Implementation:
//   - Stage 1: copy a into a gonum *mat.Dense (row-major, same layout).
//   - Stage 2: Factorize with mat.SVDThin; !ok → ErrDecomposition.
//   - Stage 3: extract U, V, S; matrix.Transpose V into Vᵀ; clamp tiny negative S to 0.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDecomposition.
//
// Complexity:
//   - Time O(M·N·K), Space O(M·N).
func Decompose(a *matrix.Dense) (*factor.Triple, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	m, n := a.Shape()
	k := factor.Rank(m, n)

	var dec mat.SVD
	if ok := dec.Factorize(mat.NewDense(m, n, a.Values()), mat.SVDThin); !ok {
		return nil, fmt.Errorf("Decompose %dx%d: %w", m, n, ErrDecomposition)
	}
	var uRaw, vRaw mat.Dense
	dec.UTo(&uRaw)
	dec.VTo(&vRaw)
	s := dec.Values(nil)
	if len(s) != k {
		return nil, fmt.Errorf("Decompose: %d singular values, want %d: %w", len(s), k, ErrDecomposition)
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Decompose: S[%d]=%g: %w", i, v, ErrDecomposition)
		}
		if v < 0 {
			s[i] = 0 // rounding noise on a rank-deficient channel
		}
	}

	u, err := toDense(&uRaw, m, k)
	if err != nil {
		return nil, err
	}
	v, err := toDense(&vRaw, n, k)
	if err != nil {
		return nil, err
	}
	vt, err := matrix.Transpose(v)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	return &factor.Triple{U: u, S: s, VT: vt}, nil
}

// toDense copies src into a rows×cols matrix.Dense.
func toDense(src *mat.Dense, rows, cols int) (*matrix.Dense, error) {
	if r, c := src.Dims(); r != rows || c != cols {
		return nil, fmt.Errorf("Decompose: factor %dx%d, want %dx%d: %w", r, c, rows, cols, ErrDecomposition)
	}
	vals := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		vals = append(vals, src.RawRowView(i)...)
	}
	out, err := matrix.NewDenseFrom(rows, cols, vals)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w: %w", ErrDecomposition, err)
	}

	return out, nil
}
