// SPDX-License-Identifier: MIT

package reconstruct

import (
	"fmt"

	"github.com/katalvlaran/svdimg/factor"
	"github.com/katalvlaran/svdimg/matrix"
)

const (
	opReconstruct = "Reconstruct"
	opUnfolded    = "Unfolded"
)

// Reconstruct returns U·diag(S)·Vᵀ as an M×N matrix.
// Implementation:
//   - Stage 1: validate the triple (shapes, S ≥ 0).
//   - Stage 2: scale the columns of U by S when M ≤ N, else the rows of Vᵀ.
//   - Stage 3: matrix.Mul of the scaled and unscaled factors.
//
// The scaled factor is modified in place; t must not be reused afterwards.
//
// Errors:
//   - matrix.ErrNilMatrix, factor.ErrShapeMismatch, factor.ErrNegativeSingular.
//
// Complexity:
//   - Time O(M·N·K), Space O(M·N).
func Reconstruct(t *factor.Triple) (*matrix.Dense, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	m, n, _ := t.Dims()

	var err error
	if m <= n {
		err = matrix.ScaleCols(t.U, t.S)
	} else {
		err = matrix.ScaleRows(t.VT, t.S)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	out, err := matrix.Mul(t.U, t.VT)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return out, nil
}

// Unfolded evaluates Σ_k U[m,k]·S[k]·Vᵀ[k,n] element by element without
// touching the factors.
func Unfolded(t *factor.Triple) (*matrix.Dense, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opUnfolded, err)
	}
	m, n, k := t.Dims()
	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUnfolded, err)
	}
	u, vt := t.U.Values(), t.VT.Values()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for r := 0; r < k; r++ {
				sum += u[i*k+r] * t.S[r] * vt[r*n+j]
			}
			if err = out.Set(i, j, sum); err != nil {
				return nil, fmt.Errorf("%s: %w", opUnfolded, err)
			}
		}
	}

	return out, nil
}
