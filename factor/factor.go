// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/katalvlaran/svdimg/matrix"
	"github.com/katalvlaran/svdimg/quant"
)

// Rank returns the economy rank K = min(m, n) shared by encoder and decoder.
func Rank(m, n int) int {
	return min(m, n)
}

// Triple is the float factorization of one channel.
type Triple struct {
	U  *matrix.Dense // M×K, column k is the k-th left singular vector
	S  []float64     // K singular values, descending, non-negative
	VT *matrix.Dense // K×N, row k is the k-th right singular vector
}

// Dims returns (M, N, K).
func (t *Triple) Dims() (m, n, k int) {
	return t.U.Rows(), t.VT.Cols(), len(t.S)
}

// Validate checks shape agreement and S ≥ 0.
func (t *Triple) Validate() error {
	if t == nil || t.U == nil || t.VT == nil {
		return fmt.Errorf("Triple.Validate: %w", matrix.ErrNilMatrix)
	}
	m, n, k := t.Dims()
	if k != Rank(m, n) || t.U.Cols() != k || t.VT.Rows() != k {
		return fmt.Errorf("Triple.Validate: U %dx%d, S %d, VT %dx%d: %w",
			t.U.Rows(), t.U.Cols(), k, t.VT.Rows(), t.VT.Cols(), ErrShapeMismatch)
	}
	for i, s := range t.S {
		if s < 0 {
			return fmt.Errorf("Triple.Validate: S[%d]=%g: %w", i, s, ErrNegativeSingular)
		}
	}

	return nil
}

// Quantized is the integer factorization of one channel, as carried by the stream.
type Quantized struct {
	U  *quant.Block // M×K
	S  []int64      // K, non-negative
	VT *quant.Block // K×N
}

// NewQuantized allocates an all-zero factorization for an m×n channel.
func NewQuantized(m, n int) (*Quantized, error) {
	if m <= 0 || n <= 0 {
		return nil, ErrInvalidDimensions
	}
	k := Rank(m, n)
	u, err := quant.NewBlock(m, k)
	if err != nil {
		return nil, err
	}
	vt, err := quant.NewBlock(k, n)
	if err != nil {
		return nil, err
	}

	return &Quantized{U: u, S: make([]int64, k), VT: vt}, nil
}

// Dims returns (M, N, K).
func (z *Quantized) Dims() (m, n, k int) {
	return z.U.Rows(), z.VT.Cols(), len(z.S)
}

// Truncate zeroes every rank ≥ rank, leaving the leading low-rank approximation.
func (z *Quantized) Truncate(rank int) {
	if rank < 0 {
		rank = 0
	}
	for k := rank; k < len(z.S); k++ {
		z.S[k] = 0
	}
	z.U.ZeroCols(rank)
	z.VT.ZeroRows(rank)
}

// Equal reports whether two factorizations carry identical coefficients.
func (z *Quantized) Equal(o *Quantized) bool {
	if z == nil || o == nil {
		return z == o
	}
	if len(z.S) != len(o.S) {
		return false
	}
	for i, s := range z.S {
		if o.S[i] != s {
			return false
		}
	}

	return z.U.Equal(o.U) && z.VT.Equal(o.VT)
}

// Quantize converts a float factorization with exponent q.
func Quantize(t *Triple, q int) (*Quantized, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	u, err := quant.QuantizeDense(t.U, q)
	if err != nil {
		return nil, fmt.Errorf("U: %w", err)
	}
	s, err := quant.QuantizeVector(t.S, q)
	if err != nil {
		return nil, fmt.Errorf("S: %w", err)
	}
	vt, err := quant.QuantizeDense(t.VT, q)
	if err != nil {
		return nil, fmt.Errorf("VT: %w", err)
	}

	return &Quantized{U: u, S: s, VT: vt}, nil
}

// Dequantize converts an integer factorization back to floats with exponent q.
func Dequantize(z *Quantized, q int) (*Triple, error) {
	if z == nil || z.U == nil || z.VT == nil {
		return nil, fmt.Errorf("Dequantize: %w", matrix.ErrNilMatrix)
	}
	for i, s := range z.S {
		if s < 0 {
			return nil, fmt.Errorf("Dequantize: S[%d]=%d: %w", i, s, ErrNegativeSingular)
		}
	}
	u, err := quant.DequantizeBlock(z.U, q)
	if err != nil {
		return nil, fmt.Errorf("U: %w", err)
	}
	vt, err := quant.DequantizeBlock(z.VT, q)
	if err != nil {
		return nil, fmt.Errorf("VT: %w", err)
	}
	t := &Triple{U: u, S: quant.DequantizeVector(z.S, q), VT: vt}
	if err = t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}
