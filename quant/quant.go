// SPDX-License-Identifier: MIT

package quant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/svdimg/matrix"
)

// Channels is the fixed number of color channels.
const Channels = 3

// MaxExponent is the largest legal exponent. Keeping q below 31 leaves the
// scale 2^q representable in a 32-bit integer on every platform.
const MaxExponent = 30

// twoPow63 is the first float64 magnitude that no longer fits int64.
const twoPow63 = 9223372036854775808.0

// Params holds one quantization exponent per channel (luma, blue-difference, red-difference).
type Params [Channels]int

// DefaultParams favors luma precision over chroma.
var DefaultParams = Params{12, 10, 10}

// Validate reports ErrInvalidParameter unless every exponent is in 0..MaxExponent.
func (p Params) Validate() error {
	for c, q := range p {
		if err := ValidateExponent(q); err != nil {
			return fmt.Errorf("channel %d: %w", c, err)
		}
	}

	return nil
}

// ValidateExponent reports ErrInvalidParameter unless 0 ≤ q ≤ MaxExponent.
func ValidateExponent(q int) error {
	if q < 0 || q > MaxExponent {
		return fmt.Errorf("exponent %d: %w", q, ErrInvalidParameter)
	}

	return nil
}

// Quantize returns round(v·2^q), rounding halves away from zero.
// MAIN DESCRIPTION:
//   - Scalar encoder-side quantizer shared by every factor coefficient.
//
// Implementation:
//   - Stage 1: validate q and reject NaN/±Inf.
//   - Stage 2: scale exactly with math.Ldexp, round with math.Round.
//   - Stage 3: reject magnitudes ≥ 2^63 (no int64 representation).
//
// Errors:
//   - ErrInvalidParameter, ErrNonFinite, ErrOverflow.
//
// Determinism:
//   - math.Round is platform independent; ties (x.5) always move away from zero.
//
// Complexity:
//   - Time O(1), Space O(1).
func Quantize(v float64, q int) (int64, error) {
	if err := ValidateExponent(q); err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	r := math.Round(math.Ldexp(v, q))
	if math.Abs(r) >= twoPow63 {
		return 0, fmt.Errorf("%g·2^%d: %w", v, q, ErrOverflow)
	}

	return int64(r), nil
}

// Dequantize returns i/2^q. q is assumed valid (checked at header read time).
// Complexity: O(1).
func Dequantize(i int64, q int) float64 {
	return math.Ldexp(float64(i), -q)
}

// QuantizeVector quantizes every element of v.
func QuantizeVector(v []float64, q int) ([]int64, error) {
	out := make([]int64, len(v))
	for i, x := range v {
		z, err := Quantize(x, q)
		if err != nil {
			return nil, fmt.Errorf("QuantizeVector[%d]: %w", i, err)
		}
		out[i] = z
	}

	return out, nil
}

// DequantizeVector dequantizes every element of z.
func DequantizeVector(z []int64, q int) []float64 {
	out := make([]float64, len(z))
	for i, x := range z {
		out[i] = Dequantize(x, q)
	}

	return out
}

// QuantizeDense quantizes a float matrix into a Block of the same shape.
// Elements are visited in row-major order; the first failure aborts.
func QuantizeDense(m *matrix.Dense, q int) (*Block, error) {
	if m == nil {
		return nil, fmt.Errorf("QuantizeDense: %w", matrix.ErrNilMatrix)
	}
	if err := ValidateExponent(q); err != nil {
		return nil, err
	}
	b, err := NewBlock(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var qerr error
	m.Do(func(i, j int, v float64) bool {
		z, err := Quantize(v, q)
		if err != nil {
			qerr = fmt.Errorf("QuantizeDense(%d,%d): %w", i, j, err)
			return false
		}
		b.data[i*b.c+j] = z

		return true
	})
	if qerr != nil {
		return nil, qerr
	}

	return b, nil
}

// DequantizeBlock rebuilds a float matrix from a Block.
func DequantizeBlock(b *Block, q int) (*matrix.Dense, error) {
	if b == nil {
		return nil, fmt.Errorf("DequantizeBlock: %w", matrix.ErrNilMatrix)
	}
	if err := ValidateExponent(q); err != nil {
		return nil, err
	}
	vals := make([]float64, len(b.data))
	for i, z := range b.data {
		vals[i] = Dequantize(z, q)
	}

	return matrix.NewDenseFrom(b.r, b.c, vals)
}
