// SPDX-License-Identifier: MIT
// Package quant: sentinel error set.

package quant

import "errors"

var (
	// ErrInvalidParameter is returned for a quantization exponent outside 0..MaxExponent.
	ErrInvalidParameter = errors.New("quant: invalid quantization exponent")

	// ErrNonFinite is returned when asked to quantize NaN or ±Inf.
	ErrNonFinite = errors.New("quant: NaN or Inf value")

	// ErrOverflow is returned when a scaled value does not fit the int64 range
	// carried by the stream.
	ErrOverflow = errors.New("quant: scaled value overflows int64")

	// ErrInvalidDimensions indicates that a Block was requested with non-positive dimensions.
	ErrInvalidDimensions = errors.New("quant: dimensions must be > 0")

	// ErrOutOfRange indicates that a Block index is outside valid bounds.
	ErrOutOfRange = errors.New("quant: index out of range")
)
