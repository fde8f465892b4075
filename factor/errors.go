// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.

package factor

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive M or N.
	ErrInvalidDimensions = errors.New("factor: dimensions must be > 0")

	// ErrShapeMismatch indicates that U, S and Vᵀ do not agree with (M, N, K).
	ErrShapeMismatch = errors.New("factor: factor shapes disagree")

	// ErrNegativeSingular indicates a negative singular value.
	ErrNegativeSingular = errors.New("factor: negative singular value")
)
