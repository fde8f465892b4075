// SPDX-License-Identifier: MIT
// Package vli: sentinel error set.

package vli

import "errors"

var (
	// ErrNegative is returned when an unsigned encode is asked for a negative value.
	// Callers must route possibly-negative values through EncodeSigned.
	ErrNegative = errors.New("vli: negative value for unsigned code")

	// ErrOutOfRange is returned for values whose magnitude cannot be represented
	// (math.MinInt64 in EncodeSigned).
	ErrOutOfRange = errors.New("vli: value out of range")

	// ErrCorruptStream is returned when a value cannot be decoded: the stream
	// ends mid-value, the prefix is longer than any legal code, or the decoded
	// magnitude overflows int64. When the cause is a short stream the error also
	// matches bitstream.ErrEndOfStream.
	ErrCorruptStream = errors.New("vli: corrupt stream")
)
