// SPDX-License-Identifier: MIT
// Package bitstream: sentinel error set.
// All methods return these sentinels (optionally wrapped with context);
// callers match them via errors.Is.

package bitstream

import "errors"

var (
	// ErrCapacityExceeded is returned when a write would push the stream past
	// the capacity bound configured in NewWriter. Nothing of the failing call
	// is written.
	ErrCapacityExceeded = errors.New("bitstream: capacity exceeded")

	// ErrEndOfStream is returned when a read would consume bits past the end
	// of the input buffer.
	ErrEndOfStream = errors.New("bitstream: end of stream")

	// ErrClosed is returned when a Writer or Reader is used after Close.
	ErrClosed = errors.New("bitstream: use of closed stream")

	// ErrInvalidCapacity is returned by NewWriter for a negative capacity.
	ErrInvalidCapacity = errors.New("bitstream: capacity must be >= 0")

	// ErrInvalidWidth is returned when a field width is outside 0..64 bits.
	ErrInvalidWidth = errors.New("bitstream: field width must be in 0..64")
)
