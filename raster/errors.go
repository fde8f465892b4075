// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrInvalidDimensions is returned for a non-positive or oversized width/height.
	ErrInvalidDimensions = errors.New("raster: invalid image dimensions")

	// ErrChannel is returned for a channel index outside 0..Channels-1.
	ErrChannel = errors.New("raster: channel index out of range")

	// ErrShape is returned when a plane or matrix does not match Width·Height.
	ErrShape = errors.New("raster: plane shape mismatch")

	// ErrUnsupportedFormat is returned for an unknown extension or a
	// read-only container on Store.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")

	// ErrMalformed is returned when a pixel file cannot be parsed.
	ErrMalformed = errors.New("raster: malformed image file")
)
