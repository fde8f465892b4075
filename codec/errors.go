// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/svdimg/bitstream"
	"github.com/katalvlaran/svdimg/quant"
	"github.com/katalvlaran/svdimg/raster"
	"github.com/katalvlaran/svdimg/svd"
	"github.com/katalvlaran/svdimg/vli"
)

var (
	// ErrInvalidArgument marks malformed header fields or unusable inputs:
	// non-positive or oversized dimensions, out-of-range exponents, a bad image.
	ErrInvalidArgument = errors.New("codec: invalid argument")

	// ErrCorruptStream marks a stream that ends or breaks mid-value or mid-matrix.
	// It is always joined with the lower-level cause (vli.ErrCorruptStream,
	// bitstream.ErrEndOfStream) so either can be matched.
	ErrCorruptStream = errors.New("codec: corrupt stream")
)

// Error kinds reported by Kind.
const (
	KindInvalidArgument      = "invalid-argument"
	KindCapacityExceeded     = "capacity-exceeded"
	KindEndOfStream          = "end-of-stream"
	KindCorruptStream        = "corrupt-stream"
	KindDecompositionFailure = "decomposition-failure"
	KindOther                = "error"
)

// Kind classifies err into one of the Kind* names for diagnostics.
// End-of-stream wins over corrupt-stream when both match.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, bitstream.ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, bitstream.ErrEndOfStream):
		return KindEndOfStream
	case errors.Is(err, ErrCorruptStream), errors.Is(err, vli.ErrCorruptStream):
		return KindCorruptStream
	case errors.Is(err, svd.ErrDecomposition):
		return KindDecompositionFailure
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, quant.ErrInvalidParameter),
		errors.Is(err, raster.ErrInvalidDimensions),
		errors.Is(err, raster.ErrShape):
		return KindInvalidArgument
	}

	return KindOther
}

// Operation tags for error wrapping.
const (
	opEncode      = "Encode"
	opDecode      = "Decode"
	opWriteHeader = "WriteHeader"
	opReadHeader  = "ReadHeader"
	opWrite       = "WriteFactors"
	opRead        = "ReadFactors"
)

// codecErrorf wraps err with an operation tag. Use only when err != nil.
func codecErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidf builds an ErrInvalidArgument error with a formatted detail.
func invalidf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// corruptf joins ErrCorruptStream with the stream-level cause.
func corruptf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrCorruptStream, err)
}
