// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/svdimg/bitstream"
	"github.com/katalvlaran/svdimg/factor"
	"github.com/katalvlaran/svdimg/quant"
	"github.com/katalvlaran/svdimg/raster"
	"github.com/katalvlaran/svdimg/vli"
)

// MaxDimension bounds width and height on both sides of the stream.
const MaxDimension = raster.MaxDimension

// Header is the fixed stream prefix: VLI(width) VLI(height) VLI(q0) VLI(q1) VLI(q2).
type Header struct {
	Width, Height int
	Quant         quant.Params
}

// Validate checks 1 ≤ width, height ≤ MaxDimension and every exponent.
func (h Header) Validate() error {
	if h.Width < 1 || h.Width > MaxDimension || h.Height < 1 || h.Height > MaxDimension {
		return invalidf("Header", "dimensions %dx%d outside 1..%d", h.Width, h.Height, MaxDimension)
	}
	if err := h.Quant.Validate(); err != nil {
		return fmt.Errorf("Header: %w: %w", ErrInvalidArgument, err)
	}

	return nil
}

// Dims returns the channel matrix shape M×N (M = height, N = width) and K = min(M, N).
func (h Header) Dims() (m, n, k int) {
	return h.Height, h.Width, factor.Rank(h.Height, h.Width)
}

// Bits returns the exact encoded size of h in bits.
func (h Header) Bits() int {
	n := vli.Len(int64(h.Width)) + vli.Len(int64(h.Height))
	for _, q := range h.Quant {
		n += vli.Len(int64(q))
	}

	return n
}

// WriteHeader validates h and writes it.
func WriteHeader(enc *vli.Encoder, h Header) error {
	if err := h.Validate(); err != nil {
		return codecErrorf(opWriteHeader, err)
	}
	fields := [2 + quant.Channels]int64{int64(h.Width), int64(h.Height)}
	for c, q := range h.Quant {
		fields[2+c] = int64(q)
	}
	for _, v := range fields {
		if err := enc.Encode(v); err != nil {
			return codecErrorf(opWriteHeader, err)
		}
	}

	return nil
}

// ReadHeader reads and validates a header. A short stream yields
// ErrCorruptStream; out-of-range fields yield ErrInvalidArgument.
func ReadHeader(dec *vli.Decoder) (Header, error) {
	var fields [2 + quant.Channels]int64
	for i := range fields {
		v, err := dec.Decode()
		if err != nil {
			return Header{}, corruptf(opReadHeader, err)
		}
		fields[i] = v
	}
	if fields[0] > MaxDimension || fields[1] > MaxDimension {
		return Header{}, invalidf(opReadHeader, "dimensions %dx%d exceed %d", fields[0], fields[1], MaxDimension)
	}
	h := Header{Width: int(fields[0]), Height: int(fields[1])}
	for c := range h.Quant {
		if fields[2+c] > quant.MaxExponent {
			return Header{}, fmt.Errorf("%s: exponent %d: %w: %w",
				opReadHeader, fields[2+c], ErrInvalidArgument, quant.ErrInvalidParameter)
		}
		h.Quant[c] = int(fields[2+c])
	}
	if err := h.Validate(); err != nil {
		return Header{}, codecErrorf(opReadHeader, err)
	}

	return h, nil
}

// PeekHeader decodes only the header of an encoded image.
func PeekHeader(data []byte) (Header, error) {
	r := bitstream.NewReader(data)
	defer r.Close()

	return ReadHeader(vli.NewDecoder(r))
}
