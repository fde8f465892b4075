// SPDX-License-Identifier: MIT

package vli

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/svdimg/bitstream"
)

// MaxValue is the largest magnitude the code carries.
const MaxValue = math.MaxInt64

// maxPrefix is the longest legal run of leading zeros: x+1 ≤ 2^63 needs 64 bits.
const maxPrefix = 63

// Len returns the exact number of bits Encode spends on x (x ≥ 0).
// Complexity: O(1).
func Len(x int64) int {
	return 2*bits.Len64(uint64(x)+1) - 1
}

// SignedLen returns the exact number of bits EncodeSigned spends on x,
// including the sign bit for non-zero values.
func SignedLen(x int64) int {
	if x == 0 {
		return 1
	}
	if x < 0 {
		x = -x
	}

	return Len(x) + 1
}

// Encoder writes VLI codes onto a bit stream.
type Encoder struct {
	w *bitstream.Writer
}

// NewEncoder wraps w. The Encoder does not own w; the caller closes it.
func NewEncoder(w *bitstream.Writer) *Encoder {
	return &Encoder{w: w}
}

// Writer exposes the underlying stream (bit counts, capacity).
func (e *Encoder) Writer() *bitstream.Writer { return e.w }

// Encode writes the unsigned code of x.
// Errors: ErrNegative for x < 0; bitstream.ErrCapacityExceeded from the stream.
// When the code does not fit under the capacity bound nothing is written.
func (e *Encoder) Encode(x int64) error {
	if x < 0 {
		return fmt.Errorf("Encode(%d): %w", x, ErrNegative)
	}
	v := uint64(x) + 1
	n := bits.Len64(v)
	// Check the whole code up front so a capacity failure leaves no half-written prefix.
	if rem := e.w.Remaining(); rem >= 0 && 2*n-1 > rem {
		return fmt.Errorf("Encode(%d): %w", x, bitstream.ErrCapacityExceeded)
	}
	if err := e.w.WriteBits(0, n-1); err != nil {
		return err
	}

	return e.w.WriteBits(v, n)
}

// EncodeSigned writes |x| followed by a sign bit when x != 0.
// Errors: ErrOutOfRange for math.MinInt64; bitstream.ErrCapacityExceeded.
func (e *Encoder) EncodeSigned(x int64) error {
	if x == math.MinInt64 {
		return fmt.Errorf("EncodeSigned(%d): %w", x, ErrOutOfRange)
	}
	mag := x
	if mag < 0 {
		mag = -mag
	}
	if rem := e.w.Remaining(); rem >= 0 && SignedLen(x) > rem {
		return fmt.Errorf("EncodeSigned(%d): %w", x, bitstream.ErrCapacityExceeded)
	}
	if err := e.Encode(mag); err != nil {
		return err
	}
	if x == 0 {
		return nil // zero never carries a sign bit
	}

	return e.w.WriteBit(x < 0)
}

// EncodeBit writes one raw bit (flags, signs of externally coded values).
func (e *Encoder) EncodeBit(b bool) error {
	return e.w.WriteBit(b)
}

// Decoder reads VLI codes from a bit stream.
type Decoder struct {
	r *bitstream.Reader
}

// NewDecoder wraps r. The Decoder does not own r; the caller closes it.
func NewDecoder(r *bitstream.Reader) *Decoder {
	return &Decoder{r: r}
}

// Reader exposes the underlying stream (bit counts).
func (d *Decoder) Reader() *bitstream.Reader { return d.r }

// corrupt tags a stream failure as a corrupt value while keeping the cause matchable.
func corrupt(err error) error {
	return fmt.Errorf("%w: %w", ErrCorruptStream, err)
}

// Decode reads one unsigned code.
// Errors: ErrCorruptStream (wrapping bitstream.ErrEndOfStream when the stream is short).
func (d *Decoder) Decode() (int64, error) {
	zeros := 0
	for {
		b, err := d.r.ReadBit()
		if err != nil {
			return 0, corrupt(err)
		}
		if b {
			break
		}
		zeros++
		if zeros > maxPrefix {
			return 0, fmt.Errorf("Decode: prefix of %d zeros: %w", zeros, ErrCorruptStream)
		}
	}
	rest, err := d.r.ReadBits(zeros)
	if err != nil {
		return 0, corrupt(err)
	}
	v := uint64(1)<<zeros | rest
	if v-1 > MaxValue {
		return 0, fmt.Errorf("Decode: value overflows int64: %w", ErrCorruptStream)
	}

	return int64(v - 1), nil
}

// DecodeSigned reads a magnitude and, when it is non-zero, one sign bit.
func (d *Decoder) DecodeSigned() (int64, error) {
	mag, err := d.Decode()
	if err != nil {
		return 0, err
	}
	if mag == 0 {
		return 0, nil
	}
	neg, err := d.r.ReadBit()
	if err != nil {
		return 0, corrupt(err)
	}
	if neg {
		return -mag, nil
	}

	return mag, nil
}

// DecodeBit reads one raw bit.
func (d *Decoder) DecodeBit() (bool, error) {
	b, err := d.r.ReadBit()
	if err != nil {
		return false, corrupt(err)
	}

	return b, nil
}
