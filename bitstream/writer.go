// SPDX-License-Identifier: MIT

package bitstream

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// MSBFirst documents the fixed bit direction of the stream format: fields are
// written and read most-significant bit first.
const MSBFirst = true

// NoLimit disables the capacity bound of a Writer.
const NoLimit = 0

// MaxFieldWidth is the widest field WriteBits/ReadBits accept in one call.
const MaxFieldWidth = 64

// Operation tags for error wrapping.
const (
	opWriteBit  = "WriteBit"
	opWriteBits = "WriteBits"
	opReadBit   = "ReadBit"
	opReadBits  = "ReadBits"
	opClose     = "Close"
)

// streamErrorf wraps a sentinel with the operation tag and the bit position it failed at.
func streamErrorf(op string, pos int, err error) error {
	return fmt.Errorf("%s at bit %d: %w", op, pos, err)
}

// Writer appends bits to an in-memory buffer, MSB-first.
//   - capacity is the maximum number of payload bits (NoLimit = unbounded).
//   - count is the number of bits accepted so far (padding excluded).
type Writer struct {
	buf      *bytes.Buffer
	bw       *bitio.Writer
	capacity int
	count    int
	closed   bool
}

// NewWriter returns a Writer bounded to capacity bits.
// Pass NoLimit for an unbounded writer; a negative capacity yields ErrInvalidCapacity.
func NewWriter(capacity int) (*Writer, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	buf := new(bytes.Buffer)
	if capacity > 0 {
		buf.Grow((capacity + 7) / 8)
	}

	return &Writer{buf: buf, bw: bitio.NewWriter(buf), capacity: capacity}, nil
}

// reserve checks that n more bits fit under the capacity bound.
func (w *Writer) reserve(op string, n int) error {
	if w.closed {
		return streamErrorf(op, w.count, ErrClosed)
	}
	if w.capacity != NoLimit && w.count+n > w.capacity {
		return streamErrorf(op, w.count, ErrCapacityExceeded)
	}

	return nil
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit bool) error {
	if err := w.reserve(opWriteBit, 1); err != nil {
		return err
	}
	if err := w.bw.WriteBool(bit); err != nil {
		return streamErrorf(opWriteBit, w.count, err)
	}
	w.count++

	return nil
}

// WriteBits appends the n low bits of value, most-significant first.
// Bits of value above position n are ignored. The call is all-or-nothing
// with respect to the capacity bound.
func (w *Writer) WriteBits(value uint64, n int) error {
	if n < 0 || n > MaxFieldWidth {
		return streamErrorf(opWriteBits, w.count, ErrInvalidWidth)
	}
	if err := w.reserve(opWriteBits, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if err := w.bw.WriteBits(value, uint8(n)); err != nil {
		return streamErrorf(opWriteBits, w.count, err)
	}
	w.count += n

	return nil
}

// BitCount reports the number of payload bits written so far.
func (w *Writer) BitCount() int { return w.count }

// Remaining reports how many more bits fit under the bound, or -1 when unbounded.
func (w *Writer) Remaining() int {
	if w.capacity == NoLimit {
		return -1
	}

	return w.capacity - w.count
}

// Capacity returns the configured bound in bits (NoLimit when unbounded).
func (w *Writer) Capacity() int { return w.capacity }

// Close flushes the trailing partial byte (zero-padded) and finalizes the buffer.
// Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.bw.Close(); err != nil {
		return streamErrorf(opClose, w.count, err)
	}

	return nil
}

// Bytes returns the finalized stream. It is only complete after Close.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the stream size in bytes including padding: ceil(BitCount/8).
func (w *Writer) Len() int { return (w.count + 7) / 8 }
