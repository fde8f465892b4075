// SPDX-License-Identifier: MIT

package bitstream

import (
	"bytes"

	"github.com/icza/bitio"
)

// Reader consumes bits from an immutable byte buffer, MSB-first.
// Bounds are checked against the buffer length before every read, so a failing
// read never consumes a partial field.
type Reader struct {
	br     *bitio.Reader
	total  int // 8*len(data)
	count  int // bits consumed
	closed bool
}

// NewReader returns a Reader over data. The Reader does not copy data; the
// caller must not modify it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{br: bitio.NewReader(bytes.NewReader(data)), total: 8 * len(data)}
}

// take checks that n more bits are available.
func (r *Reader) take(op string, n int) error {
	if r.closed {
		return streamErrorf(op, r.count, ErrClosed)
	}
	if r.count+n > r.total {
		return streamErrorf(op, r.count, ErrEndOfStream)
	}

	return nil
}

// ReadBit consumes a single bit.
func (r *Reader) ReadBit() (bool, error) {
	if err := r.take(opReadBit, 1); err != nil {
		return false, err
	}
	b, err := r.br.ReadBool()
	if err != nil {
		return false, streamErrorf(opReadBit, r.count, ErrEndOfStream)
	}
	r.count++

	return b, nil
}

// ReadBits consumes n bits and returns them right-aligned, first bit most significant.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > MaxFieldWidth {
		return 0, streamErrorf(opReadBits, r.count, ErrInvalidWidth)
	}
	if err := r.take(opReadBits, n); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	v, err := r.br.ReadBits(uint8(n))
	if err != nil {
		return 0, streamErrorf(opReadBits, r.count, ErrEndOfStream)
	}
	r.count += n

	return v, nil
}

// BitCount reports the number of bits consumed so far.
func (r *Reader) BitCount() int { return r.count }

// Remaining reports how many bits are left, padding included.
func (r *Reader) Remaining() int { return r.total - r.count }

// Close releases the backing buffer. Closing twice is a no-op.
func (r *Reader) Close() error {
	r.closed = true
	r.br = nil

	return nil
}
