// Package bitstream provides the ordered bit sequence every other codec layer
// is built on.
//
// A Writer appends bits to a growable byte buffer that is bounded by a
// capacity fixed at construction: a write that would cross the bound fails
// with ErrCapacityExceeded and leaves the stream untouched, so the encoder can
// cap its output instead of truncating it silently. A Reader walks an
// immutable input buffer and fails with ErrEndOfStream when a read would go
// past its end.
//
// Bit order (stream-format constant, see MSBFirst):
//
//	Multi-bit fields are emitted most-significant bit first, and bytes are
//	filled from their most-significant bit down. Writing 0b1011 (n=4) followed
//	by 0b01 (n=2) and closing yields the single byte 0b1011_0100.
//
// Close on a Writer pads the trailing partial byte with zero bits. Streams are
// not safe for concurrent use: one encode or decode call owns a stream.
package bitstream
