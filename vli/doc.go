// Package vli implements the self-delimiting variable-length integer code of
// the stream, plus its companion one-bit sign channel.
//
// Unsigned values use the order-0 exponential Golomb code of x+1: with
// L = bitlen(x+1), the encoder emits L-1 zero bits followed by the L bits of
// x+1 (its leading one terminates the prefix). Small values are cheap:
//
//	0 → 1        1 → 010      2 → 011      3 → 00100    6 → 00111
//
// and any value in 0..MaxValue is representable without a fixed width.
//
// Signed values are written as the code of |x| followed, only when x != 0,
// by one sign bit (1 = negative). Zero never carries a sign bit; the decoder
// mirrors that rule exactly, so a zero is never followed by a phantom bit.
package vli
