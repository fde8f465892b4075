// SPDX-License-Identifier: MIT

// Package codec turns a three-channel planar image into a compact bit stream
// by truncated singular value decomposition, and back.
//
// Encode pipeline:
//
//	header → per channel: center luma, SVD, quantize → rank-interleaved factors → close
//
// Decode pipeline:
//
//	header → rank-interleaved factors → per channel: dequantize, reconstruct, un-center
//
// The stream is unversioned and has no magic number:
//
//	VLI(width) VLI(height) VLI(q0) VLI(q1) VLI(q2)
//	for k in 0..K-1, for c in 0..2:
//	    VLI(S_c[k])  SVLI(U_c[0..M-1, k])  SVLI(Vᵀ_c[k, 0..N-1])
//	zero padding to the next byte
//
// with M = height, N = width and K = min(M, N). Channel planes are expected
// in luma-chroma form already (see package colorspace); the codec only
// applies the fixed LumaOffset to channel 0.
//
// Per-channel factorization and reconstruction run concurrently; the stream
// itself is always written and read sequentially, in the order above.
// Both directions are deterministic: the same stream decodes to
// bit-identical planes every time.
//
// Errors are classified by Kind: invalid-argument, capacity-exceeded,
// end-of-stream, corrupt-stream and decomposition-failure. By default any of
// them aborts the call with no partial result. WithRateControl and
// WithProgressive opt into cutting and reading stream prefixes.
package codec
