// Package quant maps factor coefficients between float64 and int64 with a
// per-channel power-of-two scale.
//
//	Quantize(v, q)   = round-half-away-from-zero(v · 2^q)
//	Dequantize(i, q) = i / 2^q
//
// Both directions scale by an exact power of two (math.Ldexp), so the only
// error is the rounding step: |Dequantize(Quantize(v,q),q) - v| ≤ 2^-(q+1),
// and re-quantizing a dequantized value at the same exponent is the identity.
//
// Exponents live in Params, one per channel, and must satisfy 0 ≤ q ≤ MaxExponent.
package quant
