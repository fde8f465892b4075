// Package factor holds the per-channel low-rank factorization A ≈ U·diag(S)·Vᵀ
// in its float form (Triple) and its quantized form (Quantized).
//
// Shapes follow one fixed convention in both directions: a channel plane is an
// M×N matrix with M = image height and N = image width, U is M×K, S has K
// entries and Vᵀ is K×N, where K = Rank(M, N) = min(M, N). K is derived, never
// transmitted.
//
// Both forms are channel-scoped: they are created for one channel and dropped
// as soon as that channel has been serialized or reconstructed.
package factor
