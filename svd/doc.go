// Package svd is the encoder's dense singular value decomposition oracle.
//
// Decompose hands a channel matrix to gonum's LAPACK-backed SVD in its thin
// (economy) form and returns the factors as a factor.Triple: U (M×K),
// S (K, descending, non-negative) and Vᵀ (K×N) with K = min(M, N). The codec
// treats the result as exact input; nothing downstream depends on how it was
// computed. The decoder never calls this package.
package svd
