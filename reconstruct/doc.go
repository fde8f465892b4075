// SPDX-License-Identifier: MIT

// Package reconstruct rebuilds a channel matrix from its factors:
//
//	A[m,n] = Σ_k U[m,k] · S[k] · Vᵀ[k,n]
//
// Reconstruct folds the singular values into whichever factor is smaller
// (U when M ≤ N, Vᵀ otherwise) and then runs one matrix product, so the
// scaling costs min(M,N)·K multiplies instead of M·N·K. The product uses a
// fixed summation order, which makes the result a pure function of the
// factors: decoding the same stream twice yields bit-identical pixels.
//
// Unfolded evaluates the triple sum literally and serves as a reference.
package reconstruct
