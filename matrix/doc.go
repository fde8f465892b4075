// Package matrix offers the dense linear-algebra primitives used by the codec.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking (no raw pointer/stride arithmetic
//     leaks out of this package).
//   - Mul, the deterministic i→k→j product used by the reconstructor.
//   - ScaleRows / ScaleCols, in-place diagonal scaling used to fold singular
//     values into whichever factor is cheaper to touch.
//
// Factor matrices are short-lived: one channel allocates them, uses them and
// drops them. Nothing in this package keeps global scratch state.
//
// See the examples in this package for usage patterns.
package matrix
