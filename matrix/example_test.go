// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/svdimg/matrix"
)

// ExampleScaleCols folds singular values into a left factor and multiplies
// back, the same shape of work the reconstructor performs per channel.
func ExampleScaleCols() {
	u, _ := matrix.NewDenseFrom(2, 2, []float64{1, 0, 0, 1})
	vt, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	_ = matrix.ScaleCols(u, []float64{2, 0.5})

	a, _ := matrix.Mul(u, vt)
	fmt.Print(a)
	// Output:
	// [2, 4, 6]
	// [2, 2.5, 3]
}

// ExampleTranspose turns a column-vector factor into its row form.
func ExampleTranspose() {
	v, _ := matrix.NewDenseFrom(3, 1, []float64{0.6, 0, 0.8})
	vt, _ := matrix.Transpose(v)
	fmt.Print(vt)
	// Output:
	// [0.6, 0, 0.8]
}
