// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the reconstruction kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/svdimg/matrix"
)

// benchSizes are the square channel sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			u := MustDense(b, n, n)
			vt := MustDense(b, n, n)
			fillDenseRand(b, u, 1337)
			fillDenseRand(b, vt, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(u, vt)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := MustDense(b, n, n/2)
			fillDenseRand(b, m, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t, err := matrix.Transpose(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = t
			}
		})
	}
}

func BenchmarkMaxAbsDiff(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustDense(b, n, n)
			y := MustDense(b, n, n)
			fillDenseRand(b, x, 1)
			fillDenseRand(b, y, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.MaxAbsDiff(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
