// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the generic kernels, over
// machine integers and over the symbolic transition matrices of the urn model.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ratdom/algebra"
	"github.com/katalvlaran/ratdom/dominance"
	"github.com/katalvlaran/ratdom/matrix"
	"github.com/katalvlaran/ratdom/model"
)

// sinks to defeat dead-code elimination
var (
	sinkInt *matrix.Dense[int]
	sinkSum *matrix.Dense[*algebra.RationalFunctionSum]
)

func benchInts(b *testing.B, n int) *matrix.Dense[int] {
	b.Helper()
	next := 0
	m, err := matrix.NewDense(n, n, func() int { next = (next*31 + 7) % 101; return next })
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMul_Int(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(b *testing.B) {
				A := benchInts(b, n)
				B := benchInts(b, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Mul(A, B, intRing, matrix.WithWorkers(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkInt = m
				}
			})
		}
	}
}

func BenchmarkMul_SumRing(b *testing.B) {
	b.ReportAllocs()
	ring := dominance.SumRing()
	for _, balls := range []int{2, 3} {
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("balls=%d/workers=%d", balls, w), func(b *testing.B) {
				A, err := model.TransitionMatrix(balls)
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Mul(A, A, ring, matrix.WithWorkers(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkSum = m
				}
			})
		}
	}
}

func BenchmarkPow_SumRing(b *testing.B) {
	b.ReportAllocs()
	ring := dominance.SumRing()
	A, err := model.TransitionMatrix(2)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Pow(A, 3, ring)
		if err != nil {
			b.Fatal(err)
		}
		sinkSum = m
	}
}
