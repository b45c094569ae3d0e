// SPDX-License-Identifier: MIT

package matmul_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matmul"
	"github.com/katalvlaran/strassen/matrix"
)

// benchSizes mixes powers of two with sizes that force padding.
var benchSizes = []int{32, 63, 64, 128}

var sinkM *matrix.Dense[int]

func benchmarkAlgorithm(b *testing.B, alg matmul.Algorithm, opts ...matmul.Option) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randSquare(b, n, 1337)
			B := randSquare(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := matmul.Multiply(A, B, alg, opts...)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = c
			}
		})
	}
}

func BenchmarkNaive(b *testing.B)     { benchmarkAlgorithm(b, matmul.Naive) }
func BenchmarkRecursive(b *testing.B) { benchmarkAlgorithm(b, matmul.Recursive) }
func BenchmarkStrassen(b *testing.B)  { benchmarkAlgorithm(b, matmul.Strassen) }

// BenchmarkStrassenLeaf16 stops recursing at 16×16 blocks.
func BenchmarkStrassenLeaf16(b *testing.B) {
	benchmarkAlgorithm(b, matmul.Strassen, matmul.WithLeafSize(16))
}
