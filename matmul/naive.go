// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/strassen/matrix"

// engine carries the per-run state shared by the recursive kernels: the
// workspace temporaries come from, the leaf cutoff, and counters for Stats.
// Sibling calls never share temporaries; the counters are the only shared
// mutable state and the run is single-threaded.
type engine[T matrix.Element] struct {
	ws     *workspace[T]
	leaf   int // block extent at or below which kernels multiply directly
	calls  int // frames entered
	leaves int // base-case block products
}

// kernel is the signature shared by the recursive multipliers: C = A·B over
// views of equal power-of-two extent.
type kernel[T matrix.Element] func(a, b, c matrix.View[T]) error

// leafProduct multiplies a base-case block and counts it.
func (e *engine[T]) leafProduct(a, b, c matrix.View[T]) {
	e.leaves++
	naiveInto(a, b, c)
}

// naiveInto writes c = a·b with the i,j,k triple loop.
// Implementation:
//   - Stage 1: for every output cell (i,j) accumulate Σ_k a[i][k]·b[k][j] in a scalar.
//   - Stage 2: store the sum into c (overwriting, never accumulating into c).
//
// Behavior highlights:
//   - Works on views, so padding cells contribute zero and padded outputs drop writes.
//   - For 1×1 views this is exactly the scalar base case c = a·b.
//
// Complexity:
//   - Time O(r*k*c), Space O(1).
func naiveInto[T matrix.Element](a, b, c matrix.View[T]) {
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a.Get(i, k) * b.Get(k, j)
			}
			c.Set(i, j, sum)
		}
	}
}
