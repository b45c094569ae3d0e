// SPDX-License-Identifier: MIT

// Package matrix - elementwise primitives over views.
//
// AddInto/SubInto are the combination steps of the recursive kernels: they
// read two operands and write a destination of the same logical extent,
// honoring virtual padding on all three. They have no return value; the side
// effect is fully determined by the three views.

package matrix

// AddInto writes dest[i][j] = a[i][j] + b[i][j] over a's logical extent.
// Implementation:
//   - Stage 1: iterate i→j over a.Rows()×a.Cols() (b and dest share the extent by construction).
//   - Stage 2: Get from a and b (padding reads 0), Set into dest (padding writes dropped).
//
// Behavior highlights:
//   - dest may alias a or b cell-for-cell (each cell is read before it is written).
//
// Complexity:
//   - Time O(n²), Space O(1).
func AddInto[T Element](a, b, dest View[T]) {
	combineInto(a, b, dest, false)
}

// SubInto writes dest[i][j] = a[i][j] - b[i][j] over a's logical extent.
// Same contract as AddInto.
func SubInto[T Element](a, b, dest View[T]) {
	combineInto(a, b, dest, true)
}

// combineInto is the shared loop of AddInto/SubInto; the sign is hoisted out
// of the inner loop.
func combineInto[T Element](a, b, dest View[T], subtract bool) {
	var i, j int
	if subtract {
		for i = 0; i < a.r; i++ {
			for j = 0; j < a.c; j++ {
				dest.Set(i, j, a.Get(i, j)-b.Get(i, j))
			}
		}
		return
	}
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			dest.Set(i, j, a.Get(i, j)+b.Get(i, j))
		}
	}
}
