// Package matmul multiplies square integer matrices with three algorithms:
//
//   - Naive: the i,j,k triple loop, O(n³).
//   - Recursive: divide-and-conquer on four quadrants, eight products per level, O(n³).
//   - Strassen: seven products per level via linear combinations, O(n^log2(7)) ≈ O(n^2.807).
//
// The recursive algorithms run on matrix.View quadrants (no copies of the
// operands) and require power-of-two extents; Multiply pads both operands
// with zeros up to the next power of two, runs the kernel, and crops the
// result back. Every temporary is acquired from a per-run workspace and
// released by the frame that acquired it, on success and on failure alike.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	c, err := matmul.MultiplyStrassen(a, b) // [[19 22] [43 50]]
//
// Options tune a run: WithLeafSize stops recursing at small blocks,
// WithMemoryLimit caps the elements one run may hold, WithStats reports
// call counts and peak usage.
package matmul
