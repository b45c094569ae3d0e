// Package strassen multiplies dense square integer matrices with three
// algorithms of increasing sophistication: the naive triple loop, a
// divide-and-conquer recursion on quadrants, and Strassen's seven-product
// recursion.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/       row-major Dense storage, zero-copy Views with virtual zero padding,
//	              quadrant splitting, view arithmetic, formatting
//	matmul/       the multipliers, power-of-two normalization, scoped workspace, options
//	bench/        timing harness over deterministic random inputs
//	config/       STRASSEN_* environment defaults (optionally from .env)
//	cmd/strassen/ command-line demo, cross-check and benchmark
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	c, _ := matmul.MultiplyStrassen(a, b)
//	fmt.Print(matrix.Format(c)) // "19 22 \r\n43 50 \r\n"
//
// Inputs of any size n are padded to the next power of two, multiplied, and
// cropped back to n×n. Temporaries are scoped to the recursion frame that
// acquired them and are released on every path, including failures.
package strassen
