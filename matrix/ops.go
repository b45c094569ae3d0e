// SPDX-License-Identifier: MIT

// Package matrix - whole-matrix collaborators.
//
// Add/Sub/Scale allocate a fresh result and never mutate their operands.
// They are not used by the recursive kernels (those combine through views,
// see view_ops.go); they exist for callers that work with whole matrices.
// PadTo/Crop are the copy steps of power-of-two normalization.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
	opPad   = "PadTo"
	opCrop  = "Crop"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b into a newly allocated Dense.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result.
//   - Stage 2: single flat loop over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T Element](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if subtract {
		for k := range res.data {
			res.data[k] = a.data[k] - b.data[k]
		}
	} else {
		for k := range res.data {
			res.data[k] = a.data[k] + b.data[k]
		}
	}

	return res, nil
}

// Add returns a + b. Shapes must match.
func Add[T Element](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b. Shapes must match.
func Sub[T Element](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Scale returns k·m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[T Element](m *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= k
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical cells.
// Two nil matrices are equal; nil and non-nil are not.
func Equal[T Element](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// PadTo copies a square n×n matrix into the top-left block of a fresh p×p
// zero matrix. p must be >= n.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square or p < n), allocation errors.
// Complexity: O(p²).
func PadTo[T Element](m *Dense[T], p int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if p < m.r {
		return nil, matrixErrorf(opPad, fmt.Errorf("target %d < size %d: %w", p, m.r, ErrDimensionMismatch))
	}
	dst, err := NewDense[T](p, p)
	if err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	CopyTopLeft(dst, m)

	return dst, nil
}

// Crop copies the top-left n×n block of m into a fresh n×n matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (n exceeds either extent), allocation errors.
// Complexity: O(n²).
func Crop[T Element](m *Dense[T], n int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCrop, err)
	}
	if n > m.r || n > m.c {
		return nil, matrixErrorf(opCrop, fmt.Errorf("size %d exceeds %dx%d: %w", n, m.r, m.c, ErrDimensionMismatch))
	}
	dst, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opCrop, err)
	}
	CopyTopLeft(dst, m)

	return dst, nil
}

// CopyTopLeft copies the overlapping top-left block of src into dst, row by row.
// Cells of dst outside the overlap are left untouched.
// Complexity: O(min(r)*min(c)).
func CopyTopLeft[T Element](dst, src *Dense[T]) {
	rows, cols := min(dst.r, src.r), min(dst.c, src.c)
	for i := 0; i < rows; i++ {
		copy(dst.data[i*dst.c:i*dst.c+cols], src.data[i*src.c:i*src.c+cols])
	}
}
