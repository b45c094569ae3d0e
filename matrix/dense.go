// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major integer buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Serve as the storage root for no-copy views (View) used by the recursive kernels.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxNew = "NewDense"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: reject element counts that overflow int (ErrAllocation).
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - 0×0, 0×k and k×0 are legal (empty buffer).
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	size, ok := ElementCount(rows, cols)
	if !ok {
		return nil, denseErrorf(ctxNew, rows, cols, ErrAllocation)
	}
	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, size)}, nil
}

// ElementCount returns rows*cols and whether the product fits in an int.
// Negative inputs report false.
func ElementCount(rows, cols int) (int, bool) {
	if rows < 0 || cols < 0 {
		return 0, false
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return 0, false // r*c would overflow
	}

	return rows * cols, true
}

// FromRows builds a Dense from a rectangular slice of rows (copied).
// An empty input yields a 0×0 matrix; ragged rows yield ErrDimensionMismatch.
// Complexity: O(r*c).
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return NewDense[T](0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T Element](n int) (*Dense[T], error) {
	return Diagonal[T](n, 1)
}

// Diagonal returns the n×n matrix with v on the main diagonal and zeros elsewhere.
// Complexity: O(n²) for zero-init, O(n) for the diagonal writes.
func Diagonal[T Element](n int, v T) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = v
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// inBounds reports whether (row, col) addresses a real cell.
func (m *Dense[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if !m.inBounds(row, col) {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// ToRows materializes the matrix as a slice of row slices (copied).
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// View returns a view covering exactly the matrix: offsets (0,0), extent Rows()×Cols().
// Complexity: O(1).
func (m *Dense[T]) View() View[T] {
	return View[T]{base: m, r: m.r, c: m.c}
}

// Window returns a view with origin (r0,c0) and logical extent rows×cols.
// The extent may reach past the matrix; those cells read as zero (see View).
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrBadShape for negative offsets or extents.
//
// Complexity: O(1).
func (m *Dense[T]) Window(r0, c0, rows, cols int) (View[T], error) {
	if m == nil {
		return View[T]{}, fmt.Errorf("Dense.Window: %w", ErrNilMatrix)
	}

	return m.View().Sub(r0, c0, rows, cols)
}
