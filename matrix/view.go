// SPDX-License-Identifier: MIT

// Package matrix - View: non-owning windows with virtual zero padding.
//
// Purpose:
//   - Give the recursive kernels O(1) quadrants without copying storage.
//   - Let a view's logical extent run past its owner's true bounds: cells
//     outside the owner read as zero and swallow writes. This is what lets
//     odd-sized quadrants share one block size.
//
// Invariants:
//   - Every view refers to the ROOT Dense; sub-views accumulate offsets.
//   - Logical cell (i,j) of a view maps to owner cell (r0+i, c0+j).
//   - A view never outlives the usefulness of its owner: it holds a pointer,
//     not a copy, so writes through it are visible in the owner.
//
// Complexity quicksheet:
//   - Sub/Split: O(1); Get/Set: O(1); Fill/CopyFrom: O(rows*cols).

package matrix

import "fmt"

// View is a non-owning logical window over a Dense's storage.
// The zero View has extent 0×0 and no owner; all reads yield zero.
type View[T Element] struct {
	base *Dense[T] // root storage owner (shared, never owned)
	r0   int       // row origin in owner coordinates
	c0   int       // col origin in owner coordinates
	r    int       // logical height (may exceed owner rows - r0)
	c    int       // logical width (may exceed owner cols - c0)
}

// Rows returns the logical row extent of the view.
func (v View[T]) Rows() int { return v.r }

// Cols returns the logical column extent of the view.
func (v View[T]) Cols() int { return v.c }

// Offset returns the view origin in owner coordinates.
func (v View[T]) Offset() (row, col int) { return v.r0, v.c0 }

// Owner returns the root Dense this view reads from and writes to.
func (v View[T]) Owner() *Dense[T] { return v.base }

// InBounds reports whether logical cell (i,j) lies inside both the view's
// extent and the owner's true bounds, i.e. whether it is backed by storage.
// Complexity: O(1).
func (v View[T]) InBounds(i, j int) bool {
	if i < 0 || i >= v.r || j < 0 || j >= v.c || v.base == nil {
		return false
	}

	return v.base.inBounds(v.r0+i, v.c0+j)
}

// Get reads logical cell (i,j).
// Implementation:
//   - Stage 1: translate to owner coordinates (r0+i, c0+j).
//   - Stage 2: outside the owner (or the view) → virtual padding → 0.
//   - Stage 3: load from the owner's flat buffer.
//
// Behavior highlights:
//   - Never fails and never panics; padding is a value, not an error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v View[T]) Get(i, j int) T {
	if !v.InBounds(i, j) {
		return 0 // zero padding
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)]
}

// Set writes logical cell (i,j); writes to padding cells are discarded.
// Discarded writes are idempotent: no observable value ever changes.
// Complexity: O(1).
func (v View[T]) Set(i, j int, val T) {
	if !v.InBounds(i, j) {
		return // padding swallows the write
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val // write through
}

// Sub returns a view of this view: origin (r0,c0) relative to v, extent rows×cols.
// Offsets accumulate against the same root owner.
//
// Errors:
//   - ErrBadShape for negative offsets or extents.
//
// Complexity: O(1).
func (v View[T]) Sub(r0, c0, rows, cols int) (View[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 {
		return View[T]{}, fmt.Errorf("View.Sub(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrBadShape)
	}

	return v.sub(r0, c0, rows, cols), nil
}

// sub is the unchecked form of Sub used by Split.
func (v View[T]) sub(r0, c0, rows, cols int) View[T] {
	return View[T]{
		base: v.base,
		r0:   v.r0 + r0,
		c0:   v.c0 + c0,
		r:    rows,
		c:    cols,
	}
}

// BlockSize returns the common extent of the four quadrants Split produces:
// ⌈rows/2⌉ × ⌈cols/2⌉.
func (v View[T]) BlockSize() (rows, cols int) {
	return v.r/2 + v.r%2, v.c/2 + v.c%2
}

// Split divides the view into four equal-size quadrants.
// Implementation:
//   - Stage 1: midpoints rMid = rows/2, cMid = cols/2 (truncating).
//   - Stage 2: block = ⌈rows/2⌉ × ⌈cols/2⌉.
//   - Stage 3: quadrants at (0,0), (0,cMid), (rMid,0), (rMid,cMid), each block-sized.
//
// Behavior highlights:
//   - For odd extents the quadrants overlap the padding region instead of
//     leaving gaps; the owner's padding rule supplies the zeros.
//   - O(1), no allocation, no error case.
//
// Returns:
//   - topLeft, topRight, bottomLeft, bottomRight.
func (v View[T]) Split() (topLeft, topRight, bottomLeft, bottomRight View[T]) {
	rMid, cMid := v.r/2, v.c/2
	br, bc := v.BlockSize()

	topLeft = v.sub(0, 0, br, bc)
	topRight = v.sub(0, cMid, br, bc)
	bottomLeft = v.sub(rMid, 0, br, bc)
	bottomRight = v.sub(rMid, cMid, br, bc)

	return topLeft, topRight, bottomLeft, bottomRight
}

// Fill writes val into every storage-backed cell of the view.
// Padding cells are skipped; rows/cols past the owner stop the scan early.
// Complexity: O(rows*cols).
func (v View[T]) Fill(val T) {
	if v.base == nil {
		return
	}
	var i, j, pi, pj int
	for i = 0; i < v.r; i++ {
		pi = v.r0 + i
		if pi >= v.base.r {
			break // bottom padding reached
		}
		for j = 0; j < v.c; j++ {
			pj = v.c0 + j
			if pj >= v.base.c {
				break // right padding reached
			}
			v.base.data[pi*v.base.c+pj] = val
		}
	}
}

// CopyFrom copies src's logical extent into v, cell by cell from the top-left.
// Reads from src honor its padding; writes past v's owner are discarded.
// Complexity: O(src.Rows()*src.Cols()).
func (v View[T]) CopyFrom(src View[T]) {
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			v.Set(i, j, src.Get(i, j))
		}
	}
}

// Materialize copies the view's logical extent into a fresh Dense.
// Padding cells become explicit zeros.
// Complexity: O(rows*cols).
func (v View[T]) Materialize() (*Dense[T], error) {
	out, err := NewDense[T](v.r, v.c)
	if err != nil {
		return nil, err
	}
	out.View().CopyFrom(v)

	return out, nil
}
