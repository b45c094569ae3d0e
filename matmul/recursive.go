// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/strassen/matrix"

// recursive computes c = a·b by splitting every operand into quadrants and
// forming each output quadrant from two recursive products:
//
//	C11 = A11·B11 + A12·B21
//	C12 = A11·B12 + A12·B22
//	C21 = A21·B11 + A22·B21
//	C22 = A21·B12 + A22·B22
//
// Implementation:
//   - Stage 1: base case when the extent is <= leaf size (1 by default).
//   - Stage 2: split a, b, c; acquire two block-sized temporaries T1, T2.
//   - Stage 3: per output quadrant, T1 = X1·Y1, T2 = X2·Y2, then AddInto(T1, T2, Cxx).
//   - Stage 4: deferred release returns T1, T2 on every exit path.
//
// Behavior highlights:
//   - Eight recursive products per level; depth log2(n).
//   - Any failed acquisition or recursive call aborts the frame and propagates unchanged.
//
// Inputs:
//   - a, b, c: views of equal n×n extent, n a power of two (the driver pads).
//
// Complexity:
//   - Time O(n³), Space O(n²) live temporaries along one root-to-leaf path.
func (e *engine[T]) recursive(a, b, c matrix.View[T]) error {
	e.calls++
	if a.Rows() <= e.leaf {
		e.leafProduct(a, b, c)
		return nil
	}

	a11, a12, a21, a22 := a.Split()
	b11, b12, b21, b22 := b.Split()
	c11, c12, c21, c22 := c.Split()
	block, _ := a.BlockSize()

	tmp, release, err := e.ws.acquireN(2, block, block)
	defer release()
	if err != nil {
		return err
	}
	t1, t2 := tmp[0].View(), tmp[1].View()

	quadrants := [...]struct {
		x1, y1, x2, y2, dst matrix.View[T]
	}{
		{a11, b11, a12, b21, c11},
		{a11, b12, a12, b22, c12},
		{a21, b11, a22, b21, c21},
		{a21, b12, a22, b22, c22},
	}
	for _, q := range quadrants {
		if err = e.recursive(q.x1, q.y1, t1); err != nil {
			return err
		}
		if err = e.recursive(q.x2, q.y2, t2); err != nil {
			return err
		}
		matrix.AddInto(t1, t2, q.dst)
	}

	return nil
}
