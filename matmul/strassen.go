// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/strassen/matrix"

// strassen computes c = a·b with seven recursive quadrant products instead of eight.
//
// For A = [A11 A12; A21 A22] and B = [B11 B12; B21 B22]:
//
//	P1 = (A11 + A22)(B11 + B22)
//	P2 = (A21 + A22) B11
//	P3 =  A11 (B12 − B22)
//	P4 =  A22 (B21 − B11)
//	P5 = (A11 + A12) B22
//	P6 = (A21 − A11)(B11 + B12)
//	P7 = (A12 − A22)(B21 + B22)
//
//	C11 = P1 + P4 − P5 + P7
//	C12 = P3 + P5
//	C21 = P2 + P4
//	C22 = P1 − P2 + P3 + P6
//
// Implementation:
//   - Stage 1: base case when the extent is <= leaf size; no temporaries are acquired.
//   - Stage 2: split a, b, c; acquire nine block-sized temporaries (T1, T2, P1..P7).
//   - Stage 3: materialize composite operands into T1/T2, one recursive call per Pk.
//   - Stage 4: combine P1..P7 into the four quadrants of c.
//   - Stage 5: deferred release returns all nine temporaries on every exit path.
//
// Inputs:
//   - a, b, c: views of equal n×n extent, n a power of two (the driver pads).
//
// Complexity:
//   - Time O(n^log2(7)) ≈ O(n^2.807); Space O(n²) live temporaries along one path.
func (e *engine[T]) strassen(a, b, c matrix.View[T]) error {
	e.calls++
	if a.Rows() <= e.leaf {
		e.leafProduct(a, b, c)
		return nil
	}

	a11, a12, a21, a22 := a.Split()
	b11, b12, b21, b22 := b.Split()
	c11, c12, c21, c22 := c.Split()
	block, _ := a.BlockSize()

	tmp, release, err := e.ws.acquireN(9, block, block)
	defer release()
	if err != nil {
		return err
	}
	t1, t2 := tmp[0].View(), tmp[1].View()
	p1, p2, p3 := tmp[2].View(), tmp[3].View(), tmp[4].View()
	p4, p5, p6, p7 := tmp[5].View(), tmp[6].View(), tmp[7].View(), tmp[8].View()

	// P1 = (A11 + A22)(B11 + B22)
	matrix.AddInto(a11, a22, t1)
	matrix.AddInto(b11, b22, t2)
	if err = e.strassen(t1, t2, p1); err != nil {
		return err
	}
	// P2 = (A21 + A22) B11
	matrix.AddInto(a21, a22, t1)
	if err = e.strassen(t1, b11, p2); err != nil {
		return err
	}
	// P3 = A11 (B12 − B22)
	matrix.SubInto(b12, b22, t2)
	if err = e.strassen(a11, t2, p3); err != nil {
		return err
	}
	// P4 = A22 (B21 − B11)
	matrix.SubInto(b21, b11, t2)
	if err = e.strassen(a22, t2, p4); err != nil {
		return err
	}
	// P5 = (A11 + A12) B22
	matrix.AddInto(a11, a12, t1)
	if err = e.strassen(t1, b22, p5); err != nil {
		return err
	}
	// P6 = (A21 − A11)(B11 + B12)
	matrix.SubInto(a21, a11, t1)
	matrix.AddInto(b11, b12, t2)
	if err = e.strassen(t1, t2, p6); err != nil {
		return err
	}
	// P7 = (A12 − A22)(B21 + B22)
	matrix.SubInto(a12, a22, t1)
	matrix.AddInto(b21, b22, t2)
	if err = e.strassen(t1, t2, p7); err != nil {
		return err
	}

	// C11 = P1 + P4 − P5 + P7
	matrix.AddInto(p1, p4, t1)
	matrix.SubInto(t1, p5, t1)
	matrix.AddInto(t1, p7, c11)
	// C12 = P3 + P5
	matrix.AddInto(p3, p5, c12)
	// C21 = P2 + P4
	matrix.AddInto(p2, p4, c21)
	// C22 = P1 − P2 + P3 + P6
	matrix.SubInto(p1, p2, t1)
	matrix.AddInto(t1, p3, t1)
	matrix.AddInto(t1, p6, c22)

	return nil
}
