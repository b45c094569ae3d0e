// SPDX-License-Identifier: MIT

package matmul

import (
	"math/bits"

	"github.com/katalvlaran/strassen/matrix"
	"k8s.io/klog/v2"
)

// NextPowerOfTwo returns the smallest power of two >= n. n <= 1 yields 1.
// Complexity: O(1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// normalized runs k on power-of-two padded copies of a and b and crops the
// result back to n×n.
// Implementation:
//   - Stage 1: p = NextPowerOfTwo(n).
//   - Stage 2: PadTo(a, p), PadTo(b, p); zero p×p output; each booked in the workspace.
//   - Stage 3: k(A, B, C) on the three full views.
//   - Stage 4: Crop(C, n) into the result.
//
// Behavior highlights:
//   - Padding is only ever zeros, so it contributes nothing to the cropped block.
//   - All padded matrices are released (booked out) on every exit path; on error
//     no partial result is returned.
//
// Inputs:
//   - a, b: validated, square, equal-size, n >= 1.
//
// Complexity:
//   - Time O(p²) besides k; Space 3·p² + n² plus k's temporaries.
func (e *engine[T]) normalized(op string, a, b *matrix.Dense[T], k kernel[T]) (*matrix.Dense[T], error) {
	n := a.Rows()
	p := NextPowerOfTwo(n)
	if p != n {
		klog.V(2).Infof("matmul.%s: padding %dx%d operands to %dx%d", op, n, n, p, p)
	}

	ap, releaseA, err := e.padded(a, p)
	defer releaseA()
	if err != nil {
		return nil, err
	}
	bp, releaseB, err := e.padded(b, p)
	defer releaseB()
	if err != nil {
		return nil, err
	}
	cp, releaseC, err := e.ws.acquire(p, p)
	defer releaseC()
	if err != nil {
		return nil, err
	}

	if err = k(ap.View(), bp.View(), cp.View()); err != nil {
		return nil, err
	}

	releaseR, err := e.ws.reserve(n, n)
	defer releaseR()
	if err != nil {
		return nil, err
	}

	return matrix.Crop(cp, n)
}

// padded books p×p elements and returns PadTo(m, p).
func (e *engine[T]) padded(m *matrix.Dense[T], p int) (*matrix.Dense[T], func(), error) {
	release, err := e.ws.reserve(p, p)
	if err != nil {
		return nil, release, err
	}
	out, err := matrix.PadTo(m, p)
	if err != nil {
		release()
		return nil, func() {}, err
	}

	return out, release, nil
}
