// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
	"k8s.io/klog/v2"
)

// Multiply returns a·b computed with alg. a and b must be square and of equal size.
//
// Errors (match with errors.Is):
//   - matrix.ErrNilMatrix: a or b is nil.
//   - matrix.ErrDimensionMismatch: a or b is not square, or sizes differ.
//   - matrix.ErrAllocation: storage could not be obtained (see WithMemoryLimit).
//   - ErrUnknownAlgorithm: alg is not one of Algorithms().
//
// On error no result is returned. The operands are never modified.
func Multiply[T matrix.Element](a, b *matrix.Dense[T], alg Algorithm, opts ...Option) (*matrix.Dense[T], error) {
	if !alg.valid() {
		return nil, fmt.Errorf("matmul.Multiply(%d): %w", int(alg), ErrUnknownAlgorithm)
	}
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return nil, matmulErrorf(alg.String(), err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	e := &engine[T]{ws: newWorkspace[T](o.memoryLimit), leaf: o.leafSize}

	// Registered first so it runs after every release below.
	defer func() {
		if o.stats == nil {
			return
		}
		padded := n
		if alg != Naive && n > 0 {
			padded = NextPowerOfTwo(n)
		}
		*o.stats = Stats{
			Algorithm:    alg,
			Size:         n,
			PaddedSize:   padded,
			Calls:        e.calls,
			LeafProducts: e.leaves,
			PeakElements: e.ws.peak,
			LiveElements: e.ws.live,
		}
	}()

	var (
		res *matrix.Dense[T]
		err error
	)
	switch {
	case n == 0:
		res, err = matrix.NewDense[T](0, 0)
	case alg == Naive:
		res, err = e.naive(a, b)
	case alg == Recursive:
		res, err = e.normalized(alg.String(), a, b, e.recursive)
	default:
		res, err = e.normalized(alg.String(), a, b, e.strassen)
	}
	if err != nil {
		return nil, matmulErrorf(alg.String(), err)
	}
	klog.V(3).Infof("matmul.%s: n=%d, %d calls, %d leaf products, peak %d elements",
		alg, n, e.calls, e.leaves, e.ws.peak)

	return res, nil
}

// naive allocates the n×n result and fills it with the triple loop.
func (e *engine[T]) naive(a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	res, release, err := e.ws.acquire(a.Rows(), b.Cols())
	defer release()
	if err != nil {
		return nil, err
	}
	e.calls++
	e.leafProduct(a.View(), b.View(), res.View())

	return res, nil
}

// MultiplyNaive returns a·b using the O(n³) triple loop.
func MultiplyNaive[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Multiply(a, b, Naive, opts...)
}

// MultiplyRecursive returns a·b using divide-and-conquer with eight quadrant
// products per level. Inputs of any size are padded to the next power of two.
func MultiplyRecursive[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Multiply(a, b, Recursive, opts...)
}

// MultiplyStrassen returns a·b using Strassen's seven-product recursion.
// Inputs of any size are padded to the next power of two.
func MultiplyStrassen[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Multiply(a, b, Strassen, opts...)
}
