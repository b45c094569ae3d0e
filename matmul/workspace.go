// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// workspace hands out the Dense matrices of one run and keeps the books on
// them. Every acquire returns a release func that the acquiring frame defers,
// so temporaries have strict nested lifetimes and a failure anywhere unwinds
// every frame back to zero live elements.
//
// Release only settles accounting; the storage itself is reclaimed by the
// garbage collector once unreferenced. A released matrix that escapes (the
// cropped result) stays valid.
type workspace[T matrix.Element] struct {
	limit int // 0 = unlimited
	live  int // elements currently held
	peak  int // high-water mark of live
}

func newWorkspace[T matrix.Element](limit int) *workspace[T] {
	return &workspace[T]{limit: limit}
}

// reserve books rows*cols elements against the budget without allocating.
// It backs acquire, and lets the driver account for matrices produced by
// matrix.PadTo / matrix.Crop.
// Errors:
//   - matrix.ErrAllocation when rows*cols overflows or the budget would be exceeded.
//
// On error the returned release is a no-op, so callers may defer it unconditionally.
func (w *workspace[T]) reserve(rows, cols int) (func(), error) {
	size, ok := matrix.ElementCount(rows, cols)
	if !ok {
		return func() {}, fmt.Errorf("workspace.reserve(%d,%d): %w", rows, cols, matrix.ErrAllocation)
	}
	if w.limit > 0 && size > w.limit-w.live {
		return func() {}, fmt.Errorf("workspace.reserve(%d,%d): %d live + %d > limit %d: %w",
			rows, cols, w.live, size, w.limit, matrix.ErrAllocation)
	}

	w.live += size
	if w.live > w.peak {
		w.peak = w.live
	}
	released := false

	return func() {
		if released {
			return
		}
		released = true
		w.live -= size
	}, nil
}

// acquire returns a zeroed rows×cols matrix and its release func.
// Same errors as reserve; on error the release is a no-op.
func (w *workspace[T]) acquire(rows, cols int) (*matrix.Dense[T], func(), error) {
	release, err := w.reserve(rows, cols)
	if err != nil {
		return nil, release, err
	}
	m, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		release()
		return nil, func() {}, fmt.Errorf("workspace.acquire: %w", err)
	}

	return m, release, nil
}

// acquireN acquires k matrices of the same shape. On failure every matrix
// acquired so far is released before returning.
func (w *workspace[T]) acquireN(k, rows, cols int) ([]*matrix.Dense[T], func(), error) {
	out := make([]*matrix.Dense[T], 0, k)
	releases := make([]func(), 0, k)
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
	for i := 0; i < k; i++ {
		m, release, err := w.acquire(rows, cols)
		if err != nil {
			releaseAll()
			return nil, func() {}, err
		}
		out = append(out, m)
		releases = append(releases, release)
	}

	return out, releaseAll, nil
}
