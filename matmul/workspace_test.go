// SPDX-License-Identifier: MIT

package matmul

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceAccounting(t *testing.T) {
	ws := newWorkspace[int](0)

	m, release, err := ws.acquire(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 12, ws.live)

	releaseR, err := ws.reserve(2, 2)
	require.NoError(t, err)
	require.Equal(t, 16, ws.live)
	require.Equal(t, 16, ws.peak)

	releaseR()
	releaseR() // idempotent
	require.Equal(t, 12, ws.live)
	release()
	require.Zero(t, ws.live)
	require.Equal(t, 16, ws.peak)
}

func TestWorkspaceLimit(t *testing.T) {
	ws := newWorkspace[int](10)

	_, release, err := ws.acquire(3, 3)
	require.NoError(t, err)
	_, noop, err := ws.acquire(1, 2)
	require.ErrorIs(t, err, matrix.ErrAllocation)
	noop() // safe to call on failure
	require.Equal(t, 9, ws.live)

	release()
	_, release, err = ws.acquire(2, 5)
	require.NoError(t, err)
	release()
	require.Zero(t, ws.live)
}

func TestWorkspaceOverflow(t *testing.T) {
	ws := newWorkspace[int8](0)
	_, err := ws.reserve(1<<62, 4)
	require.ErrorIs(t, err, matrix.ErrAllocation)
	require.Zero(t, ws.live)
}

// TestWorkspaceAcquireNUnwinds releases the partial batch when one acquisition fails.
func TestWorkspaceAcquireNUnwinds(t *testing.T) {
	ws := newWorkspace[int](20)

	_, release, err := ws.acquireN(9, 2, 2) // needs 36
	require.ErrorIs(t, err, matrix.ErrAllocation)
	release()
	require.Zero(t, ws.live)
	require.Equal(t, 20, ws.peak) // five acquired before the failure

	ms, release, err := ws.acquireN(5, 2, 2)
	require.NoError(t, err)
	require.Len(t, ms, 5)
	require.Equal(t, 20, ws.live)
	release()
	require.Zero(t, ws.live)
}

// TestKernelsOnPaddedWindows runs the recursive kernels on 4×4 windows over
// 3×3 owners: the view layer supplies the zero padding without a PadTo copy,
// and writes to the overhang of c are dropped.
func TestKernelsOnPaddedWindows(t *testing.T) {
	a, err := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]int{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})
	require.NoError(t, err)
	want := [][]int{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}}

	window := func(m *matrix.Dense[int]) matrix.View[int] {
		v, err := m.Window(0, 0, 4, 4)
		require.NoError(t, err)
		return v
	}

	for name, pick := range map[string]func(e *engine[int]) kernel[int]{
		"recursive": func(e *engine[int]) kernel[int] { return e.recursive },
		"strassen":  func(e *engine[int]) kernel[int] { return e.strassen },
	} {
		t.Run(name, func(t *testing.T) {
			c, err := matrix.NewDense[int](3, 3)
			require.NoError(t, err)
			e := &engine[int]{ws: newWorkspace[int](0), leaf: 1}
			require.NoError(t, pick(e)(window(a), window(b), window(c)))
			require.Equal(t, want, c.ToRows())
			require.Zero(t, e.ws.live)
		})
	}
}
