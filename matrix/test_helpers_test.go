// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for storage and view tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense ALLOCATES an r×c *Dense or fails the test.
func mustDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a Dense from literal rows or fails the test.
func mustRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// fillSeq writes 1, 2, 3, ... in row-major order.
func fillSeq(tb testing.TB, m *matrix.Dense[int]) {
	tb.Helper()
	v := 1
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, v))
			v++
		}
	}
}

// fillRand writes deterministic values in [-9, 9].
func fillRand(tb testing.TB, m *matrix.Dense[int], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, rng.Intn(19)-9))
		}
	}
}

// viewRows reads a view's full logical extent, padding included.
func viewRows[T matrix.Element](v matrix.View[T]) [][]T {
	out := make([][]T, v.Rows())
	for i := range out {
		out[i] = make([]T, v.Cols())
		for j := range out[i] {
			out[i][j] = v.Get(i, j)
		}
	}

	return out
}
