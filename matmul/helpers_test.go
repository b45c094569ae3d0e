// SPDX-License-Identifier: MIT
// Package matmul_test contains shared fixtures for the multiplier tests.
package matmul_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// randSquare returns an n×n matrix of deterministic values in [-9, 9].
func randSquare(tb testing.TB, n int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	m, err := matrix.NewDense[int](n, n)
	require.NoError(tb, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, rng.Intn(19)-9))
		}
	}

	return m
}

// toGonum copies an integer matrix into a gonum float64 Dense. Small integer
// values round-trip exactly.
func toGonum(m *matrix.Dense[int]) *mat.Dense {
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range m.ToRows() {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(r, c, data)
}

// oracle computes a·b with gonum and converts it back to integers.
func oracle(tb testing.TB, a, b *matrix.Dense[int]) *matrix.Dense[int] {
	tb.Helper()
	var prod mat.Dense
	prod.Mul(toGonum(a), toGonum(b))

	r, c := prod.Dims()
	out, err := matrix.NewDense[int](r, c)
	require.NoError(tb, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, out.Set(i, j, int(prod.At(i, j))))
		}
	}

	return out
}
