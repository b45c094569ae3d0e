// SPDX-License-Identifier: MIT

package matmul_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matmul"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestMultiplyTwoByTwo checks the textbook 2×2 product with every algorithm.
func TestMultiplyTwoByTwo(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})

	for _, alg := range matmul.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			c, err := matmul.Multiply(a, b, alg)
			require.NoError(t, err)
			require.Equal(t, [][]int{{19, 22}, {43, 50}}, c.ToRows())
			require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.ToRows()) // operands untouched
			require.Equal(t, [][]int{{5, 6}, {7, 8}}, b.ToRows())
		})
	}
}

// TestMultiplyDiagonal multiplies 2·I by 3·I on a 4×4.
func TestMultiplyDiagonal(t *testing.T) {
	a, err := matrix.Diagonal(4, 2)
	require.NoError(t, err)
	b, err := matrix.Diagonal(4, 3)
	require.NoError(t, err)
	want, err := matrix.Diagonal(4, 6)
	require.NoError(t, err)

	for _, alg := range matmul.Algorithms() {
		c, err := matmul.Multiply(a, b, alg)
		require.NoError(t, err)
		require.True(t, matrix.Equal(want, c), "%s:\n%s", alg, c)
	}
}

// TestMultiplyScalar is the 1×1 base case.
func TestMultiplyScalar(t *testing.T) {
	a := mustRows(t, [][]int{{-7}})
	b := mustRows(t, [][]int{{6}})
	for _, alg := range matmul.Algorithms() {
		c, err := matmul.Multiply(a, b, alg)
		require.NoError(t, err)
		require.Equal(t, [][]int{{-42}}, c.ToRows())
	}
}

// TestMultiplyEmpty returns an empty result for 0×0 operands.
func TestMultiplyEmpty(t *testing.T) {
	a, err := matrix.NewDense[int](0, 0)
	require.NoError(t, err)
	for _, alg := range matmul.Algorithms() {
		c, err := matmul.Multiply(a, a, alg)
		require.NoError(t, err)
		require.Equal(t, 0, c.Rows())
		require.Equal(t, 0, c.Cols())
	}
}

// TestMultiplyAgreement cross-checks the three algorithms against each other
// and against gonum for sizes that are and are not powers of two.
func TestMultiplyAgreement(t *testing.T) {
	for n := 1; n <= 17; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randSquare(t, n, int64(n))
			b := randSquare(t, n, int64(100+n))
			want := oracle(t, a, b)

			for _, alg := range matmul.Algorithms() {
				c, err := matmul.Multiply(a, b, alg)
				require.NoError(t, err)
				require.Equal(t, n, c.Rows())
				require.Equal(t, n, c.Cols())
				require.True(t, matrix.Equal(want, c), "%s disagrees with oracle", alg)
			}
		})
	}
}

// TestMultiplyLeafSize checks that a larger cutoff leaves results unchanged.
func TestMultiplyLeafSize(t *testing.T) {
	a := randSquare(t, 13, 3)
	b := randSquare(t, 13, 4)
	want := oracle(t, a, b)
	for _, leaf := range []int{1, 2, 3, 4, 8, 16, 64} {
		for _, alg := range []matmul.Algorithm{matmul.Recursive, matmul.Strassen} {
			c, err := matmul.Multiply(a, b, alg, matmul.WithLeafSize(leaf))
			require.NoError(t, err)
			require.True(t, matrix.Equal(want, c), "%s leaf=%d", alg, leaf)
		}
	}
}

// TestMultiplyInt32 runs the generic path on a narrower element type.
func TestMultiplyInt32(t *testing.T) {
	a := mustRows(t, [][]int32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b := mustRows(t, [][]int32{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})
	want := [][]int32{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}}

	c, err := matmul.MultiplyStrassen(a, b)
	require.NoError(t, err)
	require.Equal(t, want, c.ToRows())
	c, err = matmul.MultiplyRecursive(a, b)
	require.NoError(t, err)
	require.Equal(t, want, c.ToRows())
	c, err = matmul.MultiplyNaive(a, b)
	require.NoError(t, err)
	require.Equal(t, want, c.ToRows())
}

// TestMultiplyErrors covers nil operands, shape errors and bad algorithms.
func TestMultiplyErrors(t *testing.T) {
	sq2, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)
	sq3, err := matrix.NewDense[int](3, 3)
	require.NoError(t, err)
	rect, err := matrix.NewDense[int](2, 3)
	require.NoError(t, err)

	for _, alg := range matmul.Algorithms() {
		_, err = matmul.Multiply(nil, sq2, alg)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		_, err = matmul.Multiply(sq2, nil, alg)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		_, err = matmul.Multiply(sq2, sq3, alg)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		_, err = matmul.Multiply(rect, rect, alg)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}

	c, err := matmul.Multiply(sq2, sq2, matmul.Algorithm(42))
	require.ErrorIs(t, err, matmul.ErrUnknownAlgorithm)
	require.Nil(t, c)
}

// TestMultiplyPaddingInvisible checks that padding never leaks into results:
// an odd-size product equals the top-left block of the explicitly padded one.
func TestMultiplyPaddingInvisible(t *testing.T) {
	a := randSquare(t, 5, 11)
	b := randSquare(t, 5, 12)
	ap, err := matrix.PadTo(a, 8)
	require.NoError(t, err)
	bp, err := matrix.PadTo(b, 8)
	require.NoError(t, err)

	small, err := matmul.MultiplyStrassen(a, b)
	require.NoError(t, err)
	big, err := matmul.MultiplyStrassen(ap, bp)
	require.NoError(t, err)
	cropped, err := matrix.Crop(big, 5)
	require.NoError(t, err)
	require.True(t, matrix.Equal(small, cropped))

	for i := 0; i < 8; i++ { // padding rows and cols of the big product stay zero
		for j := 5; j < 8; j++ {
			v, err := big.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
			v, err = big.At(j, i)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}
