// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquarePair covers nil inputs, non-square and mismatched sizes.
func TestValidateSquarePair(t *testing.T) {
	t.Parallel()

	sq := func(r, c int) *matrix.Dense[int] {
		m, err := matrix.NewDense[int](r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense[int]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, sq(2, 2), matrix.ErrNilMatrix},
		{"second nil", sq(2, 2), nil, matrix.ErrNilMatrix},
		{"first not square", sq(2, 3), sq(2, 2), matrix.ErrDimensionMismatch},
		{"second not square", sq(2, 2), sq(3, 2), matrix.ErrDimensionMismatch},
		{"size mismatch", sq(2, 2), sq(3, 3), matrix.ErrDimensionMismatch},
		{"equal 3x3", sq(3, 3), sq(3, 3), nil},
		{"empty", sq(0, 0), sq(0, 0), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquarePair(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateBinarySameShape covers the rectangular shape check.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	a := mustDense[int](t, 2, 3)
	require.NoError(t, matrix.ValidateBinarySameShape(a, mustDense[int](t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, mustDense[int](t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, mustDense[int](t, 2, 4)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilMatrix)
}

// TestValidateSquare checks square and non-square inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(mustDense[int](t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(mustDense[int](t, 4, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
}
