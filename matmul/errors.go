// SPDX-License-Identifier: MIT

package matmul

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned for an Algorithm value or name outside
// Algorithms(). Operand errors use the matrix package sentinels
// (matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAllocation).
var ErrUnknownAlgorithm = errors.New("matmul: unknown algorithm")

// matmulErrorf wraps err with the algorithm that failed, preserving it for errors.Is.
// Use only when err != nil.
func matmulErrorf(op string, err error) error {
	return fmt.Errorf("matmul.%s: %w", op, err)
}
