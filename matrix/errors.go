// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// and matmul packages. All operations MUST return these sentinels (optionally
// wrapped with %w) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> allocation.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside the true extent.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: not square, or
	// square of different sizes where equal sizes are required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested view window is invalid
	// (negative offset or extent).
	ErrBadShape = errors.New("matrix: invalid view shape")

	// ErrAllocation indicates that storage for a result or a temporary could not
	// be obtained: the element count overflows int or exceeds a configured budget.
	ErrAllocation = errors.New("matrix: allocation failed")
)

// ErrOutOfBounds names the same condition as ErrOutOfRange.
// Kept as an alias so errors.Is(err, ErrOutOfBounds) holds for accessor failures.
var ErrOutOfBounds = ErrOutOfRange
