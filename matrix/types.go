// SPDX-License-Identifier: MIT

// Package matrix: element constraint shared by storage, views and kernels.
// The engine works on integers only; sums and products wrap at the native
// width of the chosen type (no overflow detection).
package matrix

import "golang.org/x/exp/constraints"

// Element is the set of cell types a Dense may hold: any built-in integer type.
type Element interface {
	constraints.Integer
}
