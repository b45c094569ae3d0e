// SPDX-License-Identifier: MIT

package matmul

// Stats describes one multiplication run. Pass a *Stats with WithStats to
// have a run fill it in.
type Stats struct {
	// Algorithm that produced the result.
	Algorithm Algorithm
	// Size is the true extent n of the operands.
	Size int
	// PaddedSize is the power-of-two extent the engine actually ran on
	// (equal to Size for the naive algorithm).
	PaddedSize int
	// Calls counts kernel frames entered, leaves included.
	Calls int
	// LeafProducts counts base-case block products. For n = 2^k and leaf
	// size 1 this is 8^k for Recursive and 7^k for Strassen.
	LeafProducts int
	// PeakElements is the largest number of elements held at once by the
	// run's workspace (padded operands, temporaries and result).
	PeakElements int
	// LiveElements is the workspace usage once the run has returned.
	// Every acquisition is released on every path, so this is always 0.
	LiveElements int
}
