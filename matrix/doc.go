// Package matrix provides integer matrix storage and the zero-copy view layer
// the recursive multipliers are built on.
//
// The matrix package provides:
//
//   - Dense: owned, contiguous, row-major storage with bounds-checked At/Set
//     that return ErrOutOfRange instead of panicking.
//   - View: a non-owning window over a Dense whose logical extent may run past
//     the owner's true bounds. Cells outside the owner read as zero and ignore
//     writes (virtual zero padding), so a view can always be split into four
//     equal quadrants, even when its extent is odd.
//   - AddInto/SubInto: elementwise combination of views into a destination view.
//   - Whole-matrix collaborators: Add, Sub, Scale, Equal, PadTo, Crop, Format.
//
// Cells are any Go integer type (see Element); arithmetic wraps at that width.
//
// See package matmul for the naive, recursive and Strassen multipliers.
package matrix
