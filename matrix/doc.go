// SPDX-License-Identifier: MIT

// Package matrix provides Dense[T], a generic fixed-shape 2-D container, and a
// small numeric layer on top of it.
//
// The package provides:
//
//   - Dense[T] with row-major storage, safe element/row accessors, search
//     (Contains, Find, FindAll), sub-matrix extraction (SubMatrix, SubRegion),
//     square transpose and several rendering modes.
//   - Max and Longest for ordered/printable element types.
//   - A closed multiplication table over {int, float32, float64} with implicit
//     widening (MulInt, MulFloat32Int, ..., MulFloat64) and a dynamic facade
//     Multiply that dispatches over the same table.
//
// Failure policy:
//
//	Shape-level problems never raise errors. Invalid construction sizes give the
//	empty matrix, out-of-range SubMatrix/SubRegion requests give the empty
//	matrix, non-square Transpose and incompatible Mul* return the receiver/left
//	operand unchanged, Max/Longest on an empty matrix give the zero value.
//	Only element/row indexing reports errors (ErrOutOfRange), because silently
//	reading the wrong cell is worse than failing.
//
// Every transform allocates fresh storage; no two matrices share elements.
// Dense is not safe for concurrent mutation.
package matrix
