// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/SetRow return errors instead of panicking.
//   - Keep every constructor and transform allocation-independent (no aliasing between matrices).
//
// Shape policy:
//   - rows==0 or cols==0 collapses to the canonical empty 0×0 matrix.
//   - Negative sizes are treated as an empty request, never as an error.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); SetRow: O(c); Clone/Equal/Clear: O(r*c).
package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>". Row-level accessors pass col=-1.
func denseErrorf(method string, row, col int, err error) error {
	if col < 0 {
		return fmt.Errorf("Dense.%s(%d): %w", method, row, err)
	}

	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions; both are zero for the empty matrix.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value and a nil *Dense both behave as the empty matrix for
// read-only queries.
type Dense[T comparable] struct {
	r, c int // row and column counts (both 0 or both > 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface conformance.
var (
	_ Shaped       = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// NewDense creates an r×c matrix with every element set to T's zero value.
//
// Behavior highlights:
//   - rows<=0 or cols<=0 yields the empty 0×0 matrix; (0,k) and (k,0) are identical.
//   - Never fails.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T comparable](rows, cols int) *Dense[T] {
	if rows <= 0 || cols <= 0 {
		return &Dense[T]{}
	}
	// make() zero-fills the buffer deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// FromGrid creates a matrix by deep-copying a rectangular grid src[row][col].
//
// Implementation:
//   - Stage 1: validate the grid is rectangular (validateGrid).
//   - Stage 2: allocate and copy row by row.
//
// Behavior highlights:
//   - The result shape equals the source shape; later writes to src are not observed.
//   - Empty source (no rows or zero-width rows) yields the empty matrix.
//
// Errors:
//   - ErrRaggedGrid when rows differ in length.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGrid[T comparable](src [][]T) (*Dense[T], error) {
	rows, cols, err := validateGrid(src)
	if err != nil {
		return nil, fmt.Errorf("FromGrid: %w", err)
	}
	m := NewDense[T](rows, cols)
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], src[i])
	}

	return m, nil
}

// fromFlat wraps an owned row-major buffer without copying.
// Callers guarantee len(data) == rows*cols and that nobody else holds data.
func fromFlat[T comparable](rows, cols int, data []T) *Dense[T] {
	if rows <= 0 || cols <= 0 {
		return &Dense[T]{}
	}

	return &Dense[T]{r: rows, c: cols, data: data}
}

// Rows returns the row count. Nil-safe.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. Nil-safe.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsEmpty reports whether the matrix has no elements (rows==0 or cols==0).
// Complexity: O(1).
func (m *Dense[T]) IsEmpty() bool { return m.Rows() == 0 || m.Cols() == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a mutable view of row i: writes through the slice change the
// matrix. The slice capacity is capped at Cols(), so append never spills into
// the next row.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.Rows() {
		return nil, denseErrorf(ctxRow, i, -1, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// SetRow overwrites row i with a copy of values.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//   - ErrDimensionMismatch when len(values) != Cols().
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense[T]) SetRow(i int, values []T) error {
	if i < 0 || i >= m.Rows() {
		return denseErrorf(ctxSetRow, i, -1, ErrOutOfRange)
	}
	if err := ValidateVecLen(values, m.c); err != nil {
		return denseErrorf(ctxSetRow, i, -1, err)
	}
	copy(m.data[i*m.c:(i+1)*m.c], values)

	return nil
}

// Clear resets every element to T's zero value; the shape is unchanged.
// Complexity: O(r*c).
func (m *Dense[T]) Clear() {
	if m == nil {
		return
	}
	clear(m.data)
}

// Clone returns a deep copy (new buffer, same shape).
// A nil receiver clones to the empty matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m.IsEmpty() {
		return &Dense[T]{}
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have the same shape and element-wise
// equal values (NaN equals NaN, see equal).
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if ValidateSameShape(m, other) != nil {
		return false
	}
	if m.IsEmpty() {
		return true
	}
	for k := range m.data {
		if !equal(m.data[k], other.data[k]) {
			return false
		}
	}

	return true
}

// equal is the value equality used by search and Equal.
// It extends == so that NaN matches NaN: x != x holds only for NaN values.
func equal[T comparable](a, b T) bool {
	return a == b || (a != a && b != b)
}
