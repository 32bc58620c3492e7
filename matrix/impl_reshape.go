// SPDX-License-Identifier: MIT

// Package matrix - sub-matrix extraction and transpose.
//
// Purpose:
//   - Materialize independent copies of rectangular regions.
//   - Mirror square matrices across the main diagonal.
//
// Policy:
//   - Requests are clamped to the source bounds; anything that cannot be
//     clamped into a non-empty region yields the empty 0×0 matrix.
//   - Nothing here returns an error.
package matrix

// SubMatrix returns a copy of the top-left rows×cols region.
//
// Behavior highlights:
//   - rows<=0 or cols<=0 ⇒ empty 0×0 matrix.
//   - rows/cols larger than the source are clamped to Rows()/Cols().
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense[T]) SubMatrix(rows, cols int) *Dense[T] {
	if rows <= 0 || cols <= 0 {
		return &Dense[T]{}
	}
	rows = min(rows, m.Rows())
	cols = min(cols, m.Cols())

	return m.copyRegion(0, 0, rows, cols)
}

// SubRegion returns a copy of the inclusive region
// [startRow..endRow] × [startCol..endCol].
//
// Implementation:
//   - Stage 1: clamp negative starts to 0 and ends past the edge to dim-1.
//   - Stage 2: reject inverted, negative-end or out-of-source windows.
//   - Stage 3: copy row slices into a fresh buffer.
//
// Behavior highlights:
//   - Any request that cannot be satisfied yields the empty 0×0 matrix.
//
// Complexity:
//   - Time O(h*w), Space O(h*w) for the h×w result.
func (m *Dense[T]) SubRegion(startRow, startCol, endRow, endCol int) *Dense[T] {
	rows, cols := m.Shape()
	// Stage 1: clamp.
	startRow = max(startRow, 0)
	startCol = max(startCol, 0)
	endRow = min(endRow, rows-1)
	endCol = min(endCol, cols-1)

	// Stage 2: degenerate windows.
	if endRow < startRow || endCol < startCol {
		return &Dense[T]{}
	}
	if endRow < 0 || endCol < 0 {
		return &Dense[T]{}
	}
	if startRow >= rows || startCol >= cols {
		return &Dense[T]{}
	}

	// Stage 3: copy.
	return m.copyRegion(startRow, startCol, endRow-startRow+1, endCol-startCol+1)
}

// copyRegion copies the h×w window whose top-left corner is (r0, c0).
// Callers guarantee the window lies inside m; h or w of 0 gives the empty matrix.
func (m *Dense[T]) copyRegion(r0, c0, h, w int) *Dense[T] {
	if h <= 0 || w <= 0 {
		return &Dense[T]{}
	}
	buf := make([]T, h*w)
	var i, src int
	for i = 0; i < h; i++ {
		src = (r0+i)*m.c + c0
		copy(buf[i*w:(i+1)*w], m.data[src:src+w])
	}

	return fromFlat(h, w, buf)
}

// Transpose returns a new matrix mirrored across the main diagonal.
//
// Behavior highlights:
//   - Only square matrices are transposed. For a non-square matrix the
//     receiver itself is returned unchanged (same pointer, no copy).
//   - The empty matrix is square (0×0) and transposes to a fresh empty matrix.
//
// Complexity:
//   - Time O(n²), Space O(n²) for square input; O(1) otherwise.
func (m *Dense[T]) Transpose() *Dense[T] {
	if ValidateSquare(m) != nil {
		return m
	}
	if m.IsEmpty() {
		return &Dense[T]{}
	}
	n := m.r
	buf := make([]T, n*n)
	// data[i*n + j] → buf[j*n + i]
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			buf[j*n+i] = m.data[base+j]
		}
	}

	return fromFlat(n, n, buf)
}
