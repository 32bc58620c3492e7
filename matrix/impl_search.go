// SPDX-License-Identifier: MIT

// Package matrix - search & traversal over Dense.
//
// All walks are row-major (i→j) over the flat buffer, so results and callback
// order are deterministic. Equality is value equality (see equal).
package matrix

// newIndex allocates a fresh 1×2 index result holding (row, col).
func newIndex(row, col int) *Dense[int] {
	return fromFlat(indexRows, indexCols, []int{row, col})
}

// notFoundIndex allocates the (-1, -1) sentinel index.
func notFoundIndex() *Dense[int] { return newIndex(NotFound, NotFound) }

// IsNotFound reports whether idx is the (-1, -1) sentinel produced by Find/FindAll.
// Anything that is not a 1×2 index result also reports true.
func IsNotFound(idx *Dense[int]) bool {
	if idx.Rows() != indexRows || idx.Cols() != indexCols {
		return true
	}

	return idx.data[indexRow] == NotFound && idx.data[indexCol] == NotFound
}

// Contains reports whether any element equals item.
// Complexity: O(r*c) worst case; stops at the first match.
func (m *Dense[T]) Contains(item T) bool {
	if m.IsEmpty() {
		return false
	}
	for _, v := range m.data {
		if equal(v, item) {
			return true
		}
	}

	return false
}

// Find returns a 1×2 index result (row, col) of the first row-major
// occurrence of item, or the (-1, -1) sentinel when item is absent.
// Every call allocates a new index matrix.
// Complexity: O(r*c) worst case.
func (m *Dense[T]) Find(item T) *Dense[int] {
	if m.IsEmpty() {
		return notFoundIndex()
	}
	for off, v := range m.data {
		if equal(v, item) {
			return newIndex(off/m.c, off%m.c)
		}
	}

	return notFoundIndex()
}

// FindAll returns index results for every occurrence of item in row-major order.
//
// Behavior highlights:
//   - When item is absent the result is NOT empty: it holds exactly one
//     (-1, -1) sentinel. Check with IsNotFound(res[0]).
//
// Complexity: O(r*c).
func (m *Dense[T]) FindAll(item T) []*Dense[int] {
	var out []*Dense[int]
	if !m.IsEmpty() {
		for off, v := range m.data {
			if equal(v, item) {
				out = append(out, newIndex(off/m.c, off%m.c))
			}
		}
	}
	if len(out) == 0 {
		return []*Dense[int]{notFoundIndex()}
	}

	return out
}

// ToSlice returns a snapshot of all elements in row-major order.
// The slice is a copy; mutating it does not affect m.
// Complexity: O(r*c).
func (m *Dense[T]) ToSlice() []T {
	out := make([]T, 0, m.Rows()*m.Cols())
	if m.IsEmpty() {
		return out
	}

	return append(out, m.data...)
}

// ForEach calls fn for every element in row-major order.
// A panic inside fn stops the walk at that element.
// Complexity: O(r*c).
func (m *Dense[T]) ForEach(fn func(v T)) {
	if m.IsEmpty() {
		return
	}
	for _, v := range m.data {
		fn(v)
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	if m.IsEmpty() {
		return
	}
	var i, j, base int // predeclare loop counters and base offset
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
//
// Notes:
//   - For a non-mutating variant, Apply on a Clone.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	if m.IsEmpty() {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
