// SPDX-License-Identifier: MIT

// Package matrix - reductions over Dense: Max and Longest.
//
// Both use the same scan rule: the first element (row-major) is the running
// value and is replaced only by a STRICTLY greater candidate, so ties keep the
// earliest element. Both return T's zero value on an empty matrix.
package matrix

import "cmp"

// Max returns the greatest element under cmp.Compare ordering.
//
// Behavior highlights:
//   - Empty (or nil) matrix ⇒ zero value of T, not an error.
//   - NaN orders below every number, so NaN is returned only when every
//     element is NaN.
//
// Complexity: O(r*c).
func Max[T cmp.Ordered](m *Dense[T]) T {
	if m.IsEmpty() {
		var zero T
		return zero
	}
	best := m.data[0]
	for _, v := range m.data[1:] {
		if cmp.Compare(best, v) < 0 {
			best = v
		}
	}

	return best
}

// Longest returns the element whose natural string form (fmt.Sprint) has the
// most runes; ties keep the earliest element.
//
// Behavior highlights:
//   - Empty (or nil) matrix ⇒ zero value of T.
//
// Complexity: O(r*c) formatting calls.
func Longest[T comparable](m *Dense[T]) T {
	if m.IsEmpty() {
		var zero T
		return zero
	}
	best := m.data[0]
	bestLen := runeLen(naturalString(best))
	var n int
	for _, v := range m.data[1:] {
		if n = runeLen(naturalString(v)); n > bestLen {
			best, bestLen = v, n
		}
	}

	return best
}
