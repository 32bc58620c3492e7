// SPDX-License-Identifier: MIT

// Package matrix - text rendering of Dense.
//
// Purpose:
//   - One renderer (render) behind String, Format, StringFunc, FormattedString
//     and Render, so separators, line breaks and alignment behave identically.
//
// Layout:
//   - Each cell is written followed by the separator (also after the last cell
//     of a row); each row ends with the line break.
//   - Aligned mode right-aligns every cell to runeLen(fmt.Sprint(Longest(m)))
//     + padding. This costs an extra pass to locate Longest.
package matrix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String renders every element in its natural form followed by a space, one
// row per line: [[1 2] [3 4]] renders as "1 2 \n3 4 \n".
// The empty matrix renders as "".
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	return m.Render()
}

// Format renders every element with fmt.Sprintf(format, v), no separator,
// one row per line. Example: Format("%4d").
// Complexity: O(r*c).
func (m *Dense[T]) Format(format string) string {
	return m.Render(WithElementFormat(format), WithSeparator(""))
}

// StringFunc renders every element as fn(v), no separator, one row per line.
// Complexity: O(r*c) plus the cost of fn.
func (m *Dense[T]) StringFunc(fn func(v T) string) string {
	o := gatherOptions(WithSeparator(""))

	return render(m, fn, 0, o)
}

// FormattedString renders the matrix with a uniform column width: every cell
// is right-aligned to the natural string length of Longest(m) plus one.
// Complexity: O(r*c), two passes.
func (m *Dense[T]) FormattedString() string {
	return m.Render(WithAligned(), WithSeparator(""))
}

// Render renders the matrix under the given options (see options.go).
// Without options it is identical to String.
//
// Complexity:
//   - Time O(r*c); one extra pass in aligned mode.
func (m *Dense[T]) Render(opts ...Option) string {
	o := gatherOptions(opts...)

	cell := naturalString[T]
	if o.elementFormat != "" {
		format := o.elementFormat
		cell = func(v T) string { return fmt.Sprintf(format, v) }
	}

	width := 0
	if o.aligned {
		width = runeLen(naturalString(Longest(m))) + o.padding
	}

	return render(m, cell, width, o)
}

// render is the single rendering loop. width>0 right-aligns every cell.
func render[T comparable](m *Dense[T], cell func(T) string, width int, o Options) string {
	if m.IsEmpty() {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	var s string
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			s = cell(m.data[base+j])
			if pad := width - runeLen(s); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(s)
			b.WriteString(o.separator)
		}
		b.WriteString(o.lineBreak)
	}

	return b.String()
}

// naturalString is the element's default textual form.
func naturalString[T any](v T) string { return fmt.Sprint(v) }

// runeLen measures display length in runes, matching fmt's width padding.
func runeLen(s string) int { return utf8.RuneCountInString(s) }
