// SPDX-License-Identifier: MIT

// Package matrix: shared types and type constraints.
// This file intentionally contains ONLY type-level declarations; errors and
// options live in errors.go and options.go.
package matrix

// NotFound is the coordinate stored in both cells of the index result returned
// by Find/FindAll when the item is absent.
const NotFound = -1

// Index result layout: a 1×2 Dense[int] holding (row, col).
const (
	indexRows = 1
	indexCols = 2
	indexRow  = 0 // column of the row coordinate
	indexCol  = 1 // column of the column coordinate
)

// Shaped is the read-only shape surface shared by every Dense instantiation.
// Validators accept Shaped so they can compare operands of different element
// types (e.g. Dense[float64] against Dense[int] in MulFloat64Int).
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}

// Number is the closed set of element types the multiplication table accepts.
// Widening always goes toward the left operand's type (see impl_linear_algebra.go).
type Number interface {
	~int | ~float32 | ~float64
}
