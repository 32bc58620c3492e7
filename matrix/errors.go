// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Accessors wrap them
// with call-site context via %w; tests and callers match via errors.Is.
//
// Note that most of the package follows a degenerate-value policy (empty,
// unchanged or zero results) and never returns these errors; see doc.go.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Row/SetRow MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths, e.g. SetRow with a
	// slice whose length differs from Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedGrid is returned by FromGrid when the source rows differ in length.
	ErrRaggedGrid = errors.New("matrix: ragged grid")

	// ErrBadShape is returned by adapters that cannot represent the requested
	// shape (e.g. exporting an empty matrix to a library that forbids 0×0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Dense was used where storage is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupportedTypes is returned by Multiply for operand type pairs that are
	// not part of the closed multiplication table.
	ErrUnsupportedTypes = errors.New("matrix: unsupported operand types")
)
