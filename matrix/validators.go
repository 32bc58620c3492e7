// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Return plain sentinel errors wrapped with the validator tag so call sites
//    can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only validateGrid walks its input.
//
// Note:
//  - Mul* kernels translate a failed check into the degenerate result
//    (left operand unchanged); the error value never leaves the package there.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Returns wrapped ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks the multiplication precondition used by the
// Mul* table: a.Rows()==b.Cols() AND a.Cols()==b.Rows().
//
// Notes:
//   - This is stricter than the textbook a.Cols()==b.Rows(): both operands must
//     be mutually transposable in shape, which makes the result a.Rows()×a.Rows().
//
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaped) error {
	if a.Rows() != b.Cols() {
		return validatorErrorf("ValidateMulCompatible: a.Rows != b.Cols", ErrDimensionMismatch)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible: a.Cols != b.Rows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures a row slice has exactly n elements.
// Complexity: O(1).
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateGrid checks that src is rectangular and reports its shape.
// A grid with zero rows or zero-width rows reports (0, 0).
// Returns ErrRaggedGrid naming the first offending row.
// Complexity: O(rows).
func validateGrid[T any](src [][]T) (rows, cols int, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}
	cols = len(src[0])
	for i := 1; i < len(src); i++ {
		if len(src[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("validateGrid: row %d has %d columns, want %d", i, len(src[i]), cols), ErrRaggedGrid)
		}
	}
	if cols == 0 {
		return 0, 0, nil
	}

	return len(src), cols, nil
}
