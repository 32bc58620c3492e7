// SPDX-License-Identifier: MIT

// Package gonumx bridges matrix.Dense[float64] and gonum's *mat.Dense.
//
// Both directions deep-copy: neither side ever observes the other's writes.
// gonum forbids zero-sized dense matrices, so exporting the empty matrix is
// reported as matrix.ErrBadShape instead of panicking inside gonum.
package gonumx

import (
	"fmt"

	"github.com/katalvlaran/gmatrix/matrix"
	"gonum.org/v1/gonum/mat"
)

// ToMat copies m into a new gonum dense matrix.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - matrix.ErrBadShape for an empty m.
//
// Complexity: O(r*c).
func ToMat(m *matrix.Dense[float64]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("gonumx.ToMat: %w", matrix.ErrNilMatrix)
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("gonumx.ToMat: %w", matrix.ErrBadShape)
	}
	// ToSlice is already a row-major copy; mat.NewDense adopts it as backing data.
	return mat.NewDense(m.Rows(), m.Cols(), m.ToSlice()), nil
}

// FromMat copies any gonum matrix into a new matrix.Dense[float64].
// A nil a yields the empty matrix.
// Complexity: O(r*c).
func FromMat(a mat.Matrix) *matrix.Dense[float64] {
	if a == nil {
		return matrix.NewDense[float64](0, 0)
	}
	r, c := a.Dims()
	out := matrix.NewDense[float64](r, c)
	out.Apply(func(i, j int, _ float64) float64 { return a.At(i, j) })

	return out
}

// MulMat computes a × b with gonum's BLAS-backed product using the textbook
// a.Cols()==b.Rows() rule, for callers that need conventional shapes.
//
// Errors:
//   - errors from ToMat for nil or empty operands.
//   - matrix.ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity: O(r*k*c).
func MulMat(a, b *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("gonumx.MulMat: %w", matrix.ErrDimensionMismatch)
	}
	ma, err := ToMat(a)
	if err != nil {
		return nil, err
	}
	mb, err := ToMat(b)
	if err != nil {
		return nil, err
	}
	var prod mat.Dense
	prod.Mul(ma, mb)

	return FromMat(&prod), nil
}
