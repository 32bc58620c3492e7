// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks; each facade delegates to the
//     canonical implementation.
//   - Expose the closed multiplication table through one dynamically typed
//     entry point (Multiply) for callers that hold matrices as `any`.
//
// Determinism & Policy:
//   - Facades never change the loop orders or degenerate-value policy of
//     the underlying kernels.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// Zeros returns a new zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func Zeros[T comparable](rows, cols int) *Dense[T] { return NewDense[T](rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike[T comparable](m *Dense[T]) *Dense[T] { return NewDense[T](m.Rows(), m.Cols()) }

// CloneMatrix returns a deep copy of m.
// Thin wrapper over Dense.Clone for API discoverability.
// Complexity: O(r*c).
func CloneMatrix[T comparable](m *Dense[T]) *Dense[T] { return m.Clone() }

// ---------- Multiplication facade ----------

// Multiply dispatches (a, b) to the matching entry of the multiplication
// table by dynamic type and returns the product as `any`.
//
// Supported pairs (left × right → result):
//
//	*Dense[int]     × *Dense[int]     → *Dense[int]
//	*Dense[float32] × *Dense[int]     → *Dense[float32]
//	*Dense[float32] × *Dense[float32] → *Dense[float32]
//	*Dense[float64] × *Dense[int]     → *Dense[float64]
//	*Dense[float64] × *Dense[float32] → *Dense[float64]
//	*Dense[float64] × *Dense[float64] → *Dense[float64]
//
// Behavior highlights:
//   - Shape incompatibility follows the Mul* policy (left operand returned, nil error).
//   - Any other pair, including narrowing ones like int × float64, returns
//     ErrUnsupportedTypes.
//
// Complexity: as the selected Mul* kernel.
func Multiply(a, b any) (any, error) {
	switch x := a.(type) {
	case *Dense[int]:
		if y, ok := b.(*Dense[int]); ok {
			return MulInt(x, y), nil
		}
	case *Dense[float32]:
		switch y := b.(type) {
		case *Dense[int]:
			return MulFloat32Int(x, y), nil
		case *Dense[float32]:
			return MulFloat32(x, y), nil
		}
	case *Dense[float64]:
		switch y := b.(type) {
		case *Dense[int]:
			return MulFloat64Int(x, y), nil
		case *Dense[float32]:
			return MulFloat64Float32(x, y), nil
		case *Dense[float64]:
			return MulFloat64(x, y), nil
		}
	}

	return nil, fmt.Errorf("%s(%T, %T): %w", opMultiply, a, b, ErrUnsupportedTypes)
}
