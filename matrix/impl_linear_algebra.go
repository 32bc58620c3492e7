// SPDX-License-Identifier: MIT
// Package matrix - numeric operations layer: the closed multiplication table.
//
// Purpose:
//   - Multiply Dense matrices across the fixed set of element-type pairs
//     below, widening toward the left operand's type:
//
//     MulInt            int     × int     → int
//     MulFloat32Int     float32 × int     → float32
//     MulFloat32        float32 × float32 → float32
//     MulFloat64Int     float64 × int     → float64
//     MulFloat64Float32 float64 × float32 → float64
//     MulFloat64        float64 × float64 → float64
//
//   - Share one generic kernel (mulKernel) so the six entry points differ only
//     in their type parameters.
//
// Policy:
//   - Precondition is ValidateMulCompatible: a.Rows()==b.Cols() AND
//     a.Cols()==b.Rows(). On failure (or a nil operand) the left operand is
//     returned as-is: no error, no zero matrix, no copy.
//   - Result shape is a.Rows()×a.Rows().
//   - No overflow detection: int wraps, floats follow IEEE-754.
//
// Notes:
//   - The table is closed on purpose; Multiply (api.go) rejects other pairs
//     with ErrUnsupportedTypes.

package matrix

// Operation name constants for the dynamic facade and error wrapping.
const (
	opMultiply = "Multiply"
)

// MulInt multiplies two int matrices.
// Complexity: O(n²·k) for an n×k left operand.
func MulInt(a, b *Dense[int]) *Dense[int] {
	if !mulReady(a, b) {
		return a
	}

	return mulKernel[int](a, b)
}

// MulFloat32Int multiplies a float32 matrix by an int matrix in float32.
// Complexity: O(n²·k).
func MulFloat32Int(a *Dense[float32], b *Dense[int]) *Dense[float32] {
	if !mulReady(a, b) {
		return a
	}

	return mulKernel[float32](a, b)
}

// MulFloat32 multiplies two float32 matrices.
// Complexity: O(n²·k).
func MulFloat32(a, b *Dense[float32]) *Dense[float32] {
	if !mulReady(a, b) {
		return a
	}

	return mulKernel[float32](a, b)
}

// MulFloat64Int multiplies a float64 matrix by an int matrix in float64.
// Complexity: O(n²·k).
func MulFloat64Int(a *Dense[float64], b *Dense[int]) *Dense[float64] {
	if !mulReady(a, b) {
		return a
	}

	return mulKernel[float64](a, b)
}

// MulFloat64Float32 multiplies a float64 matrix by a float32 matrix in float64.
// Complexity: O(n²·k).
func MulFloat64Float32(a *Dense[float64], b *Dense[float32]) *Dense[float64] {
	if !mulReady(a, b) {
		return a
	}

	return mulKernel[float64](a, b)
}

// MulFloat64 multiplies two float64 matrices.
// Complexity: O(n²·k).
func MulFloat64(a, b *Dense[float64]) *Dense[float64] {
	if !mulReady(a, b) {
		return a
	}

	return mulKernel[float64](a, b)
}

// mulReady reports whether a and b are non-nil and pass ValidateMulCompatible.
func mulReady[L, R Number](a *Dense[L], b *Dense[R]) bool {
	if a == nil || b == nil {
		return false
	}

	return ValidateMulCompatible(a, b) == nil
}

// mulKernel computes res = a × b accumulating in Out.
//
// Implementation:
//   - Stage 1: allocate res as a.Rows()×a.Rows() (== a.Rows()×b.Cols() after
//     mulReady).
//   - Stage 2: i→k→j loops over the flat buffers; every operand value is
//     converted to Out before the multiply.
//
// Inputs:
//   - a: n×k, b: k×n (checked by the caller).
//
// Determinism:
//   - Fixed loop order; each res cell accumulates k in ascending order.
//
// Complexity:
//   - Time O(n²·k), Space O(n²).
func mulKernel[Out, L, R Number](a *Dense[L], b *Dense[R]) *Dense[Out] {
	n, inner := a.Rows(), a.Cols()
	res := NewDense[Out](n, n)
	if res.IsEmpty() {
		return res
	}
	bCols := b.c // == n
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 Out
	)
	for i = 0; i < n; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * n
		for k = 0; k < inner; k++ {
			av = Out(a.data[rowOffsetA+k])
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				// explicit Out(...) rounds the product before the add (no fused multiply-add)
				res.data[rowOffsetR+j] += Out(av * Out(b.data[rowOffsetB+j]))
			}
		}
	}

	return res
}
