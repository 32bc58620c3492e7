// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// grid3x4 is a 3×4 fixture with distinct values 1..12 in row-major order.
var grid3x4 = [][]int{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
}

// grid3x3 is a 3×3 fixture with distinct values 1..9 in row-major order.
var grid3x3 = [][]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
}

// mustGrid BUILDS a Dense from src or fails the test (fatal on error).
func mustGrid[T comparable](tb testing.TB, src [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromGrid(src)
	require.NoError(tb, err)

	return m
}

// requireIndex asserts idx is a 1×2 index result holding (row, col).
func requireIndex(t *testing.T, idx *matrix.Dense[int], row, col int) {
	t.Helper()
	require.Equal(t, 1, idx.Rows())
	require.Equal(t, 2, idx.Cols())
	r, err := idx.At(0, 0)
	require.NoError(t, err)
	c, err := idx.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, [2]int{row, col}, [2]int{r, c})
}

// toGrid READS m back into a [][]T for readable equality assertions.
func toGrid[T comparable](t *testing.T, m *matrix.Dense[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = append([]T(nil), row...)
	}

	return out
}

// fillRand fills m with reproducible pseudorandoms in [-1, 1).
func fillRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })
}
