// Package matrix_test contains tests for SubMatrix, SubRegion and Transpose.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestSubMatrix(t *testing.T) {
	m := mustGrid(t, grid3x4)
	for _, tc := range []struct {
		name       string
		rows, cols int
		want       [][]int
	}{
		{"top-left 2x2", 2, 2, [][]int{{1, 2}, {5, 6}}},
		{"rows clamped", 10, 2, [][]int{{1, 2}, {5, 6}, {9, 10}}},
		{"both clamped", 10, 10, grid3x4},
		{"zero rows", 0, 2, [][]int{}},
		{"negative cols", 2, -1, [][]int{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sub := m.SubMatrix(tc.rows, tc.cols)
			require.Equal(t, tc.want, toGrid(t, sub))
			if len(tc.want) == 0 {
				require.True(t, sub.IsEmpty())
				require.Equal(t, 0, sub.Cols())
			}
		})
	}
}

func TestSubMatrix_Independent(t *testing.T) {
	m := mustGrid(t, grid3x4)
	sub := m.SubMatrix(2, 2)
	require.NoError(t, sub.Set(0, 0, 100))
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
}

func TestSubRegion(t *testing.T) {
	m := mustGrid(t, grid3x3)
	for _, tc := range []struct {
		name           string
		sr, sc, er, ec int
		want           [][]int
	}{
		{"exact", 0, 0, 1, 1, [][]int{{1, 2}, {4, 5}}},
		{"end clamped", 1, 1, 5, 5, [][]int{{5, 6}, {8, 9}}},
		{"start clamped", -3, -3, 0, 1, [][]int{{1, 2}}},
		{"single cell", 2, 0, 2, 0, [][]int{{7}}},
		{"whole", -1, -1, 99, 99, grid3x3},
		{"inverted rows", 2, 0, 1, 2, [][]int{}},
		{"inverted cols", 0, 2, 2, 1, [][]int{}},
		{"negative end", -5, 0, -1, 2, [][]int{}},
		{"start past rows", 3, 0, 5, 2, [][]int{}},
		{"start past cols", 0, 3, 2, 5, [][]int{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sub := m.SubRegion(tc.sr, tc.sc, tc.er, tc.ec)
			require.Equal(t, tc.want, toGrid(t, sub))
			if len(tc.want) == 0 {
				require.True(t, sub.IsEmpty())
			}
		})
	}
}

func TestSubRegion_OnEmpty(t *testing.T) {
	require.True(t, matrix.NewDense[int](0, 0).SubRegion(0, 0, 3, 3).IsEmpty())
	require.True(t, matrix.NewDense[int](0, 0).SubMatrix(3, 3).IsEmpty())
}

func TestTranspose_Square(t *testing.T) {
	m := mustGrid(t, grid3x3)
	tr := m.Transpose()
	require.NotSame(t, m, tr)
	require.Equal(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, toGrid(t, tr))
	require.True(t, tr.Transpose().Equal(m))
	// the source is untouched
	require.Equal(t, grid3x3, toGrid(t, m))
}

func TestTranspose_NonSquareIsNoop(t *testing.T) {
	m := mustGrid(t, grid3x4)
	tr := m.Transpose()
	require.Same(t, m, tr)
	require.True(t, tr.Equal(mustGrid(t, grid3x4)))
}

func TestTranspose_Empty(t *testing.T) {
	e := matrix.NewDense[int](0, 0)
	tr := e.Transpose()
	require.True(t, tr.IsEmpty())
}
