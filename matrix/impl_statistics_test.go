// Package matrix_test contains tests for Max and Longest.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	require.Equal(t, 5, matrix.Max(mustGrid(t, [][]int{{3, 1}, {5, 2}})))
	require.Equal(t, -1.5, matrix.Max(mustGrid(t, [][]float64{{-3, -1.5}, {-2, -7}})))
	require.Equal(t, "pear", matrix.Max(mustGrid(t, [][]string{{"apple", "pear"}, {"fig", "kiwi"}})))
}

func TestMax_Empty(t *testing.T) {
	require.Equal(t, 0, matrix.Max(matrix.NewDense[int](0, 0)))
	require.Equal(t, float32(0), matrix.Max(matrix.NewDense[float32](3, 0)))
	require.Equal(t, "", matrix.Max(matrix.NewDense[string](-1, 2)))
}

func TestMax_NaN(t *testing.T) {
	require.Equal(t, 2.0, matrix.Max(mustGrid(t, [][]float64{{math.NaN(), 2}, {1, math.NaN()}})))
	require.True(t, math.IsNaN(matrix.Max(mustGrid(t, [][]float64{{math.NaN()}}))))
}

func TestLongest(t *testing.T) {
	m := mustGrid(t, [][]int{{7, -12}, {345, 99}})
	// -12 and 345 both have 3 runes; the earlier one wins.
	require.Equal(t, -12, matrix.Longest(m))

	s := mustGrid(t, [][]string{{"ab", "abcd"}, {"wxyz", "é"}})
	require.Equal(t, "abcd", matrix.Longest(s))
}

func TestLongest_Empty(t *testing.T) {
	require.Equal(t, 0.0, matrix.Longest(matrix.NewDense[float64](0, 0)))
}
