// Package matrix_test contains tests for rendering options.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithPadding: padding must be non-negative", func() { matrix.WithPadding(-1) })
	require.PanicsWithValue(t, "matrix: WithElementFormat: format must not be empty", func() { matrix.WithElementFormat("") })
}

func TestOptions_LaterWins(t *testing.T) {
	m := mustGrid(t, [][]int{{1, 2}})
	require.Equal(t, "1;2;\n", m.Render(matrix.WithSeparator(","), matrix.WithSeparator(";")))
}

func TestOptions_NilSkipped(t *testing.T) {
	m := mustGrid(t, [][]int{{1, 2}})
	require.Equal(t, m.String(), m.Render(nil))
}

func TestOptions_Defaults(t *testing.T) {
	require.Equal(t, " ", matrix.DefaultSeparator)
	require.Equal(t, "\n", matrix.DefaultLineBreak)
	require.Equal(t, 1, matrix.DefaultPadding)
}
