// Package gmatrix is a small generic dense-matrix toolkit.
//
// What is inside:
//
//	matrix/ - Dense[T] container: indexing, search, sub-matrices, transpose,
//	          rendering, Max/Longest and int/float32/float64 multiplication
//	gonumx/ - float64 bridges to gonum.org/v1/gonum/mat
//
// Quick example:
//
//	m, _ := matrix.FromGrid([][]int{{1, 2}, {3, 4}})
//	p := matrix.MulInt(m, m)   // [[7 10] [15 22]]
//	fmt.Print(p.FormattedString())
//
//	go get github.com/katalvlaran/gmatrix
package gmatrix
