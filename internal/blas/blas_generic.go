//go:build !darwin || !cgo

package blas

import (
	gblas "gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Dgemv performs y = alpha*A*x + beta*y through gonum's blas64.
// A is row-major (m x n) with leading dimension lda, x has n elements and
// y has m elements.
func Dgemv(m, n int, alpha float64, a []float64, lda int,
	x []float64, beta float64, y []float64) {

	if m == 0 || n == 0 {
		return
	}
	blas64.Gemv(gblas.NoTrans, alpha,
		blas64.General{Rows: m, Cols: n, Stride: lda, Data: a},
		blas64.Vector{N: n, Inc: 1, Data: x},
		beta,
		blas64.Vector{N: m, Inc: 1, Data: y})
}

// HasAccelerate returns false on non-darwin platforms.
func HasAccelerate() bool { return false }
