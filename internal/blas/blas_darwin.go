//go:build darwin && cgo

package blas

/*
#cgo CFLAGS: -DACCELERATE_NEW_LAPACK
#cgo LDFLAGS: -framework Accelerate
#include <Accelerate/Accelerate.h>
*/
import "C"
import "unsafe"

// Dgemv performs y = alpha*A*x + beta*y using Apple Accelerate.
// A is row-major (m x n) with leading dimension lda, x has n elements and
// y has m elements.
func Dgemv(m, n int, alpha float64, a []float64, lda int,
	x []float64, beta float64, y []float64) {

	if m == 0 || n == 0 {
		return
	}
	C.cblas_dgemv(C.CblasRowMajor, C.CblasNoTrans,
		C.int(m), C.int(n),
		C.double(alpha),
		(*C.double)(unsafe.Pointer(&a[0])), C.int(lda),
		(*C.double)(unsafe.Pointer(&x[0])), C.int(1),
		C.double(beta),
		(*C.double)(unsafe.Pointer(&y[0])), C.int(1))
}

// HasAccelerate returns true when Apple Accelerate framework is available.
func HasAccelerate() bool { return true }
