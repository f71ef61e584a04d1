package blas

// Igemv performs y = A*x in exact int64 arithmetic.
// A is row-major (m x n) with leading dimension lda. Accelerate and gonum
// only provide floating-point kernels, so this one is pure Go on every
// platform.
func Igemv(m, n int, a []int64, lda int, x, y []int64) {
	for i := 0; i < m; i++ {
		row := a[i*lda : i*lda+n]
		var sum int64
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}
}
