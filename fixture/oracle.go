package fixture

import (
	"fmt"

	"github.com/ieee0824/gemvfix/internal/blas"
	"github.com/ieee0824/gemvfix/internal/mathutil"
)

// Gold returns the exact integer product m*v.
func Gold(m mathutil.IntMat, v mathutil.IntVec) (mathutil.IntVec, error) {
	n := len(v)
	if !mathutil.IsSquareInt(m, n) {
		return nil, fmt.Errorf("%w: matrix %dx? vs vector %d", ErrShape, len(m), n)
	}
	out := mathutil.NewIntVec(n)
	blas.Igemv(n, n, mathutil.FlattenInt(m), n, v, out)
	return out, nil
}

// FloatGold returns the floating-point product m*v.
func FloatGold(m mathutil.Mat, v mathutil.Vec) (mathutil.Vec, error) {
	n := len(v)
	if !mathutil.IsSquare(m, n) {
		return nil, fmt.Errorf("%w: matrix %dx? vs vector %d", ErrShape, len(m), n)
	}
	out := mathutil.NewVec(n)
	blas.Dgemv(n, n, 1.0, mathutil.Flatten(m), n, v, 0.0, out)
	return out, nil
}
