package gemvfix

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ieee0824/gemvfix/csvio"
	"github.com/ieee0824/gemvfix/fixture"
)

// ErrMismatch is returned by Check when a result differs from the product
// by more than the tolerance.
var ErrMismatch = errors.New("result does not match fixture product")

// Load reads the fixture files in dir back into a Set.
// gold.csv is loaded when present.
func Load(dir string, kind fixture.Kind) (*fixture.Set, error) {
	set := &fixture.Set{Kind: kind}
	matrixPath := filepath.Join(dir, MatrixFile)
	vectorPath := filepath.Join(dir, VectorFile)
	goldPath := filepath.Join(dir, GoldFile)

	_, statErr := os.Stat(goldPath)
	hasGold := statErr == nil

	var err error
	switch kind {
	case fixture.Float:
		err = csvio.ReadFile(matrixPath, func(r io.Reader) (err error) {
			set.Matrix, err = csvio.ReadMatrix(r)
			return err
		})
		if err == nil {
			err = csvio.ReadFile(vectorPath, func(r io.Reader) (err error) {
				set.Vector, err = csvio.ReadVector(r)
				return err
			})
		}
		if err == nil && hasGold {
			err = csvio.ReadFile(goldPath, func(r io.Reader) (err error) {
				set.Gold, err = csvio.ReadVector(r)
				return err
			})
		}
		set.N = len(set.Vector)
	case fixture.Int:
		err = csvio.ReadFile(matrixPath, func(r io.Reader) (err error) {
			set.IntMatrix, err = csvio.ReadIntMatrix(r)
			return err
		})
		if err == nil {
			err = csvio.ReadFile(vectorPath, func(r io.Reader) (err error) {
				set.IntVector, err = csvio.ReadIntVector(r)
				return err
			})
		}
		if err == nil && hasGold {
			err = csvio.ReadFile(goldPath, func(r io.Reader) (err error) {
				set.IntGold, err = csvio.ReadIntVector(r)
				return err
			})
		}
		set.N = len(set.IntVector)
	default:
		return nil, fmt.Errorf("load: %w: %v", fixture.ErrKind, kind)
	}
	if err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	return set, nil
}

// Report summarizes a Check.
type Report struct {
	N          int
	MaxAbsDiff float64
	WorstIndex int
	Want, Got  float64
}

// Check compares the vector in resultPath with the product of the fixture
// in dir. Int fixtures are compared exactly when tol is zero.
func Check(dir string, kind fixture.Kind, resultPath string, tol float64) (*Report, error) {
	set, err := Load(dir, kind)
	if err != nil {
		return nil, err
	}

	var got []float64
	err = csvio.ReadFile(resultPath, func(r io.Reader) (err error) {
		got, err = csvio.ReadVector(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(got) != set.N {
		return nil, fmt.Errorf("%w: result has %d values, want %d", fixture.ErrShape, len(got), set.N)
	}

	want, err := expected(set)
	if err != nil {
		return nil, err
	}
	diff := make([]float64, set.N)
	floats.SubTo(diff, got, want)

	// A non-finite element fails the check outright; NaN never compares
	// greater than the running maximum.
	idx, worst := 0, 0.0
	for i, d := range diff {
		d = math.Abs(d)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			idx, worst = i, d
			break
		}
		if d > worst {
			idx, worst = i, d
		}
	}
	rep := &Report{
		N:          set.N,
		MaxAbsDiff: worst,
		WorstIndex: idx,
		Want:       want[idx],
		Got:        got[idx],
	}
	if math.IsNaN(worst) || math.IsInf(worst, 0) || !(worst <= tol) {
		return rep, fmt.Errorf("%w: index %d got %g want %g (|diff| %g > %g)",
			ErrMismatch, idx, rep.Got, rep.Want, rep.MaxAbsDiff, tol)
	}
	return rep, nil
}

// expected returns the reference product of set as float64 values.
func expected(set *fixture.Set) ([]float64, error) {
	n := set.N
	if set.Kind == fixture.Int {
		g := set.IntGold
		if g == nil {
			var err error
			g, err = fixture.Gold(set.IntMatrix, set.IntVector)
			if err != nil {
				return nil, err
			}
		}
		out := make([]float64, n)
		for i, v := range g {
			out[i] = float64(v)
		}
		return out, nil
	}

	a := mat.NewDense(n, n, nil)
	for i, row := range set.Matrix {
		a.SetRow(i, row)
	}
	x := mat.NewVecDense(n, set.Vector)
	var y mat.VecDense
	y.MulVec(a, x)
	return y.RawVector().Data, nil
}
