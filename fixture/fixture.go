// Package fixture samples random GEMV fixtures and computes their oracle
// products.
package fixture

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ieee0824/gemvfix/internal/mathutil"
)

var (
	// ErrInvalidDim is returned when a fixture dimension is not positive.
	ErrInvalidDim = errors.New("fixture dimension must be positive")
	// ErrShape is returned when matrix and vector shapes disagree.
	ErrShape = errors.New("fixture shape mismatch")
)

// Set is one generated fixture: an N x N matrix, a length-N vector and,
// once ComputeGold has run, their product.
// Only the fields matching Kind are populated.
type Set struct {
	Kind Kind
	N    int

	Matrix mathutil.Mat
	Vector mathutil.Vec
	Gold   mathutil.Vec

	IntMatrix mathutil.IntMat
	IntVector mathutil.IntVec
	IntGold   mathutil.IntVec
}

// HasGold reports whether the oracle product has been computed.
func (s *Set) HasGold() bool {
	if s.Kind == Int {
		return s.IntGold != nil
	}
	return s.Gold != nil
}

// ComputeGold fills Gold or IntGold with the matrix-vector product.
func (s *Set) ComputeGold() error {
	switch s.Kind {
	case Float:
		g, err := FloatGold(s.Matrix, s.Vector)
		if err != nil {
			return err
		}
		s.Gold = g
	case Int:
		g, err := Gold(s.IntMatrix, s.IntVector)
		if err != nil {
			return err
		}
		s.IntGold = g
	default:
		return fmt.Errorf("%w: %v", ErrKind, s.Kind)
	}
	return nil
}

// Validate checks shape consistency and that every sampled value lies in
// the range of the set's kind. An Int gold is also checked against the
// exact product.
func (s *Set) Validate() error {
	if s.N <= 0 {
		return ErrInvalidDim
	}
	switch s.Kind {
	case Float:
		if !mathutil.IsSquare(s.Matrix, s.N) {
			return fmt.Errorf("%w: matrix is not %dx%d", ErrShape, s.N, s.N)
		}
		if len(s.Vector) != s.N {
			return fmt.Errorf("%w: vector length %d, want %d", ErrShape, len(s.Vector), s.N)
		}
		if s.Gold != nil && len(s.Gold) != s.N {
			return fmt.Errorf("%w: gold length %d, want %d", ErrShape, len(s.Gold), s.N)
		}
		for i, row := range s.Matrix {
			for j, v := range row {
				if !Float.Contains(v) {
					return fmt.Errorf("matrix[%d][%d] = %v out of range [0,1)", i, j, v)
				}
			}
		}
		for i, v := range s.Vector {
			if !Float.Contains(v) {
				return fmt.Errorf("vector[%d] = %v out of range [0,1)", i, v)
			}
		}
	case Int:
		if !mathutil.IsSquareInt(s.IntMatrix, s.N) {
			return fmt.Errorf("%w: matrix is not %dx%d", ErrShape, s.N, s.N)
		}
		if len(s.IntVector) != s.N {
			return fmt.Errorf("%w: vector length %d, want %d", ErrShape, len(s.IntVector), s.N)
		}
		for i, row := range s.IntMatrix {
			for j, v := range row {
				if !Int.Contains(float64(v)) {
					return fmt.Errorf("matrix[%d][%d] = %d out of range [0,%d)", i, j, v, IntBound)
				}
			}
		}
		for i, v := range s.IntVector {
			if !Int.Contains(float64(v)) {
				return fmt.Errorf("vector[%d] = %d out of range [0,%d)", i, v, IntBound)
			}
		}
		if s.IntGold != nil {
			if len(s.IntGold) != s.N {
				return fmt.Errorf("%w: gold length %d, want %d", ErrShape, len(s.IntGold), s.N)
			}
			for i, row := range s.IntMatrix {
				if want := mathutil.DotIntVec(row, s.IntVector); s.IntGold[i] != want {
					return fmt.Errorf("gold[%d] = %d, want %d", i, s.IntGold[i], want)
				}
			}
		}
	default:
		return fmt.Errorf("%w: %v", ErrKind, s.Kind)
	}
	return nil
}

// Generator samples fixtures from a seeded PCG source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	src rand.Source
}

// NewGenerator returns a Generator seeded with seed. Equal seeds produce
// equal fixtures.
func NewGenerator(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Generator{rng: rand.New(src), src: src}
}

// Generate samples a fresh n x n matrix and length-n vector of the given kind.
func (g *Generator) Generate(n int, kind Kind) (*Set, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrInvalidDim, n)
	}
	s := &Set{Kind: kind, N: n}
	switch kind {
	case Float:
		dist := distuv.Uniform{Min: 0, Max: 1, Src: g.src}
		s.Matrix = mathutil.NewMat(n, n)
		for _, row := range s.Matrix {
			g.fillUniform(row, dist)
		}
		s.Vector = mathutil.NewVec(n)
		g.fillUniform(s.Vector, dist)
	case Int:
		s.IntMatrix = mathutil.NewIntMat(n, n)
		for _, row := range s.IntMatrix {
			g.fillInt(row)
		}
		s.IntVector = mathutil.NewIntVec(n)
		g.fillInt(s.IntVector)
	default:
		return nil, fmt.Errorf("%w: %v", ErrKind, kind)
	}
	return s, nil
}

func (g *Generator) fillUniform(dst []float64, dist distuv.Uniform) {
	for i := range dst {
		v := dist.Rand()
		// Keep the interval half-open.
		for v >= 1 {
			v = dist.Rand()
		}
		dst[i] = v
	}
}

func (g *Generator) fillInt(dst []int64) {
	for i := range dst {
		dst[i] = g.rng.Int64N(IntBound)
	}
}
