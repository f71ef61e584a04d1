package blas

import (
	"math"
	"math/rand"
	"testing"
)

func TestDgemv_Identity(t *testing.T) {
	// I(3x3) * x = x
	a := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	x := []float64{4, 5, 6}
	y := make([]float64, 3)

	Dgemv(3, 3, 1.0, a, 3, x, 0.0, y)

	for i, want := range x {
		if math.Abs(y[i]-want) > 1e-12 {
			t.Errorf("y[%d] = %f, want %f", i, y[i], want)
		}
	}
}

func TestDgemv_Small(t *testing.T) {
	// A(2x3) * x(3) = y(2)
	a := []float64{1, 2, 3, 4, 5, 6}
	x := []float64{1, 0, 1}
	y := make([]float64, 2)

	Dgemv(2, 3, 1.0, a, 3, x, 0.0, y)

	// y[0] = 1 + 3 = 4
	// y[1] = 4 + 6 = 10
	want := []float64{4, 10}
	for i := range want {
		if math.Abs(y[i]-want[i]) > 1e-10 {
			t.Errorf("y[%d] = %f, want %f", i, y[i], want[i])
		}
	}
}

func TestDgemv_AlphaBeta(t *testing.T) {
	// y = 2*A*x + 3*y
	a := []float64{1, 2, 3, 4}
	x := []float64{5, 6}
	y := []float64{1, 1}

	Dgemv(2, 2, 2.0, a, 2, x, 3.0, y)

	// A*x = [17, 39]; 2*[17,39] + 3 = [37, 81]
	want := []float64{37, 81}
	for i := range want {
		if math.Abs(y[i]-want[i]) > 1e-10 {
			t.Errorf("y[%d] = %f, want %f", i, y[i], want[i])
		}
	}
}

func TestDgemv_Stride(t *testing.T) {
	// 2x2 view into a 2x3 buffer; the third column is padding.
	a := []float64{1, 2, 99, 3, 4, 99}
	x := []float64{5, 6}
	y := make([]float64, 2)

	Dgemv(2, 2, 1.0, a, 3, x, 0.0, y)

	want := []float64{17, 39}
	for i := range want {
		if math.Abs(y[i]-want[i]) > 1e-10 {
			t.Errorf("y[%d] = %f, want %f", i, y[i], want[i])
		}
	}
}

func TestDgemv_Empty(t *testing.T) {
	// Must not index into empty slices.
	Dgemv(0, 0, 1.0, nil, 0, nil, 0.0, nil)
}

func TestDgemv_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	M, N := 64, 48

	a := make([]float64, M*N)
	x := make([]float64, N)
	for i := range a {
		a[i] = rng.Float64()
	}
	for i := range x {
		x[i] = rng.Float64()
	}

	y := make([]float64, M)
	Dgemv(M, N, 1.0, a, N, x, 0.0, y)

	for i := 0; i < M; i++ {
		sum := 0.0
		for j := 0; j < N; j++ {
			sum += a[i*N+j] * x[j]
		}
		if math.Abs(y[i]-sum) > 1e-10 {
			t.Errorf("y[%d] = %f, want %f (diff=%e)", i, y[i], sum, y[i]-sum)
		}
	}
}

func TestIgemv(t *testing.T) {
	a := []int64{1, 2, 3, 4}
	x := []int64{5, 6}
	y := make([]int64, 2)

	Igemv(2, 2, a, 2, x, y)

	want := []int64{17, 39}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("y[%d] = %d, want %d", i, y[i], want[i])
		}
	}
}

func TestIgemv_MaxRange(t *testing.T) {
	// Largest fixture values: 1024 * 199 * 199 fits easily in int64.
	n := 1024
	a := make([]int64, n*n)
	x := make([]int64, n)
	for i := range a {
		a[i] = 199
	}
	for i := range x {
		x[i] = 199
	}
	y := make([]int64, n)

	Igemv(n, n, a, n, x, y)

	want := int64(n) * 199 * 199
	for i := range y {
		if y[i] != want {
			t.Fatalf("y[%d] = %d, want %d", i, y[i], want)
		}
	}
}

func BenchmarkDgemv_1024(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	n := 1024
	a := make([]float64, n*n)
	x := make([]float64, n)
	for i := range a {
		a[i] = rng.Float64()
	}
	for i := range x {
		x[i] = rng.Float64()
	}
	y := make([]float64, n)

	b.ResetTimer()
	for b.Loop() {
		Dgemv(n, n, 1.0, a, n, x, 0.0, y)
	}
}

func BenchmarkIgemv_1024(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	n := 1024
	a := make([]int64, n*n)
	x := make([]int64, n)
	for i := range a {
		a[i] = rng.Int63n(200)
	}
	for i := range x {
		x[i] = rng.Int63n(200)
	}
	y := make([]int64, n)

	b.ResetTimer()
	for b.Loop() {
		Igemv(n, n, a, n, x, y)
	}
}
