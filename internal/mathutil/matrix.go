package mathutil

// Vec is a float64 vector.
type Vec = []float64

// Mat is a 2D float64 matrix stored as row-major [][]float64.
type Mat = [][]float64

// IntVec is an int64 vector.
type IntVec = []int64

// IntMat is a 2D int64 matrix stored as row-major [][]int64.
type IntMat = [][]int64

// NewMat creates a rows x cols matrix initialized to zero.
// All rows share one contiguous backing array.
func NewMat(rows, cols int) Mat {
	m := make(Mat, rows)
	data := make([]float64, rows*cols)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols]
	}
	return m
}

// NewIntMat creates a rows x cols integer matrix initialized to zero.
func NewIntMat(rows, cols int) IntMat {
	m := make(IntMat, rows)
	data := make([]int64, rows*cols)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols]
	}
	return m
}

// NewVec creates a vector of length n initialized to zero.
func NewVec(n int) Vec {
	return make(Vec, n)
}

// NewIntVec creates an integer vector of length n initialized to zero.
func NewIntVec(n int) IntVec {
	return make(IntVec, n)
}

// DotVec returns the dot product of a and b.
func DotVec(a, b Vec) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// DotIntVec returns the exact integer dot product of a and b.
func DotIntVec(a, b IntVec) int64 {
	var sum int64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Flatten returns the rows of m concatenated into a single row-major slice.
// When m was built by NewMat the returned slice aliases its storage.
func Flatten(m Mat) []float64 {
	if len(m) == 0 {
		return nil
	}
	cols := len(m[0])
	if contiguous(m, cols) {
		return m[0][:len(m)*cols]
	}
	out := make([]float64, 0, len(m)*cols)
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}

// FlattenInt is Flatten for integer matrices. It always copies.
func FlattenInt(m IntMat) []int64 {
	if len(m) == 0 {
		return nil
	}
	out := make([]int64, 0, len(m)*len(m[0]))
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}

func contiguous(m Mat, cols int) bool {
	if cols == 0 || cap(m[0]) < len(m)*cols {
		return false
	}
	base := m[0][:len(m)*cols]
	for i, row := range m {
		if len(row) != cols || &row[0] != &base[i*cols] {
			return false
		}
	}
	return true
}

// IsSquare reports whether m has exactly n rows of exactly n columns.
func IsSquare(m Mat, n int) bool {
	if len(m) != n {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}
	return true
}

// IsSquareInt reports whether m has exactly n rows of exactly n columns.
func IsSquareInt(m IntMat, n int) bool {
	if len(m) != n {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}
	return true
}
