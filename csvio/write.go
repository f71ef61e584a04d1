// Package csvio reads and writes comma-delimited numeric fixture files.
//
// A matrix is written one row per line; a vector is written one value per
// line. Every line ends with '\n'.
package csvio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ieee0824/gemvfix/internal/mathutil"
)

// Delimiter separates fields within a line.
const Delimiter = ','

// Format is the per-element numeric format.
type Format int

const (
	// FloatFormat writes "%.18e", which round-trips every float64 exactly.
	FloatFormat Format = iota
	// IntFormat writes base-10 integers ("%d"). Float values are truncated
	// toward zero.
	IntFormat
)

func (f Format) String() string {
	switch f {
	case FloatFormat:
		return "%.18e"
	case IntFormat:
		return "%d"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (f Format) appendFloat(dst []byte, v float64) []byte {
	if f == IntFormat {
		return strconv.AppendInt(dst, int64(v), 10)
	}
	return strconv.AppendFloat(dst, v, 'e', 18, 64)
}

// WriteMatrix writes m with one line per row.
func WriteMatrix(w io.Writer, m mathutil.Mat, f Format) error {
	var buf []byte
	for i, row := range m {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, Delimiter)
			}
			buf = f.appendFloat(buf, v)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}

// WriteVector writes v with one value per line.
func WriteVector(w io.Writer, v mathutil.Vec, f Format) error {
	var buf []byte
	for i, x := range v {
		buf = f.appendFloat(buf[:0], x)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write element %d: %w", i, err)
		}
	}
	return nil
}

// WriteIntMatrix writes an integer matrix with one line per row.
func WriteIntMatrix(w io.Writer, m mathutil.IntMat) error {
	var buf []byte
	for i, row := range m {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, Delimiter)
			}
			buf = strconv.AppendInt(buf, v, 10)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}

// WriteIntVector writes an integer vector with one value per line.
func WriteIntVector(w io.Writer, v mathutil.IntVec) error {
	var buf []byte
	for i, x := range v {
		buf = strconv.AppendInt(buf[:0], x, 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write element %d: %w", i, err)
		}
	}
	return nil
}

// WriteFile creates or truncates path and passes a buffered writer to fn.
// Flush and close errors are returned when fn itself succeeded.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriterSize(f, 1<<20)
	if err := fn(bw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
