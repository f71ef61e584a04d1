package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ieee0824/gemvfix/internal/mathutil"
)

// ErrRagged is returned when matrix rows have differing field counts.
var ErrRagged = errors.New("ragged matrix rows")

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return cr
}

// readRecords calls fn for every non-empty line of r.
func readRecords(r io.Reader, fn func(line int, rec []string) error) error {
	cr := newReader(r)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line, _ := cr.FieldPos(0)
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func parseFloat(s string, line, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d column %d: %w", line, col+1, err)
	}
	return v, nil
}

func parseInt(s string, line, col int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d column %d: %w", line, col+1, err)
	}
	return v, nil
}

// ReadMatrix parses a float matrix written one row per line.
func ReadMatrix(r io.Reader) (mathutil.Mat, error) {
	var m mathutil.Mat
	err := readRecords(r, func(line int, rec []string) error {
		if len(m) > 0 && len(rec) != len(m[0]) {
			return fmt.Errorf("line %d: %w: %d fields, want %d", line, ErrRagged, len(rec), len(m[0]))
		}
		row := make([]float64, len(rec))
		for j, s := range rec {
			v, err := parseFloat(s, line, j)
			if err != nil {
				return err
			}
			row[j] = v
		}
		m = append(m, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ReadIntMatrix parses an integer matrix written one row per line.
func ReadIntMatrix(r io.Reader) (mathutil.IntMat, error) {
	var m mathutil.IntMat
	err := readRecords(r, func(line int, rec []string) error {
		if len(m) > 0 && len(rec) != len(m[0]) {
			return fmt.Errorf("line %d: %w: %d fields, want %d", line, ErrRagged, len(rec), len(m[0]))
		}
		row := make([]int64, len(rec))
		for j, s := range rec {
			v, err := parseInt(s, line, j)
			if err != nil {
				return err
			}
			row[j] = v
		}
		m = append(m, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ReadVector parses a float vector. Values are read in order, so both the
// one-per-line layout and a single delimited line are accepted.
func ReadVector(r io.Reader) (mathutil.Vec, error) {
	var v mathutil.Vec
	err := readRecords(r, func(line int, rec []string) error {
		for j, s := range rec {
			x, err := parseFloat(s, line, j)
			if err != nil {
				return err
			}
			v = append(v, x)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ReadIntVector parses an integer vector; see ReadVector for the layout.
func ReadIntVector(r io.Reader) (mathutil.IntVec, error) {
	var v mathutil.IntVec
	err := readRecords(r, func(line int, rec []string) error {
		for j, s := range rec {
			x, err := parseInt(s, line, j)
			if err != nil {
				return err
			}
			v = append(v, x)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ReadFile opens path and passes it to fn.
func ReadFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
