// Package gemvfix generates random matrix-vector product fixtures and
// writes them as comma-delimited text files.
package gemvfix

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ieee0824/gemvfix/csvio"
	"github.com/ieee0824/gemvfix/fixture"
)

// Fixture file names, relative to the output directory.
const (
	MatrixFile = "matrix.csv"
	VectorFile = "vector.csv"
	GoldFile   = "gold.csv"
)

// DefaultDim is the fixture dimension used when none is configured.
const DefaultDim = 1024

// GoldMode controls whether the oracle product is written.
type GoldMode int

const (
	// GoldAuto writes gold.csv for Int fixtures only.
	GoldAuto GoldMode = iota
	// GoldAlways writes gold.csv for every kind.
	GoldAlways
	// GoldNever never writes gold.csv.
	GoldNever
)

func (g GoldMode) String() string {
	switch g {
	case GoldAuto:
		return "auto"
	case GoldAlways:
		return "always"
	case GoldNever:
		return "never"
	}
	return fmt.Sprintf("GoldMode(%d)", int(g))
}

// ParseGoldMode parses "auto", "always" or "never".
func ParseGoldMode(s string) (GoldMode, error) {
	switch s {
	case "auto":
		return GoldAuto, nil
	case "always":
		return GoldAlways, nil
	case "never":
		return GoldNever, nil
	}
	return 0, fmt.Errorf("unknown gold mode %q", s)
}

func (g GoldMode) enabled(k fixture.Kind) bool {
	switch g {
	case GoldAlways:
		return true
	case GoldNever:
		return false
	}
	return k == fixture.Int
}

// Config holds the parameters of one generation run.
type Config struct {
	Dim  int
	Kind fixture.Kind
	Seed uint64
	Dir  string
	Gold GoldMode
}

// Option configures a run.
type Option func(*Config)

// WithDim sets the matrix dimension n.
func WithDim(n int) Option {
	return func(c *Config) {
		c.Dim = n
	}
}

// WithKind sets the value distribution.
func WithKind(k fixture.Kind) Option {
	return func(c *Config) {
		c.Kind = k
	}
}

// WithSeed fixes the random seed. Without it the seed is time-based.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(c *Config) {
		c.Dir = dir
	}
}

// WithGold sets when gold.csv is written.
func WithGold(g GoldMode) Option {
	return func(c *Config) {
		c.Gold = g
	}
}

// DefaultConfig returns the configuration of an argument-less run: a
// 1024 x 1024 float fixture in the current directory.
func DefaultConfig() Config {
	return Config{
		Dim:  DefaultDim,
		Kind: fixture.Float,
		Seed: uint64(time.Now().UnixNano()),
		Dir:  ".",
		Gold: GoldAuto,
	}
}

// Result describes a completed run.
type Result struct {
	Config Config
	Set    *fixture.Set
	Files  []string
}

// Run generates a fixture, computes the oracle when enabled and writes the
// files. The first error aborts the run.
func Run(opts ...Option) (*Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	set, err := fixture.NewGenerator(cfg.Seed).Generate(cfg.Dim, cfg.Kind)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if cfg.Gold.enabled(cfg.Kind) {
		if err := set.ComputeGold(); err != nil {
			return nil, fmt.Errorf("compute gold: %w", err)
		}
	}

	files, err := Write(cfg.Dir, set)
	if err != nil {
		return nil, err
	}
	return &Result{Config: cfg, Set: set, Files: files}, nil
}

// Write stores set under dir and returns the written paths.
// Float sets use the float format; Int sets use the integer format.
// gold.csv is written only when the set carries a gold vector; otherwise any
// existing gold.csv in dir is removed.
func Write(dir string, set *fixture.Set) ([]string, error) {
	type job struct {
		name string
		fn   func(io.Writer) error
	}
	var jobs []job
	switch set.Kind {
	case fixture.Float:
		jobs = []job{
			{MatrixFile, func(w io.Writer) error { return csvio.WriteMatrix(w, set.Matrix, csvio.FloatFormat) }},
			{VectorFile, func(w io.Writer) error { return csvio.WriteVector(w, set.Vector, csvio.FloatFormat) }},
		}
		if set.Gold != nil {
			jobs = append(jobs, job{GoldFile, func(w io.Writer) error { return csvio.WriteVector(w, set.Gold, csvio.FloatFormat) }})
		}
	case fixture.Int:
		jobs = []job{
			{MatrixFile, func(w io.Writer) error { return csvio.WriteIntMatrix(w, set.IntMatrix) }},
			{VectorFile, func(w io.Writer) error { return csvio.WriteIntVector(w, set.IntVector) }},
		}
		if set.IntGold != nil {
			jobs = append(jobs, job{GoldFile, func(w io.Writer) error { return csvio.WriteIntVector(w, set.IntGold) }})
		}
	default:
		return nil, fmt.Errorf("write: %w: %v", fixture.ErrKind, set.Kind)
	}

	files := make([]string, 0, len(jobs))
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		if err := csvio.WriteFile(path, j.fn); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	if !set.HasGold() {
		// A gold.csv from an earlier run would not match the new fixture.
		goldPath := filepath.Join(dir, GoldFile)
		if err := os.Remove(goldPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return files, fmt.Errorf("remove stale %s: %w", goldPath, err)
		}
	}
	return files, nil
}
