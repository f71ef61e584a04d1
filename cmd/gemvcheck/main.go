package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/gemvfix"
	"github.com/ieee0824/gemvfix/fixture"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("gemvcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", ".", "fixture directory containing matrix.csv and vector.csv")
	kind := fs.String("kind", "float", "fixture kind: float or int")
	tol := fs.Float64("tol", 1e-9, "maximum absolute difference per element")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gemvcheck [options] result.csv")
		fmt.Fprintln(stderr, "  Compares a computed matrix-vector product against the fixture.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	k, err := fixture.ParseKind(*kind)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rep, err := gemvfix.Check(*dir, k, fs.Arg(0), *tol)
	if errors.Is(err, gemvfix.ErrMismatch) {
		fmt.Fprintf(stderr, "FAIL n=%d: %v\n", rep.N, err)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "OK n=%d max|diff|=%g (index %d)\n", rep.N, rep.MaxAbsDiff, rep.WorstIndex)
	return 0
}
