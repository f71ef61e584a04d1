package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ieee0824/gemvfix"
	"github.com/ieee0824/gemvfix/fixture"
	"github.com/ieee0824/gemvfix/internal/blas"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("gemvgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", gemvfix.DefaultDim, "matrix dimension (n x n matrix, length-n vector)")
	kind := fs.String("kind", "float", "value distribution: float ([0,1)) or int ([0,200))")
	seed := fs.Uint64("seed", 0, "random seed (0 = time-based)")
	dir := fs.String("dir", ".", "output directory")
	gold := fs.String("gold", "auto", "write gold.csv: auto (int only), always, never")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gemvgen [options]")
		fmt.Fprintln(stderr, "  Writes random GEMV fixtures: matrix.csv, vector.csv and,")
		fmt.Fprintln(stderr, "  for int fixtures, the expected product gold.csv.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	k, err := fixture.ParseKind(*kind)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	g, err := gemvfix.ParseGoldMode(*gold)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	opts := []gemvfix.Option{
		gemvfix.WithDim(*n),
		gemvfix.WithKind(k),
		gemvfix.WithDir(*dir),
		gemvfix.WithGold(g),
	}
	if *seed != 0 {
		opts = append(opts, gemvfix.WithSeed(*seed))
	}

	start := time.Now()
	res, err := gemvfix.Run(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	for _, f := range res.Files {
		fmt.Fprintf(stderr, "wrote %s\n", f)
	}
	fmt.Fprintf(stderr, "Generated %s fixture n=%d seed=%d accelerate=%v in %v\n",
		res.Config.Kind, res.Config.Dim, res.Config.Seed, blas.HasAccelerate(),
		time.Since(start).Round(time.Millisecond))
	return 0
}
