package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/regexbench/pkg/corpus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		out  string
		size int
		seed uint64
	)

	fs := flag.NewFlagSet("generate-input", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&out, "out", "o", filepath.Join("input", "data.txt"), "Output file")
	fs.IntVar(&size, "size", corpus.DefaultSize, "Minimum size in bytes")
	fs.Uint64Var(&seed, "seed", corpus.DefaultSeed, "Random seed")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(stderr, "Error creating dir: %v\n", err)
		return 1
	}

	f, err := os.Create(out) // #nosec G304 - path comes from the command line
	if err != nil {
		fmt.Fprintf(stderr, "Error writing file: %v\n", err)
		return 1
	}

	n, err := corpus.Generate(f, corpus.GenerateOptions{Size: size, Seed: seed})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing file: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Generated %s (%.2f MB)\n", out, float64(n)/1024/1024)
	return 0
}
