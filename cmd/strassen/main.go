// SPDX-License-Identifier: MIT

// strassen multiplies integer matrices with the naive, recursive and Strassen
// algorithms.
//
// Usage:
//
//	strassen [flags] [n]
//
// With no mode flag it prints A = 2·I, B = 3·I and C = A·B for n×n matrices.
// -verify cross-checks every algorithm on random inputs of size 1..n, and
// -bench times the algorithms over -sizes. Flag defaults come from STRASSEN_*
// environment variables, optionally read from a .env file (see package config).
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matmul"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	cfg := must.M1(config.Load())

	var (
		flagSize     = flag.Int("n", cfg.Size, "Matrix extent n (also accepted as the first argument).")
		flagAlgo     = flag.String("algo", cfg.Algorithm.String(), "Algorithm for the demo: naive, recursive or strassen.")
		flagLeaf     = flag.Int("leaf", cfg.LeafSize, "Block extent at or below which recursion stops.")
		flagMemLimit = flag.Int("memory_limit", cfg.MemoryLimit, "Maximum live elements per multiplication; 0 for no limit.")
		flagVerify   = flag.Bool("verify", false, "Cross-check all algorithms on random matrices of sizes 1..n.")
		flagBench    = flag.Bool("bench", false, "Benchmark all algorithms over -sizes.")
		flagSizes    = flag.String("sizes", "16,31,64,128", "Comma-separated matrix sizes for -bench.")
		flagMinTime  = flag.Duration("min_time", 200*time.Millisecond, "Minimum timed duration per size and algorithm for -bench.")
		flagSeed     = flag.Int64("seed", 1, "Seed for random matrices in -verify and -bench.")
		flagPlain    = flag.Bool("plain", false, "Disable colors in tables.")
	)
	flag.Parse()

	if *flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	n := *flagSize
	if args := flag.Args(); len(args) > 0 {
		if len(args) > 1 {
			klog.Errorf("Too many arguments. See 'strassen -help'.")
			os.Exit(1)
		}
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			klog.Errorf("Matrix size must be a non-negative integer, got %q.", args[0])
			os.Exit(1)
		}
		n = v
	}
	if *flagLeaf < 1 || *flagMemLimit < 0 {
		klog.Fatalf("-leaf must be >= 1 and -memory_limit >= 0, got %d and %d", *flagLeaf, *flagMemLimit)
	}
	cfg.Size, cfg.LeafSize, cfg.MemoryLimit = n, *flagLeaf, *flagMemLimit
	opts := cfg.Options()

	var err error
	switch {
	case *flagBench:
		var sizes []int
		if sizes, err = parseSizes(*flagSizes); err == nil {
			err = runBench(os.Stdout, sizes, *flagMinTime, *flagSeed, *cfg)
		}
	case *flagVerify:
		err = runVerify(os.Stdout, cfg.Size, *flagSeed, opts)
	default:
		var alg matmul.Algorithm
		if alg, err = matmul.ParseAlgorithm(*flagAlgo); err == nil {
			err = runDemo(os.Stdout, cfg.Size, alg, opts)
		}
	}
	if err != nil {
		klog.Fatalf("%+v", err)
	}
}

// parseSizes parses a comma-separated list of positive integers.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing size %q", part)
		}
		if n < 1 {
			return nil, errors.Errorf("size %d must be >= 1", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.Errorf("no sizes in %q", s)
	}

	return sizes, nil
}
