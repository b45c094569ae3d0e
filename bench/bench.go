// SPDX-License-Identifier: MIT

// Package bench times the multipliers on deterministic random inputs.
//
// Each (size, algorithm) pair is warmed up, then run repeatedly until MinTime
// has elapsed (at least once). Results are reported per pair through an
// optional callback as they complete, and returned in (size, algorithm) order.
package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/katalvlaran/strassen/matmul"
	"github.com/katalvlaran/strassen/matrix"
	"k8s.io/klog/v2"
)

// Config configures a benchmark run.
type Config struct {
	Sizes       []int              // matrix extents to test, each >= 1
	Algorithms  []matmul.Algorithm // algorithms to time, in report order
	MinTime     time.Duration      // minimum timed duration per pair; 0 runs once
	Warmup      int                // untimed runs before timing
	Seed        int64              // seed for the random operands
	LeafSize    int                // recursion cutoff; 0 means matmul.DefaultLeafSize
	MemoryLimit int                // workspace element budget per multiplication; 0 = unlimited
}

// DefaultConfig returns a configuration that finishes in a few seconds.
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{16, 31, 64, 128},
		Algorithms:  matmul.Algorithms(),
		MinTime:     200 * time.Millisecond,
		Warmup:      1,
		Seed:        1,
		LeafSize:    matmul.DefaultLeafSize,
		MemoryLimit: matmul.DefaultMemoryLimit,
	}
}

// Result holds the outcome of timing one algorithm at one size.
type Result struct {
	Algorithm    matmul.Algorithm
	Size         int
	PerOp        time.Duration // mean wall time per multiplication
	Iterations   int
	LeafProducts int // base-case block products per multiplication
	PeakElements int // workspace high-water mark per multiplication
}

// Ops returns the multiply-add count of the naive method, 2n³. It is the
// common yardstick for comparing algorithms, whatever they actually execute.
func (r Result) Ops() float64 {
	n := float64(r.Size)
	return 2 * n * n * n
}

// GOPS returns Ops per nanosecond, i.e. billions of integer operations per second.
func (r Result) GOPS() float64 {
	if r.PerOp <= 0 {
		return 0
	}

	return r.Ops() / float64(r.PerOp.Nanoseconds())
}

// String returns a one-line, fixed-width rendering of the result.
func (r Result) String() string {
	return fmt.Sprintf("%-9s | %5dx%-5d | %12v | %8.3f GOPS | %d iters",
		r.Algorithm, r.Size, r.Size, r.PerOp, r.GOPS(), r.Iterations)
}

// Pairs returns the number of results Run will produce for cfg.
func (cfg Config) Pairs() int { return len(cfg.Sizes) * len(cfg.Algorithms) }

// validate rejects configurations Run cannot execute.
func (cfg Config) validate() error {
	for _, n := range cfg.Sizes {
		if n < 1 {
			return fmt.Errorf("bench: size %d: %w", n, matrix.ErrInvalidDimensions)
		}
	}
	for _, alg := range cfg.Algorithms {
		if _, err := matmul.ParseAlgorithm(alg.String()); err != nil {
			return fmt.Errorf("bench: %w", err)
		}
	}
	if cfg.LeafSize < 0 || cfg.MemoryLimit < 0 || cfg.Warmup < 0 || cfg.MinTime < 0 {
		return fmt.Errorf("bench: leaf size %d, memory limit %d, warmup %d, min time %v: must not be negative",
			cfg.LeafSize, cfg.MemoryLimit, cfg.Warmup, cfg.MinTime)
	}

	return nil
}

// Run benchmarks every (size, algorithm) pair of cfg. onResult, when non-nil,
// is called after each pair completes. The first multiplication error aborts
// the run; results gathered so far are returned alongside it.
func Run(cfg Config, onResult func(Result)) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	leaf := cfg.LeafSize
	if leaf == 0 {
		leaf = matmul.DefaultLeafSize
	}

	results := make([]Result, 0, cfg.Pairs())
	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, n := range cfg.Sizes {
		a, err := Random(rng, n)
		if err != nil {
			return results, err
		}
		b, err := Random(rng, n)
		if err != nil {
			return results, err
		}
		for _, alg := range cfg.Algorithms {
			res, err := runPair(a, b, alg, leaf, cfg)
			if err != nil {
				return results, fmt.Errorf("bench: %s n=%d: %w", alg, n, err)
			}
			klog.V(1).Infof("bench: %s", res)
			results = append(results, res)
			if onResult != nil {
				onResult(res)
			}
		}
	}

	return results, nil
}

// runPair warms up, then times alg on a·b until cfg.MinTime has elapsed.
func runPair(a, b *matrix.Dense[int], alg matmul.Algorithm, leaf int, cfg Config) (Result, error) {
	var st matmul.Stats
	opts := []matmul.Option{
		matmul.WithLeafSize(leaf),
		matmul.WithMemoryLimit(cfg.MemoryLimit),
		matmul.WithStats(&st),
	}

	for i := 0; i < cfg.Warmup; i++ {
		if _, err := matmul.Multiply(a, b, alg, opts...); err != nil {
			return Result{}, err
		}
	}
	runtime.GC() // keep earlier garbage out of the timed loop

	iterations := 0
	start := time.Now()
	for iterations == 0 || time.Since(start) < cfg.MinTime {
		if _, err := matmul.Multiply(a, b, alg, opts...); err != nil {
			return Result{}, err
		}
		iterations++
	}
	elapsed := time.Since(start)

	return Result{
		Algorithm:    alg,
		Size:         a.Rows(),
		PerOp:        elapsed / time.Duration(iterations),
		Iterations:   iterations,
		LeafProducts: st.LeafProducts,
		PeakElements: st.PeakElements,
	}, nil
}

// Random returns an n×n matrix with entries drawn uniformly from [-9, 9].
// Small entries keep products of moderate size far from int overflow.
func Random(rng *rand.Rand, n int) (*matrix.Dense[int], error) {
	m, err := matrix.NewDense[int](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rng.Intn(19)-9) // in bounds by construction
		}
	}

	return m, nil
}
