// SPDX-License-Identifier: MIT

// Package matmul: functional configuration for the multipliers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Defaults reproduce the textbook algorithms exactly (1×1 base case, no budget).
package matmul

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLeafSize is the block extent at or below which the recursive
	// multipliers stop splitting and multiply directly. 1 is the pure scalar
	// base case.
	DefaultLeafSize = 1

	// DefaultMemoryLimit bounds the number of live elements the workspace may
	// hand out at once (padded operands, temporaries, result). 0 means unlimited.
	DefaultMemoryLimit = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLeafSizeInvalid    = "matmul: WithLeafSize: leaf size must be >= 1"
	panicMemoryLimitInvalid = "matmul: WithMemoryLimit: limit must be >= 0"
	panicStatsNil           = "matmul: WithStats: stats must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	leafSize    int    // >= 1; DefaultLeafSize
	memoryLimit int    // >= 0 elements; 0 = unlimited
	stats       *Stats // optional sink for run statistics
}

// WithLeafSize sets the block extent at or below which recursion stops and
// the block is multiplied with the triple loop. Panics if n < 1.
//
// Leaf sizes that are not powers of two behave like the next lower power of
// two, since every recursive block extent is a power of two.
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.leafSize = n }
}

// WithMemoryLimit caps the number of elements simultaneously held by one run
// (padded copies of the inputs, the padded output, every temporary, and the
// result). Exceeding it fails the run with matrix.ErrAllocation.
// 0 disables the cap. Panics if limit < 0.
func WithMemoryLimit(limit int) Option {
	if limit < 0 {
		panic(panicMemoryLimitInvalid)
	}

	return func(o *Options) { o.memoryLimit = limit }
}

// WithStats asks the run to record its statistics into s (overwritten on
// every run). Panics if s is nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic(panicStatsNil)
	}

	return func(o *Options) { o.stats = s }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		leafSize:    DefaultLeafSize,
		memoryLimit: DefaultMemoryLimit,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
