// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/strassen/bench"
	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matmul"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// runBench times every algorithm at every size, showing a progress bar on
// stderr, then prints the results as a table.
func runBench(w io.Writer, sizes []int, minTime time.Duration, seed int64, run config.Config) error {
	cfg := bench.DefaultConfig()
	cfg.Sizes = sizes
	cfg.MinTime = minTime
	cfg.Seed = seed
	cfg.LeafSize = run.LeafSize
	cfg.MemoryLimit = run.MemoryLimit

	bar := progressbar.NewOptions(cfg.Pairs(),
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	results, err := bench.Run(cfg, func(bench.Result) { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		return errors.Wrap(err, "benchmark")
	}

	if _, err = fmt.Fprintln(w, renderBench(results)); err != nil {
		return errors.Wrap(err, "writing output")
	}

	return nil
}

// renderBench lays results out one row per (size, algorithm), with the speedup
// relative to the naive algorithm at the same size when it was measured.
func renderBench(results []bench.Result) string {
	naive := make(map[int]time.Duration)
	for _, r := range results {
		if r.Algorithm == matmul.Naive {
			naive[r.Size] = r.PerOp
		}
	}

	table := newResultTable(
		[]string{"n", "algorithm", "time/op", "GOPS", "vs naive", "leaf products", "peak elements", "iterations"},
		lipgloss.Right, lipgloss.Left)
	for _, r := range results {
		speedup := "-"
		if base, ok := naive[r.Size]; ok && r.PerOp > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(base)/float64(r.PerOp))
		}
		table.Row(false,
			fmt.Sprint(r.Size),
			r.Algorithm.String(),
			r.PerOp.String(),
			fmt.Sprintf("%.3f", r.GOPS()),
			speedup,
			humanize.Comma(int64(r.LeafProducts)),
			humanize.Comma(int64(r.PeakElements)),
			humanize.Comma(int64(r.Iterations)),
		)
	}

	return table.Render()
}
