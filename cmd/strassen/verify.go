// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/strassen/bench"
	"github.com/katalvlaran/strassen/matmul"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/pkg/errors"
)

// errVerify reports that at least one algorithm disagreed with the naive product.
var errVerify = errors.New("verification failed")

// runVerify multiplies random matrices of every size 1..n with each algorithm,
// compares the results against the naive product and prints a summary table.
func runVerify(w io.Writer, n int, seed int64, opts []matmul.Option) error {
	if n < 1 {
		return errors.Errorf("-verify needs n >= 1, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	table := newResultTable(
		[]string{"n", "algorithm", "padded", "leaf products", "peak elements", "result"},
		lipgloss.Right, lipgloss.Left)

	failures := 0
	for size := 1; size <= n; size++ {
		a, err := bench.Random(rng, size)
		if err != nil {
			return errors.Wrapf(err, "creating %dx%d operand", size, size)
		}
		b, err := bench.Random(rng, size)
		if err != nil {
			return errors.Wrapf(err, "creating %dx%d operand", size, size)
		}
		want, err := matmul.MultiplyNaive(a, b, opts...)
		if err != nil {
			return errors.Wrapf(err, "naive product at n=%d", size)
		}
		for _, alg := range matmul.Algorithms() {
			var st matmul.Stats
			got, err := matmul.Multiply(a, b, alg, append(opts, matmul.WithStats(&st))...)
			if err != nil {
				return errors.Wrapf(err, "%s product at n=%d", alg, size)
			}
			ok := matrix.Equal(want, got)
			status := "ok"
			if !ok {
				status = "MISMATCH"
				failures++
			}
			table.Row(!ok,
				fmt.Sprint(size), alg.String(), fmt.Sprint(st.PaddedSize),
				humanize.Comma(int64(st.LeafProducts)), humanize.Comma(int64(st.PeakElements)), status)
		}
	}
	if _, err := fmt.Fprintln(w, table.Render()); err != nil {
		return errors.Wrap(err, "writing output")
	}
	if failures > 0 {
		return errors.Wrapf(errVerify, "%d mismatches", failures)
	}

	return nil
}
