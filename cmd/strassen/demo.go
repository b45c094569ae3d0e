// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/strassen/matmul"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// runDemo prints A = 2·I, B = 3·I and C = A·B, each as "X =\r\n<Format>\r\n".
func runDemo(w io.Writer, n int, alg matmul.Algorithm, opts []matmul.Option) error {
	a, err := matrix.Diagonal(n, 2)
	if err != nil {
		return errors.Wrapf(err, "creating matrix A (%dx%d)", n, n)
	}
	b, err := matrix.Diagonal(n, 3)
	if err != nil {
		return errors.Wrapf(err, "creating matrix B (%dx%d)", n, n)
	}

	var st matmul.Stats
	c, err := matmul.Multiply(a, b, alg, append(opts, matmul.WithStats(&st))...)
	if err != nil {
		return errors.Wrapf(err, "multiplying %dx%d matrices with %s", n, n, alg)
	}
	klog.V(1).Infof("%s: %d calls, %d leaf products, peak %d elements", alg, st.Calls, st.LeafProducts, st.PeakElements)

	for _, m := range []struct {
		name string
		m    *matrix.Dense[int]
	}{{"A", a}, {"B", b}, {"C", c}} {
		if _, err = fmt.Fprintf(w, "%s =\r\n%s\r\n", m.name, matrix.Format(m.m)); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}

	return nil
}
