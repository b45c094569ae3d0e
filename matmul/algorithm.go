// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"
	"strings"
)

// Algorithm selects a multiplication method.
type Algorithm int

const (
	// Naive is the i,j,k triple loop, O(n³).
	Naive Algorithm = iota
	// Recursive is divide-and-conquer with eight quadrant products, O(n³).
	Recursive
	// Strassen is divide-and-conquer with seven quadrant products, O(n^2.807).
	Strassen
)

var algorithmNames = []string{"naive", "recursive", "strassen"}

// valid reports whether a is one of Algorithms().
func (a Algorithm) valid() bool {
	return a >= Naive && a <= Strassen
}

// Algorithms lists every algorithm in increasing order of sophistication.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, Recursive, Strassen}
}

// String returns the lowercase name of the algorithm.
func (a Algorithm) String() string {
	if a.valid() {
		return algorithmNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name ("naive", "recursive",
// "strassen") to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%q (want one of %s): %w", name, strings.Join(algorithmNames, ", "), ErrUnknownAlgorithm)
}
