// SPDX-License-Identifier: MIT

// Package matrix - text rendering.

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "

	_dumpCellSep = " "
	_dumpRowEnd  = "\r\n"
)

// Format renders m row-major for display: every cell followed by a single
// space, every row terminated by CR LF. A nil matrix renders as "".
//
//	[[1 2] [3 4]]  →  "1 2 \r\n3 4 \r\n"
//
// Complexity: O(r*c).
func Format[T Element](m *Dense[T]) string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			b.WriteString(formatCell(m.data[i*m.c+j]))
			b.WriteString(_dumpCellSep)
		}
		b.WriteString(_dumpRowEnd)
	}

	return b.String()
}

// String HUMAN-READABLE dump of rows for diagnostics: "[1, 2]\n[3, 4]\n".
// Not for hot paths.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(formatCell(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatCell prints an integer cell in base 10 regardless of T's signedness.
func formatCell[T Element](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}
