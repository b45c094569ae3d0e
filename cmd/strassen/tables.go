// SPDX-License-Identifier: MIT

package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
	failRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)
)

// resultTable is a lipgloss table that can flag individual rows.
type resultTable struct {
	Table  *lgtable.Table
	count  int
	failed map[int]bool
}

// Row appends a row, rendered in the failure style when failed is set.
func (t *resultTable) Row(failed bool, row ...string) {
	if failed {
		t.failed[t.count] = true
	}
	t.Table.Row(row...)
	t.count++
}

// Render returns the table as a string.
func (t *resultTable) Render() string { return t.Table.Render() }

// newResultTable returns a bordered table with a header row. Column i uses
// alignments[i]; columns past the list are right aligned.
func newResultTable(headers []string, alignments ...lipgloss.Position) *resultTable {
	t := &resultTable{failed: make(map[int]bool)}
	t.Table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers(headers...).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row < 0 {
				return headerRowStyle
			}
			switch {
			case t.failed[row]:
				s = failRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			if col < len(alignments) {
				return s.Align(alignments[col])
			}
			return s.Align(lipgloss.Right)
		})

	return t
}
