package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const maxColumnWidth = 48

// Table is a box-drawn table. The first column is rendered as an identifier and
// StateColumn, when not negative, gets a state indicator.
type Table struct {
	Headers     []string
	Rows        [][]string
	StateColumn int
	Noun        string
}

// NewTable creates a table without a state column.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, StateColumn: -1, Noun: "rows"}
}

// Append adds a row. Missing cells render as "-".
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.Headers))
	for i := range row {
		if i < len(cells) {
			row[i] = formatOptional(cells[i])
		} else {
			row[i] = "-"
		}
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			w := runewidth.StringWidth(cell)
			if i == t.StateColumn {
				w += 2
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

// Render writes the table followed by a one-line summary.
func (t *Table) Render(w io.Writer) {
	widths := t.widths()

	var sb strings.Builder

	border := func(left, mid, right string) {
		sb.WriteString(BorderStyle.Render(left))
		for i, cw := range widths {
			sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, cw+2)))
			if i < len(widths)-1 {
				sb.WriteString(BorderStyle.Render(mid))
			}
		}
		sb.WriteString(BorderStyle.Render(right))
		sb.WriteString("\n")
	}

	// Top border
	border(TopLeft, TopT, TopRight)

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range t.Headers {
		sb.WriteString(HeaderStyle.Render(" " + padRight(h, widths[i]) + " "))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	border(LeftT, Cross, RightT)

	// Data rows
	for _, row := range t.Rows {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i, cell := range row {
			sb.WriteString(t.renderCell(i, cell, widths[i]))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	// Bottom border
	border(BottomLeft, BottomT, BottomRight)

	fmt.Fprint(w, sb.String())
	fmt.Fprintln(w, t.summary())
}

func (t *Table) renderCell(col int, cell string, width int) string {
	var style lipgloss.Style
	switch {
	case col == t.StateColumn:
		indicator, st := stateIndicator(cell)
		return st.Render(" " + padRight(indicator+" "+cell, width) + " ")
	case col == 0:
		style = IDStyle
	case col == 1:
		style = NameStyle
	default:
		style = ValueStyle
	}
	return style.Render(" " + padRight(cell, width) + " ")
}

func (t *Table) summary() string {
	summary := fmt.Sprintf("  %d %s", len(t.Rows), t.Noun)
	if t.StateColumn < 0 || len(t.Rows) == 0 {
		return summary
	}

	counts := make(map[string]int)
	var order []string
	for _, row := range t.Rows {
		state := row[t.StateColumn]
		if counts[state] == 0 {
			order = append(order, state)
		}
		counts[state]++
	}

	parts := make([]string, 0, len(order))
	for _, state := range order {
		_, style := stateIndicator(state)
		parts = append(parts, style.Render(fmt.Sprintf("%d %s", counts[state], strings.ToLower(state))))
	}
	return summary + " (" + strings.Join(parts, ", ") + ")"
}
