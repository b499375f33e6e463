package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// alignment controls how a table cell is padded within its column.
type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// table accumulates rows and renders them with columns sized to their
// widest cell. Styling is applied per row after padding so ANSI sequences
// never skew the width math.
type table struct {
	columns []tableColumn
	rows    []tableRow
}

type tableColumn struct {
	title string
	align alignment
}

type tableRow struct {
	cells []string
	style func(string) string
}

func newTable(columns ...tableColumn) *table {
	return &table{columns: columns}
}

// addRow appends a row. A nil style leaves the row unstyled; cells beyond
// the column count are dropped, missing cells render empty.
func (t *table) addRow(style func(string) string, cells ...string) {
	t.rows = append(t.rows, tableRow{cells: cells, style: style})
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range t.rows {
		for i, cell := range row.cells {
			if i >= len(widths) {
				break
			}
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	header := make([]string, len(t.columns))
	rules := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = pad(col.title, widths[i], col.align)
		rules[i] = strings.Repeat("-", widths[i])
	}
	_, _ = fmt.Fprintln(w, strings.Join(header, "  "))
	_, _ = fmt.Fprintln(w, strings.Join(rules, "  "))

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i := range t.columns {
			var cell string
			if i < len(row.cells) {
				cell = row.cells[i]
			}
			cells[i] = pad(cell, widths[i], t.columns[i].align)
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if row.style != nil {
			line = row.style(line)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

func pad(s string, width int, align alignment) string {
	if align == alignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// terminalWidth returns the width of the attached terminal, or fallback
// when stdout is not a terminal.
func terminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// truncate shortens a cell to at most width display columns, appending an
// ellipsis when anything was cut.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
