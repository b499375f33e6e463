package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTableRender(t *testing.T) {
	t.Run("ColumnsSizedToWidestCell", func(t *testing.T) {
		tbl := newTable(
			tableColumn{title: "DATE"},
			tableColumn{title: "AMOUNT", align: alignRight},
		)
		tbl.addRow(nil, "2024-01-15", "$5.00")
		tbl.addRow(nil, "2024-02-01", "$1,234.56")

		var sb strings.Builder
		tbl.render(&sb)

		lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
		assert.Equal(t, 4, len(lines))
		assert.Equal(t, "DATE           AMOUNT", lines[0])
		assert.Equal(t, "----------  ---------", lines[1])
		assert.Equal(t, "2024-01-15      $5.00", lines[2])
		assert.Equal(t, "2024-02-01  $1,234.56", lines[3])
	})

	t.Run("MissingCellsRenderEmpty", func(t *testing.T) {
		tbl := newTable(
			tableColumn{title: "A"},
			tableColumn{title: "B"},
		)
		tbl.addRow(nil, "x")

		var sb strings.Builder
		tbl.render(&sb)

		lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
		assert.Equal(t, "x", lines[2])
	})

	t.Run("StyleAppliedAfterPadding", func(t *testing.T) {
		styled := false
		tbl := newTable(tableColumn{title: "A"})
		tbl.addRow(func(s string) string {
			styled = true
			return "[" + s + "]"
		}, "x")

		var sb strings.Builder
		tbl.render(&sb)

		assert.True(t, styled)
		assert.Contains(t, sb.String(), "[x]")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly te", truncate("exactly te", 10))
	assert.Equal(t, "too long …", truncate("too long for this", 10))
}
