package report

import (
	"fmt"
	"io"
	"strings"
)

const cellWidth = 18

// WriteText renders t as a fixed-width table: a banner with the title, a
// header of truncated column names and one line per row.
func WriteText(w io.Writer, t *Table) error {
	banner := strings.Repeat("=", 80)
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n\n", banner, t.Title, banner)

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = pad(truncate(col))
	}
	line := strings.Join(header, " | ")
	b.WriteString(line + "\n")
	b.WriteString(strings.Repeat("-", len(line)) + "\n")

	if len(t.Rows) == 0 {
		b.WriteString("No results found.\n")
	} else {
		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = pad(Cell(v))
			}
			b.WriteString(strings.Join(cells, " | ") + "\n")
		}
		fmt.Fprintf(&b, "\nTotal rows: %d\n", len(t.Rows))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Cell formats a single value: NULL for nil, floats with two decimals and
// anything else truncated to the cell width.
func Cell(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case float64:
		return fmt.Sprintf("%.2f", val)
	case float32:
		return fmt.Sprintf("%.2f", val)
	default:
		return truncate(fmt.Sprint(val))
	}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > cellWidth {
		return string(r[:cellWidth])
	}
	return s
}

func pad(s string) string {
	if n := len([]rune(s)); n < cellWidth {
		return s + strings.Repeat(" ", cellWidth-n)
	}
	return s
}
