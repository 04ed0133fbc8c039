// Package tabular models the externally-parsed table the batch translator
// consumes: named columns over an ordered sequence of rows, plus CSV
// round-tripping for the upload/export boundary.
package tabular

import (
	"fmt"
	"strings"
)

// Table is a named-column table with positional rows. Rows keep their input
// order; short rows read as empty cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex resolves a header name to its position, case-insensitively.
func (t *Table) ColumnIndex(name string) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("table is nil")
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for i, header := range t.Headers {
		if strings.ToLower(strings.TrimSpace(header)) == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q does not exist (available: %s)", name, strings.Join(t.Headers, ", "))
}

// Column returns the full ordered sequence of cell values in the named
// column, one per row.
func (t *Table) Column(name string) ([]string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}

	cells := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			cells[i] = row[idx]
		}
	}
	return cells, nil
}

// AppendColumn adds a new column with one value per row. The value count
// must match the row count exactly. Every row is squared to the header
// width first, so the new value always lands under the new header even
// when the input had ragged rows.
func (t *Table) AppendColumn(name string, values []string) error {
	if t == nil {
		return fmt.Errorf("table is nil")
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}

	width := len(t.Headers)
	t.Headers = append(t.Headers, name)
	for i := range t.Rows {
		if len(t.Rows[i]) > width {
			t.Rows[i] = t.Rows[i][:width]
		}
		for len(t.Rows[i]) < width {
			t.Rows[i] = append(t.Rows[i], "")
		}
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// OutputColumnName is the conventional name of the column batch translation
// appends to the table.
func OutputColumnName(targetCode string) string {
	return "translated_" + targetCode
}
