package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV parses a CSV document into a table. The first record is the
// header row. Rows may be ragged; missing cells read as empty strings.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv document has no header row")
	}

	return &Table{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// WriteCSV serializes the table, header row first. Output is UTF-8 and
// round-trips cell text faithfully.
func WriteCSV(w io.Writer, t *Table) error {
	if t == nil {
		return fmt.Errorf("table is nil")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range t.Rows {
		// Pad short rows so every record matches the header width.
		record := row
		if len(record) < len(t.Headers) {
			record = make([]string, len(t.Headers))
			copy(record, row)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
