package tabular

import (
	"bytes"
	"strings"
	"testing"
)

const sampleCSV = "title,body\nhello,first body\nworld,\n"

func TestReadCSVAndColumn(t *testing.T) {
	t.Parallel()

	table, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(table.Headers) != 2 || table.Headers[0] != "title" {
		t.Fatalf("unexpected headers: %v", table.Headers)
	}

	cells, err := table.Column("Title")
	if err != nil {
		t.Fatalf("column lookup: %v", err)
	}
	if len(cells) != 2 || cells[0] != "hello" || cells[1] != "world" {
		t.Fatalf("unexpected cells: %v", cells)
	}

	if _, err := table.Column("missing"); err == nil {
		t.Fatalf("expected unknown column to fail")
	}
}

func TestAppendColumnAndRoundTrip(t *testing.T) {
	t.Parallel()

	table, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if err := table.AppendColumn(OutputColumnName("ur"), []string{"ہیلو", "دنیا"}); err != nil {
		t.Fatalf("append column: %v", err)
	}
	if got := table.Headers[len(table.Headers)-1]; got != "translated_ur" {
		t.Fatalf("unexpected output column name: %q", got)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	reread, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("reread csv: %v", err)
	}
	cells, err := reread.Column("translated_ur")
	if err != nil {
		t.Fatalf("column lookup after round trip: %v", err)
	}
	if cells[0] != "ہیلو" || cells[1] != "دنیا" {
		t.Fatalf("utf-8 text did not round-trip: %v", cells)
	}
}

func TestAppendColumnLengthMismatch(t *testing.T) {
	t.Parallel()

	table := &Table{Headers: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}}
	if err := table.AppendColumn("b", []string{"only one"}); err == nil {
		t.Fatalf("expected length mismatch to fail")
	}
}

func TestReadCSVRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatalf("expected empty document to fail")
	}
}

func TestRaggedRowsReadAsEmptyCells(t *testing.T) {
	t.Parallel()

	table, err := ReadCSV(strings.NewReader("a,b\nonly-a\n"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	cells, err := table.Column("b")
	if err != nil {
		t.Fatalf("column lookup: %v", err)
	}
	if cells[0] != "" {
		t.Fatalf("expected missing cell to read empty, got %q", cells[0])
	}
}

func TestAppendColumnSquaresOverlongRows(t *testing.T) {
	t.Parallel()

	table, err := ReadCSV(strings.NewReader("text,notes\nhello,a,extra\nworld\n"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if err := table.AppendColumn(OutputColumnName("es"), []string{"hola", "mundo"}); err != nil {
		t.Fatalf("append column: %v", err)
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Headers) {
			t.Fatalf("row %d has %d cells for %d headers: %v", i, len(row), len(table.Headers), row)
		}
	}
	cells, err := table.Column("translated_es")
	if err != nil {
		t.Fatalf("column lookup: %v", err)
	}
	if cells[0] != "hola" || cells[1] != "mundo" {
		t.Fatalf("translated values not under their header: %v", cells)
	}
}
