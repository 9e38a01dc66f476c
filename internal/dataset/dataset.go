// Package dataset models tabular report data as ordered, named columns
// and provides the formatting transform applied before a worksheet is
// written.
package dataset

import (
	"fmt"
	"strings"
)

// Dataset holds tabular data as ordered named columns. Every column has
// the same number of cells, all kept as strings until write time.
type Dataset struct {
	Columns []string
	Cells   map[string][]string
}

// New creates an empty dataset with the given column names. Names are
// trimmed of surrounding whitespace.
func New(columns ...string) *Dataset {
	d := &Dataset{
		Columns: make([]string, len(columns)),
		Cells:   make(map[string][]string, len(columns)),
	}
	for i, col := range columns {
		name := strings.TrimSpace(col)
		d.Columns[i] = name
		d.Cells[name] = nil
	}
	return d
}

// FromRecords builds a dataset from row-oriented records. The first
// record is the header row.
func FromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	d := New(records[0]...)
	for i, row := range records[1:] {
		if err := d.Append(row...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+2, err)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Append adds one data row. The number of values must match the number
// of columns.
func (d *Dataset) Append(values ...string) error {
	if len(values) != len(d.Columns) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrColumnMismatch, len(values), len(d.Columns))
	}
	for i, col := range d.Columns {
		d.Cells[col] = append(d.Cells[col], values[i])
	}
	return nil
}

// RowCount returns the number of data rows, excluding the header.
func (d *Dataset) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Cells[d.Columns[0]])
}

// ColumnIndex returns the position of the named column, or -1 if the
// dataset has no such column.
func (d *Dataset) ColumnIndex(name string) int {
	for i, col := range d.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Rows returns the header row followed by every data row.
func (d *Dataset) Rows() [][]string {
	rows := make([][]string, 0, d.RowCount()+1)
	rows = append(rows, append([]string(nil), d.Columns...))
	for i := 0; i < d.RowCount(); i++ {
		row := make([]string, len(d.Columns))
		for j, col := range d.Columns {
			row[j] = d.Cells[col][i]
		}
		rows = append(rows, row)
	}
	return rows
}

// Validate checks that column names are non-empty and unique and that
// every column holds the same number of cells.
func (d *Dataset) Validate() error {
	seen := make(map[string]bool, len(d.Columns))
	for _, col := range d.Columns {
		if col == "" {
			return ErrEmptyColumnName
		}
		if seen[col] {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, col)
		}
		seen[col] = true
	}
	n := d.RowCount()
	for _, col := range d.Columns {
		if len(d.Cells[col]) != n {
			return fmt.Errorf("%w: column %s has %d rows, expected %d", ErrColumnMismatch, col, len(d.Cells[col]), n)
		}
	}
	return nil
}
