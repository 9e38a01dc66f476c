package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewTrimsColumnNames(t *testing.T) {
	d := New(" Description ", "Amount")
	want := []string{"Description", "Amount"}
	if !reflect.DeepEqual(d.Columns, want) {
		t.Errorf("Columns = %v, want %v", d.Columns, want)
	}
}

func TestAppendAndRowCount(t *testing.T) {
	d := New("Description", "Amount")
	if err := d.Append("Salary", "5000.00"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := d.Append("Rent", "-1200.00"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got := d.RowCount(); got != 2 {
		t.Errorf("RowCount = %d, want 2", got)
	}
	if got := d.Cells["Amount"][1]; got != "-1200.00" {
		t.Errorf("Cells[Amount][1] = %q, want -1200.00", got)
	}
}

func TestAppendRejectsRaggedRow(t *testing.T) {
	d := New("Description", "Amount")
	err := d.Append("Salary")
	if !errors.Is(err, ErrColumnMismatch) {
		t.Errorf("Append error = %v, want ErrColumnMismatch", err)
	}
}

func TestFromRecords(t *testing.T) {
	d, err := FromRecords([][]string{
		{"Description", "Amount"},
		{"Salary", "5000.00"},
		{"Total", "5000.00"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	if got := d.RowCount(); got != 2 {
		t.Errorf("RowCount = %d, want 2", got)
	}
	if got := d.Cells["Description"][1]; got != "Total" {
		t.Errorf("Cells[Description][1] = %q, want Total", got)
	}
}

func TestFromRecordsErrors(t *testing.T) {
	tests := []struct {
		name    string
		records [][]string
		want    error
	}{
		{"no records", nil, ErrNoHeader},
		{"ragged row", [][]string{{"A", "B"}, {"1"}}, ErrColumnMismatch},
		{"empty column name", [][]string{{"A", ""}}, ErrEmptyColumnName},
		{"duplicate column", [][]string{{"A", "A"}}, ErrDuplicateColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecords(tt.records)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromRecords error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRowsIncludesHeader(t *testing.T) {
	d := New("Description", "Amount")
	if err := d.Append("Salary", "5000.00"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	want := [][]string{
		{"Description", "Amount"},
		{"Salary", "5000.00"},
	}
	if got := d.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows = %v, want %v", got, want)
	}
}

func TestColumnIndex(t *testing.T) {
	d := New("Description", "Amount")
	if got := d.ColumnIndex("Amount"); got != 1 {
		t.Errorf("ColumnIndex(Amount) = %d, want 1", got)
	}
	if got := d.ColumnIndex("Missing"); got != -1 {
		t.Errorf("ColumnIndex(Missing) = %d, want -1", got)
	}
}
