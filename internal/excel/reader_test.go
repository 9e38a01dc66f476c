package excel

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"reportFmt/internal/dataset"
)

func TestReadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")

	editor := CreateNewFile()
	rows := [][]interface{}{
		{"Description", "Amount"},
		{"Salary", "5000.00"},
		{"Total", "5000.00"},
	}
	for i, row := range rows {
		values := row
		if err := editor.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+1), &values); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := editor.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := editor.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ds, err := ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	if want := []string{"Description", "Amount"}; !reflect.DeepEqual(ds.Columns, want) {
		t.Errorf("Columns = %v, want %v", ds.Columns, want)
	}
	if got := ds.RowCount(); got != 2 {
		t.Errorf("RowCount = %d, want 2", got)
	}
	if got := ds.Cells["Description"][1]; got != "Total" {
		t.Errorf("Cells[Description][1] = %q, want Total", got)
	}
}

func TestReadDatasetPadsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.xlsx")

	editor := CreateNewFile()
	header := []interface{}{"Description", "Amount", "Payment_Date"}
	if err := editor.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	// Only the first cell of the data row is set, the rest stay blank.
	if err := editor.SetCellValue("Sheet1", "A2", "Total"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := editor.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := editor.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ds, err := ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	if got := ds.Cells["Amount"]; !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Cells[Amount] = %v, want one blank cell", got)
	}
}

func TestReadDatasetRejectsOverWideRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.xlsx")

	editor := CreateNewFile()
	header := []interface{}{"Description", "Amount"}
	if err := editor.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	// The data row carries one more cell than the header.
	row := []interface{}{"Salary", "5000.00", "extra"}
	if err := editor.SetSheetRow("Sheet1", "A2", &row); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	if err := editor.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := editor.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	_, err := ReadDataset(path)
	if !errors.Is(err, dataset.ErrColumnMismatch) {
		t.Errorf("ReadDataset error = %v, want ErrColumnMismatch", err)
	}
}

func TestReadDatasetMissingFile(t *testing.T) {
	if _, err := ReadDataset(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("ReadDataset accepted a missing file")
	}
}
