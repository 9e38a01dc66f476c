package excel

import (
	"fmt"

	"reportFmt/internal/dataset"
)

// ReadDataset loads the first sheet of an existing workbook into a
// dataset. The first row is taken as the header row.
func ReadDataset(path string) (*dataset.Dataset, error) {
	editor, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	sheets := editor.GetSheetNames()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	rows, err := editor.GetAllRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty: %w", sheets[0], dataset.ErrNoHeader)
	}

	// GetRows trims trailing empty cells, so pad short records back to
	// the header width before shaping the dataset. Rows wider than the
	// header are a shape mismatch.
	width := len(rows[0])
	records := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > width {
			return nil, fmt.Errorf("row %d: %w: got %d cells for %d columns", i+1, dataset.ErrColumnMismatch, len(row), width)
		}
		record := make([]string, width)
		copy(record, row)
		records[i] = record
	}
	return dataset.FromRecords(records)
}
