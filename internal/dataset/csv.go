package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// FromCSV loads a dataset from a CSV file. The first record is the
// header row, and every record must have the same number of fields.
func FromCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file %s: %v", path, err)
	}
	return FromRecords(records)
}
