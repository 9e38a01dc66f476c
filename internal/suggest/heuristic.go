package suggest

import (
	"strings"

	"reportFmt/internal/dataset"
)

const defaultSampleRows = 20

// moneyHints are column name fragments that mark a numeric column as a
// currency amount.
var moneyHints = []string{
	"amount", "price", "cost", "total", "balance",
	"fee", "salary", "payment", "revenue", "expense", "spend",
}

// DetectDirectives infers format directives from column names and a
// sample of cell values. A column counts as a date column when every
// sampled cell parses as a date, and as a currency column when every
// sampled cell is numeric and the name hints at money. Columns with no
// non-empty cells are left alone.
func DetectDirectives(ds *dataset.Dataset, sampleRows int) dataset.Directives {
	directives := make(dataset.Directives)
	for _, col := range ds.Columns {
		values := sampleValues(ds, col, sampleRows)
		if len(values) == 0 {
			continue
		}
		if allDates(values) {
			directives[col] = dataset.KindDate
			continue
		}
		if allAmounts(values) && hasMoneyHint(col) {
			directives[col] = dataset.KindCurrency
		}
	}
	return directives
}

// sampleValues returns up to limit non-empty cells from a column.
func sampleValues(ds *dataset.Dataset, column string, limit int) []string {
	if limit <= 0 {
		limit = defaultSampleRows
	}
	var values []string
	for _, cell := range ds.Cells[column] {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		values = append(values, cell)
		if len(values) >= limit {
			break
		}
	}
	return values
}

func allDates(values []string) bool {
	for _, v := range values {
		if _, err := dataset.ParseDate(v); err != nil {
			return false
		}
	}
	return true
}

func allAmounts(values []string) bool {
	for _, v := range values {
		if _, err := dataset.ParseAmount(v); err != nil {
			return false
		}
	}
	return true
}

func hasMoneyHint(column string) bool {
	name := strings.ToLower(column)
	for _, hint := range moneyHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
