package excel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reportFmt/internal/dataset"

	"github.com/xuri/excelize/v2"
)

// TableStyle carries the presentation settings for a written table.
// Callers pass it explicitly so two writers can format differently
// within one process.
type TableStyle struct {
	Name           string
	RowStripes     bool
	ColumnStripes  bool
	FirstColumn    bool
	LastColumn     bool
	CurrencyFormat string
	WidthPadding   float64
	WidthScale     float64
}

// DefaultTableStyle returns the banded medium style used for financial
// reports.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Name:           "TableStyleMedium9",
		RowStripes:     true,
		ColumnStripes:  true,
		FirstColumn:    false,
		LastColumn:     false,
		CurrencyFormat: `"$"#,##0.00_-`,
		WidthPadding:   2,
		WidthScale:     1.4,
	}
}

// TableWriter populates a worksheet with a formatted dataset: header
// plus data rows, currency number formats, a banded table overlay named
// after the worksheet, and auto-sized columns.
type TableWriter struct {
	editor *Editor
	style  TableStyle
}

func NewTableWriter(editor *Editor, style TableStyle) *TableWriter {
	return &TableWriter{editor: editor, style: style}
}

// Populate formats the dataset and writes it to the sheet. The caller's
// dataset is left untouched; saving the workbook stays with the caller.
func (w *TableWriter) Populate(sheet string, ds *dataset.Dataset, directives dataset.Directives) error {
	formatted, err := dataset.Format(ds, directives)
	if err != nil {
		return err
	}

	currency := currencyColumns(formatted, directives)

	for i, row := range formatted.Rows() {
		anchor, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to resolve row anchor: %v", err)
		}
		values := typedRow(row, i > 0, currency)
		if err := w.editor.SetSheetRow(sheet, anchor, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %v", i+1, err)
		}
	}

	if err := w.applyCurrencyFormat(sheet, formatted, currency); err != nil {
		return err
	}
	if err := w.overlayTable(sheet, formatted); err != nil {
		return err
	}
	return w.autoSizeColumns(sheet, formatted)
}

// currencyColumns resolves currency directives to column indexes in the
// formatted dataset.
func currencyColumns(ds *dataset.Dataset, directives dataset.Directives) map[int]bool {
	columns := make(map[int]bool)
	for col, kind := range directives {
		if kind != dataset.KindCurrency {
			continue
		}
		if idx := ds.ColumnIndex(dataset.TitleCase(col)); idx >= 0 {
			columns[idx] = true
		}
	}
	return columns
}

// typedRow converts one row for writing. Currency cells in data rows are
// written as numbers so the number format can take effect; everything
// else stays text.
func typedRow(row []string, isData bool, currency map[int]bool) []interface{} {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		if isData && currency[i] && strings.TrimSpace(cell) != "" {
			if amount, err := dataset.ParseAmount(cell); err == nil {
				values[i] = amount
				continue
			}
		}
		values[i] = cell
	}
	return values
}

// applyCurrencyFormat styles every written cell of each currency column,
// header included.
func (w *TableWriter) applyCurrencyFormat(sheet string, ds *dataset.Dataset, currency map[int]bool) error {
	if len(currency) == 0 {
		return nil
	}
	numFmt := w.style.CurrencyFormat
	styleID, err := w.editor.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("failed to create currency style: %v", err)
	}
	lastRow := ds.RowCount() + 1
	for idx := range currency {
		col, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %v", err)
		}
		if err := w.editor.SetCellStyle(sheet, fmt.Sprintf("%s1", col), fmt.Sprintf("%s%d", col, lastRow), styleID); err != nil {
			return fmt.Errorf("failed to apply currency format to column %s: %v", col, err)
		}
	}
	return nil
}

// overlayTable adds the banded table across the full written range. The
// table takes the worksheet name as its display name; excelize rejects
// names that are not valid table identifiers and that error is passed
// through.
func (w *TableWriter) overlayTable(sheet string, ds *dataset.Dataset) error {
	lastCell, err := excelize.CoordinatesToCellName(len(ds.Columns), ds.RowCount()+1)
	if err != nil {
		return fmt.Errorf("failed to resolve table range: %v", err)
	}
	rowStripes := w.style.RowStripes
	table := &excelize.Table{
		Range:             fmt.Sprintf("A1:%s", lastCell),
		Name:              sheet,
		StyleName:         w.style.Name,
		ShowFirstColumn:   w.style.FirstColumn,
		ShowLastColumn:    w.style.LastColumn,
		ShowRowStripes:    &rowStripes,
		ShowColumnStripes: w.style.ColumnStripes,
	}
	if err := w.editor.AddTable(sheet, table); err != nil {
		return fmt.Errorf("failed to add table %s: %v", sheet, err)
	}
	return nil
}

// autoSizeColumns widens each column to fit its longest cell. Cells with
// no measurable content are skipped rather than counted as zero width.
func (w *TableWriter) autoSizeColumns(sheet string, ds *dataset.Dataset) error {
	for i, name := range ds.Columns {
		maxLen := utf8.RuneCountInString(name)
		for _, cell := range ds.Cells[name] {
			if cell == "" {
				continue
			}
			if n := utf8.RuneCountInString(cell); n > maxLen {
				maxLen = n
			}
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %v", err)
		}
		width := (float64(maxLen) + w.style.WidthPadding) * w.style.WidthScale
		if err := w.editor.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set width for column %s: %v", col, err)
		}
	}
	return nil
}
