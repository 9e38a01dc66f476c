package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the worksheet excelize creates with every new workbook.
const defaultSheet = "Sheet1"

type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	file := excelize.NewFile()
	return &Editor{
		file:     file,
		filepath: "",
	}
}

// UseSheet makes sure a worksheet with the given name exists and is the
// active sheet. The empty default sheet left over from workbook creation
// is dropped once another sheet takes its place.
func (e *Editor) UseSheet(name string) error {
	idx, err := e.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %s: %v", name, err)
	}
	if idx < 0 {
		if _, err := e.file.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %v", name, err)
		}
	}

	if name != defaultSheet {
		if di, _ := e.file.GetSheetIndex(defaultSheet); di >= 0 {
			rows, err := e.file.GetRows(defaultSheet)
			if err == nil && len(rows) == 0 {
				if err := e.file.DeleteSheet(defaultSheet); err != nil {
					return fmt.Errorf("failed to drop default sheet: %v", err)
				}
			}
		}
	}

	idx, err = e.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return fmt.Errorf("failed to activate sheet %s: %v", name, err)
	}
	e.file.SetActiveSheet(idx)
	return nil
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// GetCellValue returns the value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

// SetSheetRow writes a whole row starting at the given cell
func (e *Editor) SetSheetRow(sheet, cell string, values *[]interface{}) error {
	return e.file.SetSheetRow(sheet, cell, values)
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// NewStyle registers a style definition and returns its ID
func (e *Editor) NewStyle(style *excelize.Style) (int, error) {
	return e.file.NewStyle(style)
}

// SetCellStyle applies a style to the given cell range
func (e *Editor) SetCellStyle(sheet, topLeft, bottomRight string, styleID int) error {
	return e.file.SetCellStyle(sheet, topLeft, bottomRight, styleID)
}

// GetCellStyle returns the style ID of a specific cell
func (e *Editor) GetCellStyle(sheet, cell string) (int, error) {
	return e.file.GetCellStyle(sheet, cell)
}

// GetStyle returns the style definition behind a style ID
func (e *Editor) GetStyle(styleID int) (*excelize.Style, error) {
	return e.file.GetStyle(styleID)
}

// SetColWidth sets the width of a column range
func (e *Editor) SetColWidth(sheet, startCol, endCol string, width float64) error {
	return e.file.SetColWidth(sheet, startCol, endCol, width)
}

// GetColWidth returns the width of a column
func (e *Editor) GetColWidth(sheet, col string) (float64, error) {
	return e.file.GetColWidth(sheet, col)
}

// AddTable overlays a table on the given sheet
func (e *Editor) AddTable(sheet string, table *excelize.Table) error {
	return e.file.AddTable(sheet, table)
}

// GetTables returns the tables defined on a sheet
func (e *Editor) GetTables(sheet string) ([]excelize.Table, error) {
	return e.file.GetTables(sheet)
}

// Save saves the Excel file to the original filepath
func (e *Editor) Save() error {
	if e.filepath == "" {
		return fmt.Errorf("no filepath specified, use SaveAs instead")
	}
	return e.file.SaveAs(e.filepath)
}

// SaveAs saves the Excel file with a new name
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}
