package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// totalsMarker is the text that marks a summary row.
const totalsMarker = "Total"

// HighlightStyle carries the presentation applied to totals rows.
type HighlightStyle struct {
	FillColor string
	Bold      bool
}

// DefaultHighlightStyle returns the muted brown fill used for totals.
func DefaultHighlightStyle() HighlightStyle {
	return HighlightStyle{
		FillColor: "b7aea5",
		Bold:      true,
	}
}

// TotalsHighlighter marks summary rows on an already populated sheet.
type TotalsHighlighter struct {
	editor *Editor
	style  HighlightStyle
}

func NewTotalsHighlighter(editor *Editor, style HighlightStyle) *TotalsHighlighter {
	return &TotalsHighlighter{editor: editor, style: style}
}

// Highlight bolds and fills every data row whose first column contains
// the totals marker anywhere in its text, so "Grand Total" and "Totals"
// both match. The header row is never touched. It returns the number of
// rows highlighted.
func (h *TotalsHighlighter) Highlight(sheet string) (int, error) {
	rows, err := h.editor.GetAllRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %v", err)
	}
	if len(rows) < 2 || len(rows[0]) == 0 {
		return 0, nil
	}
	width := len(rows[0])

	// Existing cell styles are extended rather than replaced so number
	// formats on highlighted cells survive.
	composed := make(map[int]int)

	count := 0
	for i, row := range rows[1:] {
		if len(row) == 0 || !strings.Contains(row[0], totalsMarker) {
			continue
		}
		rowNum := i + 2
		for col := 1; col <= width; col++ {
			cell, err := excelize.CoordinatesToCellName(col, rowNum)
			if err != nil {
				return count, fmt.Errorf("failed to resolve cell name: %v", err)
			}
			base, err := h.editor.GetCellStyle(sheet, cell)
			if err != nil {
				return count, fmt.Errorf("failed to read style of %s: %v", cell, err)
			}
			styleID, ok := composed[base]
			if !ok {
				styleID, err = h.composeStyle(base)
				if err != nil {
					return count, err
				}
				composed[base] = styleID
			}
			if err := h.editor.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return count, fmt.Errorf("failed to highlight %s: %v", cell, err)
			}
		}
		count++
	}
	return count, nil
}

// composeStyle builds the highlight style on top of an existing style ID.
func (h *TotalsHighlighter) composeStyle(base int) (int, error) {
	style := &excelize.Style{}
	if base != 0 {
		existing, err := h.editor.GetStyle(base)
		if err != nil {
			return 0, fmt.Errorf("failed to load style %d: %v", base, err)
		}
		style = existing
	}

	if style.Font == nil {
		style.Font = &excelize.Font{}
	}
	style.Font.Bold = h.style.Bold
	style.Fill = excelize.Fill{
		Type:    "pattern",
		Color:   []string{h.style.FillColor},
		Pattern: 1,
	}

	styleID, err := h.editor.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("failed to create highlight style: %v", err)
	}
	return styleID, nil
}
