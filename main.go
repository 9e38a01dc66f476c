package main

import (
	"errors"
	"fmt"
	"log"
	"reportFmt/internal/dataset"
	"reportFmt/internal/excel"
)

func main() {

	outputFile := "Sample.xlsx"
	sheetName := "Sample_Sheet"

	ds, err := dataset.FromRecords([][]string{
		{"description", "amount", "payment_date"},
		{"Salary", "5000.00", "2023-10-13"},
		{"Groceries", "-150.50", "2023-10-14"},
		{"Rent", "-1200.00", "2023-10-15"},
		{"Total", "3649.50", ""},
	})
	if err != nil {
		log.Fatal("Error building sample data:", err)
	}

	directives := dataset.Directives{
		"amount":       dataset.KindCurrency,
		"payment_date": dataset.KindDate,
	}

	editor := excel.CreateNewFile()
	defer editor.Close()

	if err := editor.UseSheet(sheetName); err != nil {
		log.Fatal("Error preparing worksheet:", err)
	}

	writer := excel.NewTableWriter(editor, excel.DefaultTableStyle())
	if err := writer.Populate(sheetName, ds, directives); err != nil {
		log.Fatal("Error populating worksheet:", err)
	}

	highlighter := excel.NewTotalsHighlighter(editor, excel.DefaultHighlightStyle())
	if _, err := highlighter.Highlight(sheetName); err != nil {
		log.Fatal("Error highlighting totals:", err)
	}

	err = excel.SaveWithRetry(editor, outputFile, excel.SaveOptions{})
	if err != nil {
		if errors.Is(err, excel.ErrNotSaved) {
			return
		}
		log.Fatal("Error saving workbook:", err)
	}

	fmt.Printf("✓ Check '%s' to see the results\n", outputFile)
}
