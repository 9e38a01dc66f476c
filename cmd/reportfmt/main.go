package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reportFmt/internal/config"
	"reportFmt/internal/dataset"
	"reportFmt/internal/excel"
	"reportFmt/internal/logger"
	"reportFmt/internal/suggest"
	"sort"
	"strings"
	"time"
)

const configPath = "configs/config.toml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "format":
		if len(os.Args) < 3 {
			fmt.Println("Error: format command requires input file path")
			fmt.Println("Usage: reportfmt format <input_file> [output_file]")
			return
		}
		outputPath := ""
		if len(os.Args) >= 4 {
			outputPath = os.Args[3]
		}
		runFormat(cfg, os.Args[2], outputPath)
	case "format-all":
		runFormatAll(cfg)
	case "suggest":
		if len(os.Args) < 3 {
			fmt.Println("Error: suggest command requires input file path")
			fmt.Println("Usage: reportfmt suggest <input_file>")
			return
		}
		runSuggest(cfg, os.Args[2])
	case "demo":
		runDemo(cfg)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func runFormat(cfg *config.Config, inputPath, outputPath string) {
	logger.Info("Starting format operation", "input_file", inputPath)

	ds, err := loadDataset(inputPath)
	if err != nil {
		logger.Error("Format operation failed", "error", err)
		fmt.Printf("Error loading input file: %v\n", err)
		os.Exit(1)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(cfg, inputPath)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("Failed to create output directory", "error", err)
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	highlighted, err := writeFormatted(cfg, ds, outputPath)
	if err != nil {
		logger.Error("Format operation failed", "error", err)
		fmt.Printf("Error formatting file: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Format operation completed", "output_file", outputPath, "totals_rows", highlighted)
	fmt.Printf("✓ Formatted %s -> %s\n", filepath.Base(inputPath), outputPath)
	if highlighted > 0 {
		fmt.Printf("   Highlighted %d totals row(s)\n", highlighted)
	}
}

func runFormatAll(cfg *config.Config) {
	logger.Info("Starting format-all operation", "input_directory", cfg.Paths.InputDirectory)

	inputFiles, err := excel.FindInputFiles(cfg.Paths.InputDirectory)
	if err != nil {
		logger.Error("Failed to scan input directory", "error", err)
		fmt.Printf("Error scanning input directory: %v\n", err)
		os.Exit(1)
	}

	if len(inputFiles) == 0 {
		fmt.Printf("No input files found in directory: %s\n", cfg.Paths.InputDirectory)
		return
	}

	logger.Info("Found files to format", "file_count", len(inputFiles))

	// Create results directory
	resultsDir := filepath.Join(cfg.Paths.OutputDirectory, "results")
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		logger.Error("Failed to create results directory", "error", err)
		fmt.Printf("Error creating results directory: %v\n", err)
		os.Exit(1)
	}

	// Track statistics
	successCount := 0
	errorCount := 0

	for i, inputFile := range inputFiles {
		fileName := filepath.Base(inputFile)
		fmt.Printf("\n[%d/%d] Processing: %s\n", i+1, len(inputFiles), fileName)

		logger.Info("Processing file", "file", fileName, "progress", fmt.Sprintf("%d/%d", i+1, len(inputFiles)))

		ds, err := loadDataset(inputFile)
		if err != nil {
			logger.Error("Failed to load file", "file", fileName, "error", err)
			fmt.Printf("❌ Error loading file: %v\n", err)
			errorCount++
			continue
		}

		base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
		outputPath := filepath.Join(resultsDir, base+".xlsx")

		if _, err := writeFormatted(cfg, ds, outputPath); err != nil {
			logger.Error("Failed to format file", "file", fileName, "error", err)
			fmt.Printf("❌ Error formatting file: %v\n", err)
			errorCount++
		} else {
			logger.Info("Successfully formatted file", "file", fileName)
			fmt.Printf("✓ Successfully formatted\n")
			successCount++
		}
	}

	// Print summary
	logger.Info("Format-all operation completed",
		"success_count", successCount,
		"error_count", errorCount)

	fmt.Printf("\n========================================\n")
	fmt.Printf("Formatting complete!\n")
	fmt.Printf("✓ Success: %d files\n", successCount)
	if errorCount > 0 {
		fmt.Printf("❌ Errors: %d files\n", errorCount)
	}
	fmt.Printf("Results saved to: %s\n", resultsDir)
}

func runSuggest(cfg *config.Config, inputPath string) {
	logger.Info("Starting suggest operation", "input_file", inputPath)

	ds, err := loadDataset(inputPath)
	if err != nil {
		logger.Error("Suggest operation failed", "error", err)
		fmt.Printf("Error loading input file: %v\n", err)
		os.Exit(1)
	}

	directives := suggest.DetectDirectives(ds, cfg.Suggest.SampleRows)

	apiKey := suggest.GetGeminiAPIKey()
	if apiKey == "" {
		fmt.Println("GEMINI_API_KEY not set, using local heuristics only")
	} else {
		suggester, err := suggest.NewSuggester(apiKey, suggestOptionsFromConfig(cfg))
		if err != nil {
			logger.Error("Failed to initialize suggester", "error", err)
			fmt.Printf("AI suggester unavailable, using local heuristics: %v\n", err)
		} else {
			defer suggester.Close()
			refined, err := suggester.SuggestDirectives(ds)
			if err != nil {
				logger.Error("AI suggestion failed", "error", err)
				fmt.Printf("AI suggestion failed, using local heuristics: %v\n", err)
			} else {
				directives = refined
			}
		}
	}

	if len(directives) == 0 {
		fmt.Println("No format directives suggested")
		return
	}

	columns := make([]string, 0, len(directives))
	for col := range directives {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	fmt.Printf("\nSuggested format directives for %s:\n", filepath.Base(inputPath))
	for _, col := range columns {
		fmt.Printf("   %s: %s\n", col, directives[col])
	}

	if cfg.Format.Columns == nil {
		cfg.Format.Columns = make(map[string]string, len(directives))
	}
	for _, col := range columns {
		cfg.Format.Columns[col] = string(directives[col])
	}
	if err := config.SaveConfig(configPath, cfg); err != nil {
		logger.Error("Failed to save config", "error", err)
		fmt.Printf("Error saving suggestions to config: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Suggest operation completed", "directive_count", len(directives))
	fmt.Printf("✓ Suggestions saved to %s\n", configPath)
}

func runDemo(cfg *config.Config) {
	logger.Info("Starting demo operation", "output_file", cfg.Paths.DefaultFile)

	ds, err := dataset.FromRecords([][]string{
		{"description", "amount", "payment_date"},
		{"Salary", "5000.00", "2023-10-13"},
		{"Groceries", "-150.50", "2023-10-14"},
		{"Rent", "-1200.00", "2023-10-15"},
		{"Total", "3649.50", ""},
	})
	if err != nil {
		logger.Error("Demo operation failed", "error", err)
		fmt.Printf("Error building demo data: %v\n", err)
		os.Exit(1)
	}

	highlighted, err := writeFormatted(cfg, ds, cfg.Paths.DefaultFile)
	if err != nil {
		logger.Error("Demo operation failed", "error", err)
		fmt.Printf("Error writing demo workbook: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Demo operation completed", "totals_rows", highlighted)
	fmt.Printf("✓ Demo workbook written to %s\n", cfg.Paths.DefaultFile)
}

// writeFormatted runs the full formatting pipeline on one dataset:
// populate the default sheet, highlight totals rows, save with the
// locked-file retry prompt. It returns the number of highlighted rows.
func writeFormatted(cfg *config.Config, ds *dataset.Dataset, outputPath string) (int, error) {
	editor := excel.CreateNewFile()
	defer editor.Close()

	sheet := cfg.Paths.DefaultSheet
	if err := editor.UseSheet(sheet); err != nil {
		return 0, err
	}

	directives := applicableDirectives(ds, directivesFromConfig(cfg))

	writer := excel.NewTableWriter(editor, tableStyleFromConfig(cfg))
	if err := writer.Populate(sheet, ds, directives); err != nil {
		return 0, err
	}

	highlighter := excel.NewTotalsHighlighter(editor, highlightStyleFromConfig(cfg))
	highlighted, err := highlighter.Highlight(sheet)
	if err != nil {
		return highlighted, err
	}

	opts := excel.SaveOptions{MaxAttempts: cfg.Format.MaxSaveAttempts}
	if err := excel.SaveWithRetry(editor, outputPath, opts); err != nil {
		return highlighted, err
	}
	return highlighted, nil
}

// loadDataset reads an input report by file type.
func loadDataset(path string) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return dataset.FromCSV(path)
	case ".xlsx":
		return excel.ReadDataset(path)
	default:
		return nil, fmt.Errorf("unsupported input file type: %s", filepath.Ext(path))
	}
}

func defaultOutputPath(cfg *config.Config, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(cfg.Paths.OutputDirectory, base+".xlsx")
}

// directivesFromConfig parses the configured column kinds, dropping
// entries with kinds the formatter does not know.
func directivesFromConfig(cfg *config.Config) dataset.Directives {
	directives := make(dataset.Directives, len(cfg.Format.Columns))
	for col, kindStr := range cfg.Format.Columns {
		kind, err := dataset.ParseKind(kindStr)
		if err != nil {
			logger.Warn("Ignoring configured column with unknown kind", "column", col, "kind", kindStr)
			continue
		}
		directives[col] = kind
	}
	return directives
}

// applicableDirectives keeps only directives whose column exists in the
// dataset, so one shared config can cover reports with different shapes.
func applicableDirectives(ds *dataset.Dataset, directives dataset.Directives) dataset.Directives {
	present := make(map[string]bool, len(ds.Columns))
	for _, col := range ds.Columns {
		present[dataset.TitleCase(col)] = true
	}
	applicable := make(dataset.Directives, len(directives))
	for col, kind := range directives {
		if !present[dataset.TitleCase(col)] {
			logger.Debug("Skipping directive for absent column", "column", col)
			continue
		}
		applicable[col] = kind
	}
	return applicable
}

func tableStyleFromConfig(cfg *config.Config) excel.TableStyle {
	style := excel.DefaultTableStyle()
	if cfg.Format.TableStyle != "" {
		style.Name = cfg.Format.TableStyle
	}
	if cfg.Format.CurrencyFormat != "" {
		style.CurrencyFormat = cfg.Format.CurrencyFormat
	}
	if cfg.Format.WidthPadding > 0 {
		style.WidthPadding = cfg.Format.WidthPadding
	}
	if cfg.Format.WidthScale > 0 {
		style.WidthScale = cfg.Format.WidthScale
	}
	return style
}

func highlightStyleFromConfig(cfg *config.Config) excel.HighlightStyle {
	style := excel.DefaultHighlightStyle()
	if cfg.Format.HighlightFill != "" {
		style.FillColor = cfg.Format.HighlightFill
	}
	style.Bold = cfg.Format.HighlightBold
	return style
}

func suggestOptionsFromConfig(cfg *config.Config) suggest.Options {
	opts := suggest.DefaultOptions()
	if cfg.Suggest.Model != "" {
		opts.Model = cfg.Suggest.Model
	}
	if cfg.Suggest.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.Suggest.TimeoutSeconds) * time.Second
	}
	if cfg.Suggest.SampleRows > 0 {
		opts.SampleRows = cfg.Suggest.SampleRows
	}
	if cfg.Suggest.MinConfidence > 0 {
		opts.MinConfidence = cfg.Suggest.MinConfidence
	}
	return opts
}

func printUsage() {
	fmt.Println("ReportFmt - Financial Report Formatting Tool")
	fmt.Println("\nUsage:")
	fmt.Println("  reportfmt format <input_file> [output_file]  - Format a single report")
	fmt.Println("  reportfmt format-all                         - Format every report in the input directory")
	fmt.Println("  reportfmt suggest <input_file>               - Suggest format directives for a report")
	fmt.Println("  reportfmt demo                               - Write the sample report workbook")
}
