package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file missing: %v", err)
	}

	if cfg.Paths.DefaultFile != "Sample.xlsx" {
		t.Errorf("DefaultFile = %q, want Sample.xlsx", cfg.Paths.DefaultFile)
	}
	if cfg.Paths.DefaultSheet != "Sample_Sheet" {
		t.Errorf("DefaultSheet = %q, want Sample_Sheet", cfg.Paths.DefaultSheet)
	}
	if cfg.Format.TableStyle != "TableStyleMedium9" {
		t.Errorf("TableStyle = %q, want TableStyleMedium9", cfg.Format.TableStyle)
	}
	if cfg.Format.CurrencyFormat != `"$"#,##0.00_-` {
		t.Errorf("CurrencyFormat = %q", cfg.Format.CurrencyFormat)
	}
	if !cfg.Format.HighlightBold {
		t.Error("HighlightBold = false, want true")
	}
	if cfg.Format.Columns["Payment_Date"] != "date" {
		t.Errorf("Columns[Payment_Date] = %q, want date", cfg.Format.Columns["Payment_Date"])
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	original := &Config{
		Paths: PathsConfig{
			InputDirectory:  "reports/in",
			OutputDirectory: "reports/out",
			DefaultFile:     "Monthly.xlsx",
			DefaultSheet:    "Monthly",
		},
		Format: FormatConfig{
			TableStyle:      "TableStyleLight1",
			CurrencyFormat:  `"$"#,##0.00_-`,
			HighlightFill:   "ffcc00",
			HighlightBold:   true,
			WidthPadding:    3,
			WidthScale:      1.2,
			MaxSaveAttempts: 5,
			Columns: map[string]string{
				"Amount": "currency",
				"Due":    "date",
			},
		},
		Suggest: SuggestConfig{
			Model:          "gemini-2.0-flash-exp",
			TimeoutSeconds: 30,
			SampleRows:     10,
			MinConfidence:  0.9,
		},
	}
	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Paths.DefaultFile != "Monthly.xlsx" {
		t.Errorf("DefaultFile = %q, want Monthly.xlsx", loaded.Paths.DefaultFile)
	}
	if loaded.Format.WidthScale != 1.2 {
		t.Errorf("WidthScale = %v, want 1.2", loaded.Format.WidthScale)
	}
	if loaded.Format.Columns["Due"] != "date" {
		t.Errorf("Columns[Due] = %q, want date", loaded.Format.Columns["Due"])
	}
	if loaded.Suggest.MinConfidence != 0.9 {
		t.Errorf("MinConfidence = %v, want 0.9", loaded.Suggest.MinConfidence)
	}
}

func TestLoadConfigFillsMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[paths]\ninput_directory = \"incoming\"\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Paths.InputDirectory != "incoming" {
		t.Errorf("InputDirectory = %q, want incoming", cfg.Paths.InputDirectory)
	}
	if cfg.Paths.OutputDirectory != "data/output" {
		t.Errorf("OutputDirectory = %q, want data/output", cfg.Paths.OutputDirectory)
	}
	if cfg.Format.WidthScale != 1.4 {
		t.Errorf("WidthScale = %v, want 1.4", cfg.Format.WidthScale)
	}
	if cfg.Suggest.MinConfidence != 0.8 {
		t.Errorf("MinConfidence = %v, want 0.8", cfg.Suggest.MinConfidence)
	}
}
