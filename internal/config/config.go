package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reportFmt/internal/logger"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Paths   PathsConfig   `toml:"paths"`
	Format  FormatConfig  `toml:"format"`
	Suggest SuggestConfig `toml:"suggest"`
}

type PathsConfig struct {
	InputDirectory  string `toml:"input_directory"`
	OutputDirectory string `toml:"output_directory"`
	DefaultFile     string `toml:"default_file"`
	DefaultSheet    string `toml:"default_sheet"`
}

type FormatConfig struct {
	TableStyle      string            `toml:"table_style"`
	CurrencyFormat  string            `toml:"currency_format"`
	HighlightFill   string            `toml:"highlight_fill"`
	HighlightBold   bool              `toml:"highlight_bold"`
	WidthPadding    float64           `toml:"width_padding"`
	WidthScale      float64           `toml:"width_scale"`
	MaxSaveAttempts int               `toml:"max_save_attempts"`
	Columns         map[string]string `toml:"columns"`
}

type SuggestConfig struct {
	Model          string  `toml:"model"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	SampleRows     int     `toml:"sample_rows"`
	MinConfidence  float64 `toml:"min_confidence"`
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create configs directory if it doesn't exist
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %v", err)
		}

		// Create default config file
		defaultConfig := &Config{
			Paths: PathsConfig{
				InputDirectory:  "data/input",
				OutputDirectory: "data/output",
				DefaultFile:     "Sample.xlsx",
				DefaultSheet:    "Sample_Sheet",
			},
			Format: FormatConfig{
				TableStyle:      "TableStyleMedium9",
				CurrencyFormat:  `"$"#,##0.00_-`,
				HighlightFill:   "b7aea5",
				HighlightBold:   true,
				WidthPadding:    2,
				WidthScale:      1.4,
				MaxSaveAttempts: 3,
				Columns: map[string]string{
					"Amount":       "currency",
					"Payment_Date": "date",
				},
			},
			Suggest: SuggestConfig{
				Model:          "gemini-2.0-flash-exp",
				TimeoutSeconds: 60,
				SampleRows:     20,
				MinConfidence:  0.8,
			},
		}

		err = SaveConfig(configPath, defaultConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	// Load existing config
	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}

	// Set defaults if missing
	if config.Paths.InputDirectory == "" {
		config.Paths.InputDirectory = "data/input"
	}
	if config.Paths.OutputDirectory == "" {
		config.Paths.OutputDirectory = "data/output"
	}
	if config.Paths.DefaultFile == "" {
		config.Paths.DefaultFile = "Sample.xlsx"
	}
	if config.Paths.DefaultSheet == "" {
		config.Paths.DefaultSheet = "Sample_Sheet"
	}
	if config.Format.TableStyle == "" {
		config.Format.TableStyle = "TableStyleMedium9"
	}
	if config.Format.CurrencyFormat == "" {
		config.Format.CurrencyFormat = `"$"#,##0.00_-`
	}
	if config.Format.HighlightFill == "" {
		config.Format.HighlightFill = "b7aea5"
	}
	if config.Format.WidthPadding == 0 {
		config.Format.WidthPadding = 2
	}
	if config.Format.WidthScale == 0 {
		config.Format.WidthScale = 1.4
	}
	if config.Format.MaxSaveAttempts == 0 {
		config.Format.MaxSaveAttempts = 3
	}
	if config.Suggest.Model == "" {
		config.Suggest.Model = "gemini-2.0-flash-exp"
	}
	if config.Suggest.TimeoutSeconds == 0 {
		config.Suggest.TimeoutSeconds = 60
	}
	if config.Suggest.SampleRows == 0 {
		config.Suggest.SampleRows = 20
	}
	if config.Suggest.MinConfidence == 0 {
		config.Suggest.MinConfidence = 0.8
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
