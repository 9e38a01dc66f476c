package suggest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"reportFmt/internal/dataset"
	"reportFmt/internal/logger"
)

// Options controls the Gemini-backed directive suggester.
type Options struct {
	Model         string
	Timeout       time.Duration
	SampleRows    int
	MinConfidence float64
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Model:         "gemini-2.0-flash-exp",
		Timeout:       60 * time.Second,
		SampleRows:    defaultSampleRows,
		MinConfidence: 0.8,
	}
}

// Suggester asks Gemini to classify columns that the local heuristics
// could not decide on.
type Suggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
	opts   Options
}

// NewSuggester creates a new Gemini-backed suggester.
func NewSuggester(apiKey string, opts Options) (*Suggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultOptions().Model
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	if opts.SampleRows <= 0 {
		opts.SampleRows = defaultSampleRows
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = DefaultOptions().MinConfidence
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Error("Failed to create Gemini client", "error", err)
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(0.1) // Low temperature for consistent results

	logger.Info("Suggester initialized", "model", opts.Model, "min_confidence", opts.MinConfidence)

	return &Suggester{
		client: client,
		model:  model,
		opts:   opts,
	}, nil
}

// Close cleans up the suggester resources.
func (s *Suggester) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// SuggestDirectives combines the local heuristics with Gemini's column
// classification. Heuristic results win on conflict, the model only
// adds columns the heuristics left undecided.
func (s *Suggester) SuggestDirectives(ds *dataset.Dataset) (dataset.Directives, error) {
	baseline := DetectDirectives(ds, s.opts.SampleRows)

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.Timeout)
	defer cancel()

	prompt := s.buildSuggestPrompt(ds)
	logger.Info("Requesting directive suggestions", "columns", len(ds.Columns), "model", s.opts.Model)

	type apiResult struct {
		resp *genai.GenerateContentResponse
		err  error
	}
	resultChan := make(chan apiResult, 1)

	// Make the API call in a goroutine
	go func() {
		resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
		resultChan <- apiResult{resp: resp, err: err}
	}()

	// Wait for result or timeout
	select {
	case result := <-resultChan:
		if result.err != nil {
			logger.Error("Gemini API request failed", "error", result.err)
			return nil, fmt.Errorf("failed to generate AI response: %v", result.err)
		}
		suggested := parseSuggestionResponse(responseText(result.resp), s.opts.MinConfidence)
		logger.Info("Received suggestions from Gemini API", "count", len(suggested))
		return mergeSuggestions(ds, baseline, suggested), nil

	case <-ctx.Done():
		logger.Error("Gemini API request timed out", "timeout", s.opts.Timeout)
		return nil, fmt.Errorf("API request timed out after %v", s.opts.Timeout)
	}
}

// buildSuggestPrompt creates a prompt asking for one classification per column
func (s *Suggester) buildSuggestPrompt(ds *dataset.Dataset) string {
	prompt := `You are an expert data analyst classifying spreadsheet columns for financial report formatting.

TASK: Classify each column as "date", "currency", or "NONE" based on its name and sample values.

COLUMNS (with sample values):
`
	for _, col := range ds.Columns {
		values := sampleValues(ds, col, s.opts.SampleRows)
		prompt += fmt.Sprintf("- %s: %s\n", col, strings.Join(values, ", "))
	}

	prompt += `
INSTRUCTIONS:
1. Only suggest classifications you are confident about (>80% certainty)
2. "date" means every value is a calendar date
3. "currency" means the values are monetary amounts
4. If uncertain or no formatting applies, use "NONE"

OUTPUT FORMAT (one line per column):
Column|Kind|Confidence

EXAMPLES:
Payment_Date|date|0.95
Amount|currency|0.90
Description|NONE|0.00

Now classify the columns:`

	return prompt
}

// responseText flattens the text parts of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var text string
	for _, part := range candidate.Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			text += string(textPart)
		}
	}
	return text
}

// parseSuggestionResponse parses Column|Kind|Confidence lines, dropping
// NONE rows, malformed rows, and rows below the confidence cutoff.
func parseSuggestionResponse(response string, minConfidence float64) dataset.Directives {
	directives := make(dataset.Directives)
	lines := strings.Split(strings.TrimSpace(response), "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Column|") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			continue
		}

		column := strings.TrimSpace(parts[0])
		kindStr := strings.TrimSpace(parts[1])
		confidenceStr := strings.TrimSpace(parts[2])

		if column == "" || strings.EqualFold(kindStr, "NONE") {
			continue
		}

		kind, err := dataset.ParseKind(kindStr)
		if err != nil {
			logger.Debug("Skipping suggestion with unknown kind", "line", line)
			continue
		}

		var confidence float64
		if _, err := fmt.Sscanf(confidenceStr, "%f", &confidence); err != nil {
			confidence = 0.0
		}
		if confidence < minConfidence {
			logger.Debug("Skipping low confidence suggestion", "column", column, "confidence", confidence)
			continue
		}

		directives[column] = kind
	}

	return directives
}

// mergeSuggestions layers model output over the heuristic baseline.
// Columns the model names that do not exist in the dataset are skipped.
func mergeSuggestions(ds *dataset.Dataset, baseline, suggested dataset.Directives) dataset.Directives {
	merged := make(dataset.Directives, len(baseline))
	for col, kind := range baseline {
		merged[col] = kind
	}
	known := make(map[string]bool, len(ds.Columns))
	for _, col := range ds.Columns {
		known[col] = true
	}
	for col, kind := range suggested {
		if !known[col] {
			logger.Warn("AI suggested a column that does not exist", "column", col)
			continue
		}
		if _, exists := merged[col]; exists {
			continue
		}
		merged[col] = kind
	}
	return merged
}

// GetGeminiAPIKey gets the API key from environment variable
func GetGeminiAPIKey() string {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY environment variable not set")
	}
	return apiKey
}
