package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdpdflint/pkg/runner"
)

// JSONSchemaVersion is the version of the JSON output layout.
const JSONSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Line       int    `json:"line"`
	Message    string `json:"message"`
	Category   string `json:"category,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesMissing    int            `json:"filesMissing"`
	TotalIssues     int            `json:"totalIssues"`
	ByRule          map[string]int `json:"byRule"`
}

// JSONReporter formats results as a single JSON document.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: JSONSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByRule: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        file.Path,
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesMissing++
			output.Files = append(output.Files, fileResult)
			continue
		}

		for _, diag := range file.Diagnostics() {
			fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
				RuleID:     diag.RuleID,
				RuleName:   diag.RuleName,
				Line:       diag.Line,
				Message:    diag.Message,
				Category:   diag.Category,
				Suggestion: diag.Suggestion,
			})
			output.Summary.TotalIssues++
			output.Summary.ByRule[diag.RuleID]++
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
