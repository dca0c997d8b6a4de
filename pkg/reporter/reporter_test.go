package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpdflint/pkg/lint"
	"github.com/yaklabco/mdpdflint/pkg/reporter"
	"github.com/yaklabco/mdpdflint/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "guide.md",
				Result: &lint.Result{Diagnostics: []lint.Diagnostic{
					{
						RuleID:   "PDF001",
						RuleName: "blank-line-before-list",
						Line:     3,
						Message:  "Missing blank line before list (line 3). Add a blank line before: - a",
					},
					{
						RuleID:     "PDF004",
						RuleName:   "ascii-only-code-blocks",
						Line:       9,
						Message:    "Unicode character in code block (line 9): arrow. Use ASCII alternative. Found in: a → b",
						Category:   "arrow",
						Suggestion: "Replace U+2192 RIGHTWARDS ARROW with an ASCII alternative",
					},
				}},
			},
			{
				Path:  "missing.md",
				Error: fmt.Errorf("%w: missing.md", runner.ErrFileNotFound),
			},
			{
				Path:   "clean.md",
				Result: &lint.Result{},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.False(t, reporter.Format("sarif").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{Writer: &buf, ErrorWriter: &buf, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_Report(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &stdout,
		ErrorWriter: &stderr,
		Color:       "never",
	})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	wantStderr := "\n❌ Markdown linting errors in guide.md:\n" +
		"  Line 3: Missing blank line before list (line 3). Add a blank line before: - a\n" +
		"  Line 9: Unicode character in code block (line 9): arrow. Use ASCII alternative. Found in: a → b\n" +
		"\nFound 2 error(s).\n" +
		"Error: File not found: missing.md\n"
	assert.Equal(t, wantStderr, stderr.String())
	assert.Equal(t, "✔️ clean.md: No linting errors\n", stdout.String())
}

func TestTextReporter_NilResult(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &stdout, ErrorWriter: &stderr, Color: "never"})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestJSONReporter_Report(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, reporter.JSONSchemaVersion, output.Version)
	require.Len(t, output.Files, 3)

	guide := output.Files[0]
	assert.Equal(t, "guide.md", guide.Path)
	require.Len(t, guide.Diagnostics, 2)
	assert.Equal(t, 3, guide.Diagnostics[0].Line)
	assert.Empty(t, guide.Diagnostics[0].Category)
	assert.Equal(t, "arrow", guide.Diagnostics[1].Category)
	assert.Contains(t, guide.Diagnostics[1].Message, "→")

	assert.Contains(t, output.Files[1].Error, "file not found")
	assert.Empty(t, output.Files[1].Diagnostics)
	assert.Empty(t, output.Files[2].Diagnostics)

	assert.Equal(t, 2, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
	assert.Equal(t, 1, output.Summary.FilesMissing)
	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, map[string]int{"PDF001": 1, "PDF004": 1}, output.Summary.ByRule)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"version":"1.0.0","files":[],"summary":{"filesChecked":0,"filesWithIssues":0,"filesMissing":0,"totalIssues":0,"byRule":{}}}`,
		buf.String())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestTextReporter_QuotesTabsVerbatim(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "tabs.md",
			Result: &lint.Result{Diagnostics: []lint.Diagnostic{{
				RuleID:  "PDF004",
				Line:    2,
				Message: "Unicode character in code block (line 2): arrow. Use ASCII alternative. Found in: \tx → y",
			}}},
		}},
	}

	var stdout, stderr bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &stdout, ErrorWriter: &stderr, Color: "never"})

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "  Line 2: Unicode character in code block (line 2): arrow. Use ASCII alternative. Found in: \tx → y\n")
}
