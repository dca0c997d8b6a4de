package pretty

import (
	"fmt"

	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// Report markers.
const (
	FailureMark = "❌"
	SuccessMark = "✔️"
)

// FormatFailureBanner formats the heading printed before a file's diagnostics.
func (s *Styles) FormatFailureBanner(path string) string {
	return "\n" + s.Failure.Render(FailureMark+" Markdown linting errors in") + " " +
		s.FilePath.Render(path) + s.Failure.Render(":") + "\n"
}

// FormatDiagnostic formats one diagnostic as an indented "Line n: message" entry.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic) string {
	return "  " + s.Location.Render(fmt.Sprintf("Line %d:", diag.Line)) + " " +
		s.Message.Render(diag.Message) + "\n"
}

// FormatErrorCount formats the closing line of a failing file's report.
func (s *Styles) FormatErrorCount(count int) string {
	return "\n" + s.Count.Render(fmt.Sprintf("Found %d error(s).", count)) + "\n"
}

// FormatSuccess formats the line printed for a file without diagnostics.
func (s *Styles) FormatSuccess(path string) string {
	return s.Success.Render(SuccessMark) + " " + s.FilePath.Render(path) + ": " +
		s.Success.Render("No linting errors") + "\n"
}

// FormatMissingFile formats the line printed for an input that does not exist.
func (s *Styles) FormatMissingFile(path string) string {
	return s.Error.Render("Error: File not found: "+path) + "\n"
}
