package lint

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a diagnostic at a specific line.
func NewDiagnosticAt(ruleID, filePath string, line int, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:   ruleID,
			FilePath: filePath,
			Line:     line,
			Message:  message,
		},
	}
}

// WithCategory sets the violation category.
func (b *DiagnosticBuilder) WithCategory(category string) *DiagnosticBuilder {
	b.diag.Category = category
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
