package rules

import (
	"fmt"

	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// TableSpacingRule checks that tables are preceded by a blank line.
type TableSpacingRule struct {
	lint.BaseRule
}

// NewTableSpacingRule creates a new table spacing rule.
func NewTableSpacingRule() *TableSpacingRule {
	return &TableSpacingRule{
		BaseRule: lint.NewBaseRule(
			"PDF002",
			"blank-line-before-table",
			"Tables should be preceded by a blank line",
			[]string{"table", "blank_lines"},
		),
	}
}

// Apply flags table rows whose previous line is not blank, another table
// row, a continuation line, or a code fence.
func (r *TableSpacingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	excerptLen := ctx.ExcerptLength()
	var diags []lint.Diagnostic

	for lineNum := 2; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		line := ctx.Doc.Line(lineNum)
		if !lint.IsTableRow(line) {
			continue
		}

		prev := ctx.Doc.Line(lineNum - 1)
		if lint.IsBlank(prev) || lint.IsTableRow(prev) || lint.HasContinuation(prev) || lint.IsFence(prev) {
			continue
		}

		msg := fmt.Sprintf("Missing blank line before table (line %d). Add a blank line before: %s",
			lineNum, lint.Excerpt(line, excerptLen))
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Doc.Path, lineNum, msg).
			WithSuggestion(fmt.Sprintf("Insert a blank line above line %d", lineNum)).
			Build())
	}

	return diags, nil
}
