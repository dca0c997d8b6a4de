package rules

import (
	"fmt"

	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// ListSpacingRule checks that lists are preceded by a blank line.
type ListSpacingRule struct {
	lint.BaseRule
}

// NewListSpacingRule creates a new list spacing rule.
func NewListSpacingRule() *ListSpacingRule {
	return &ListSpacingRule{
		BaseRule: lint.NewBaseRule(
			"PDF001",
			"blank-line-before-list",
			"Lists should be preceded by a blank line",
			[]string{"lists", "blank_lines"},
		),
	}
}

// Apply flags list items whose previous line is neither blank, list-like,
// nor ends with a continuation backslash. The first line is exempt.
func (r *ListSpacingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
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
		if !lint.IsListItem(line) {
			continue
		}

		prev := ctx.Doc.Line(lineNum - 1)
		if lint.IsBlank(prev) || lint.StartsListLike(prev) || lint.HasContinuation(prev) {
			continue
		}

		msg := fmt.Sprintf("Missing blank line before list (line %d). Add a blank line before: %s",
			lineNum, lint.Excerpt(line, excerptLen))
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Doc.Path, lineNum, msg).
			WithSuggestion(fmt.Sprintf("Insert a blank line above line %d", lineNum)).
			Build())
	}

	return diags, nil
}
