package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// HeaderStyleRule flags standalone bold lines that act as section headers.
// The PDF backend only builds document structure and bookmarks from real
// headers.
type HeaderStyleRule struct {
	lint.BaseRule
}

// NewHeaderStyleRule creates a new header style rule.
func NewHeaderStyleRule() *HeaderStyleRule {
	return &HeaderStyleRule{
		BaseRule: lint.NewBaseRule(
			"PDF003",
			"no-bold-as-header",
			"Bold text should not be used in place of a header",
			[]string{"headings", "emphasis"},
		),
	}
}

// Apply checks each bold-only line against the line that follows it.
func (r *HeaderStyleRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	// The last line has no follower and is exempt.
	for lineNum := 1; lineNum < ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		line := ctx.Doc.Line(lineNum)
		if !lint.IsBoldOnly(line) {
			continue
		}

		if !startsSection(ctx.Doc.Line(lineNum + 1)) {
			continue
		}

		stripped := strings.TrimSpace(line)
		msg := fmt.Sprintf("Bold text used as header (line %d). "+
			"Convert to proper header (e.g. ###, depending on the level of the header): %s",
			lineNum, stripped)
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Doc.Path, lineNum, msg).
			WithSuggestion("Replace with a heading such as: ### "+boldText(stripped)).
			Build())
	}

	return diags, nil
}

// startsSection reports whether the line following a bold-only line is
// content that makes the bold line read as a header. Anything non-blank that
// is list-like, or that is neither a fence nor a table row, qualifies.
func startsSection(next string) bool {
	if lint.IsBlank(next) {
		return false
	}
	if lint.StartsListLike(next) {
		return true
	}
	return !lint.IsFence(next) && !lint.IsTableRow(next)
}

// boldText returns the text between the bold markers of a bold-only line.
func boldText(stripped string) string {
	text := strings.TrimSuffix(stripped, ":")
	return strings.TrimSuffix(strings.TrimPrefix(text, "**"), "**")
}
