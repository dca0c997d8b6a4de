package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/document"
	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// applyToLines runs a single rule over the given lines with default config.
func applyToLines(t *testing.T, rule lint.Rule, lines ...string) []lint.Diagnostic {
	t.Helper()

	doc := document.FromLines("test.md", lines)
	ruleCtx := lint.NewRuleContext(context.Background(), doc, config.NewConfig(), nil)

	diags, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	return diags
}

// diagLines returns the line numbers of diags in order.
func diagLines(diags []lint.Diagnostic) []int {
	lines := make([]int, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, d.Line)
	}
	return lines
}
