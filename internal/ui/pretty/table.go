package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// Table formatting constants.
const (
	tablePadding       = 2
	tableColumnCount   = 4 // ID, NAME, STATUS, DESCRIPTION
	statusColumnWidth  = 8
	minDescWidth       = 20
	lightSeparator     = "-"
	statusEnabledText  = "on"
	statusDisabledText = "off"
)

// RuleTableFormatter formats the rule listing as a table sized to the terminal.
type RuleTableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewRuleTableFormatter creates a new rule table formatter.
func NewRuleTableFormatter(styles *Styles, termWidth int) *RuleTableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &RuleTableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type ruleColumnWidths struct {
	id   int
	name int
	desc int
}

// FormatRules formats resolved rules, one row per rule, in the given order.
func (t *RuleTableFormatter) FormatRules(rules []lint.ResolvedRule) string {
	widths := t.calculateColumnWidths(rules)

	var builder strings.Builder

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %s",
		widths.id, "ID",
		widths.name, "NAME",
		statusColumnWidth, "ENABLED",
		"DESCRIPTION",
	)
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")

	total := widths.id + widths.name + statusColumnWidth + widths.desc + tablePadding*(tableColumnCount-1)
	builder.WriteString(t.styles.Dim.Render(strings.Repeat(lightSeparator, total)) + "\n")

	for _, rule := range rules {
		builder.WriteString(t.formatRow(rule, widths) + "\n")
	}

	return builder.String()
}

func (t *RuleTableFormatter) formatRow(rule lint.ResolvedRule, widths ruleColumnWidths) string {
	status := t.styles.Enabled.Render(fmt.Sprintf("%-*s", statusColumnWidth, statusEnabledText))
	if !rule.Enabled {
		status = t.styles.Disabled.Render(fmt.Sprintf("%-*s", statusColumnWidth, statusDisabledText))
	}

	return fmt.Sprintf("%s  %-*s  %s  %s",
		t.styles.RuleID.Render(fmt.Sprintf("%-*s", widths.id, rule.Rule.ID())),
		widths.name, rule.Rule.Name(),
		status,
		truncateString(rule.Rule.Description(), widths.desc),
	)
}

func (t *RuleTableFormatter) calculateColumnWidths(rules []lint.ResolvedRule) ruleColumnWidths {
	widths := ruleColumnWidths{id: len("ID"), name: len("NAME")}
	for _, rule := range rules {
		widths.id = max(widths.id, len(rule.Rule.ID()))
		widths.name = max(widths.name, len(rule.Rule.Name()))
	}

	used := widths.id + widths.name + statusColumnWidth + tablePadding*(tableColumnCount-1)
	widths.desc = max(t.termWidth-used, minDescWidth)
	return widths
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
