// Package lint provides the document checker: the rule interface, the rule
// registry, the shared line-classification primitives and the engine that runs
// every enabled rule over a document.
package lint

// Diagnostic represents a single style violation found in a document.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "blank-line-before-list").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based line number of the offending line.
	Line int

	// Category classifies the violation within its rule (e.g., "checkmark").
	// Empty for rules that have a single kind of violation.
	Category string

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string
}

// Rule defines the interface that all checker rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "PDF001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Tags returns categorization tags for this rule (e.g., ["lists", "spacing"]).
	Tags() []string

	// Apply scans the document in the given context and returns diagnostics
	// in ascending line order.
	//
	// Rules must:
	//   - Treat the document as read-only.
	//   - Keep any scan state local to the call.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
