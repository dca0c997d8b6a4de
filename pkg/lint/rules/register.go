package rules

import "github.com/yaklabco/mdpdflint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewListSpacingRule())     // PDF001
	registry.Register(NewTableSpacingRule())    // PDF002
	registry.Register(NewHeaderStyleRule())     // PDF003
	registry.Register(NewCodeBlockScriptRule()) // PDF004
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
