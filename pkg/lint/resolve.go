package lint

import "github.com/yaklabco/mdpdflint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, in registry (ID) order.
//
// Precedence, lowest to highest: rule default, rules.<id>.enabled from the
// config file, --enable, --disable.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// ResolveAll resolves every registered rule, enabled or not, in ID order.
func ResolveAll(registry *Registry, cfg *config.Config) []ResolvedRule {
	rules := registry.Rules()
	resolved := make([]ResolvedRule, 0, len(rules))
	for _, rule := range rules {
		resolved = append(resolved, resolveRule(registry, rule, cfg))
	}
	return resolved
}

func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:    rule,
		Enabled: rule.DefaultEnabled(),
	}

	if cfg == nil {
		return rr
	}

	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Config = &ruleCfg
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
	}

	if matchesRule(registry, cfg.EnableRules, rule) {
		rr.Enabled = true
	}
	if matchesRule(registry, cfg.DisableRules, rule) {
		rr.Enabled = false
	}

	return rr
}

// matchesRule reports whether any key (ID or name) refers to rule.
func matchesRule(registry *Registry, keys []string, rule Rule) bool {
	for _, key := range keys {
		if id, ok := registry.Resolve(key); ok && id == rule.ID() {
			return true
		}
	}
	return false
}
