package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpdflint/pkg/config"
)

func newResolveRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "PDF001", name: "blank-line-before-list"})
	reg.Register(&mockRule{id: "PDF002", name: "blank-line-before-table"})
	reg.Register(&mockRule{id: "PDF003", name: "no-bold-as-header"})
	return reg
}

func resolvedIDs(resolved []ResolvedRule) []string {
	ids := make([]string, 0, len(resolved))
	for _, rr := range resolved {
		ids = append(ids, rr.Rule.ID())
	}
	return ids
}

func TestResolveRules_Defaults(t *testing.T) {
	reg := newResolveRegistry()

	assert.Equal(t, []string{"PDF001", "PDF002", "PDF003"}, resolvedIDs(ResolveRules(reg, nil)))
	assert.Equal(t, []string{"PDF001", "PDF002", "PDF003"}, resolvedIDs(ResolveRules(reg, config.NewConfig())))
}

func TestResolveRules_ConfigDisable(t *testing.T) {
	reg := newResolveRegistry()
	disabled := false

	cfg := config.NewConfig()
	cfg.Rules["PDF002"] = config.RuleConfig{Enabled: &disabled}

	assert.Equal(t, []string{"PDF001", "PDF003"}, resolvedIDs(ResolveRules(reg, cfg)))
}

func TestResolveRules_CLIOverridesConfig(t *testing.T) {
	reg := newResolveRegistry()
	disabled := false

	cfg := config.NewConfig()
	cfg.Rules["PDF002"] = config.RuleConfig{Enabled: &disabled}
	cfg.EnableRules = []string{"blank-line-before-table"}
	cfg.DisableRules = []string{"no-bold-as-header", "PDF001"}

	assert.Equal(t, []string{"PDF002"}, resolvedIDs(ResolveRules(reg, cfg)))
}

func TestResolveRules_CarriesRuleConfig(t *testing.T) {
	reg := newResolveRegistry()

	cfg := config.NewConfig()
	cfg.Rules["PDF001"] = config.RuleConfig{Options: map[string]any{"excerpt_length": 10}}

	resolved := ResolveRules(reg, cfg)
	require.Len(t, resolved, 3)
	require.NotNil(t, resolved[0].Config)
	assert.Equal(t, 10, resolved[0].Config.Options["excerpt_length"])
	assert.Nil(t, resolved[1].Config)
}

func TestResolveAll_KeepsDisabledRules(t *testing.T) {
	reg := newResolveRegistry()

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"no-bold-as-header"}

	resolved := ResolveAll(reg, cfg)
	require.Len(t, resolved, 3)
	assert.True(t, resolved[0].Enabled)
	assert.True(t, resolved[1].Enabled)
	assert.False(t, resolved[2].Enabled)
}
