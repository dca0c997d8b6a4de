package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/mdpdflint/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Rules: deep merge, with override's values taking precedence
//   - Ignore: override replaces base entirely if non-nil
//   - EnableRules/DisableRules: accumulated, so an environment disable list
//     and a CLI disable list both apply
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.ExcerptLength != 0 {
		result.ExcerptLength = override.ExcerptLength
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	result.EnableRules = appendUnique(base.EnableRules, override.EnableRules)
	result.DisableRules = appendUnique(base.DisableRules, override.DisableRules)

	return &result
}

// mergeRules performs deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
// override's values take precedence over base's values.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}

	if override.Options != nil {
		merged := make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(merged, base.Options)
		maps.Copy(merged, override.Options)
		result.Options = merged
	}

	return result
}

func appendUnique(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	result := slices.Clone(base)
	for _, item := range extra {
		if !slices.Contains(result, item) {
			result = append(result, item)
		}
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
