// Package configloader provides configuration loading and resolution.
// It implements project configuration discovery, layered merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// ErrConfig marks a configuration file or value that could not be used.
var ErrConfig = errors.New("invalid configuration")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// It is layered on top of any project config.
	ExplicitPath string

	// IgnoreProjectConfig skips the upward search for a project config.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	// Registry resolves rule names to IDs. Defaults to lint.DefaultRegistry.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (MDPDFLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.mdpdflint.yml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	registry := opts.Registry
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	result := &LoadResult{Paths: &ConfigPaths{Explicit: opts.ExplicitPath}}
	layers := []*config.Config{config.NewConfig()}

	if !opts.IgnoreProjectConfig {
		project, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, fmt.Errorf("discover project config: %w", err)
		}
		result.Paths.Project = project
	}

	if result.Paths.Project != "" {
		projectCfg, err := loadConfigFile(result.Paths.Project, registry)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		layers = append(layers, projectCfg)
		result.LoadedFrom = append(result.LoadedFrom, result.Paths.Project)
	}

	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(opts.ExplicitPath, registry)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		layers = append(layers, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	cfg := MergeAll(layers...)

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Rule names like "no-bold-as-header" are accepted in config files.
	normalizeRuleKeys(cfg, registry, result)

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrConfig, &validation.Errors[0])
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file. Invalid values are
// reported against the file they came from.
func loadConfigFile(path string, registry *lint.Registry) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read file: %w", ErrConfig, err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	if validation := ValidateWithFile(cfg, registry, path); !validation.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrConfig, &validation.Errors[0])
	}

	return cfg, nil
}

// normalizeRuleKeys converts rule names to canonical IDs in the config.
// If a rule is configured under both its ID and its name, the entry under
// the name wins and a warning is recorded.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seenIDs := make(map[string]string) // canonical ID -> original key

	for _, key := range sortedKeys(cfg.Rules) {
		ruleCfg := cfg.Rules[key]

		canonicalID, found := registry.Resolve(key)
		if !found {
			// Unknown rule: kept as-is, validation warns about it.
			normalized[key] = ruleCfg
			continue
		}

		if originalKey, exists := seenIDs[canonicalID]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using %q",
					originalKey, key, canonicalID, key))
		}

		seenIDs[canonicalID] = key
		normalized[canonicalID] = ruleCfg
	}

	cfg.Rules = normalized
}
