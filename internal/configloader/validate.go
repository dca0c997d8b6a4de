package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.PDF001.options").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for errors and warnings.
// Rule keys are looked up in registry; unknown keys produce warnings.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	fieldErrs := validation.Errors{
		"format": validation.Validate(cfg.Format,
			validation.In(config.FormatText, config.FormatJSON).
				Error("must be one of: text, json")),
		"color": validation.Validate(cfg.Color,
			validation.In(config.ColorAuto, config.ColorAlways, config.ColorNever).
				Error("must be one of: auto, always, never")),
		"jobs": validation.Validate(cfg.Jobs,
			validation.Min(0).Error("must be >= 0 (0 means auto)")),
		"excerpt_length": validation.Validate(cfg.ExcerptLength,
			validation.Min(1).Error("must be >= 1")),
		"ignore": validation.Validate(cfg.Ignore,
			validation.Each(validation.By(validGlob))),
	}

	for _, ruleID := range sortedKeys(cfg.Rules) {
		if _, exists := registry.Get(ruleID); !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleID,
				Value:   ruleID,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
			})
		}

		ruleCfg := cfg.Rules[ruleID]
		if length, ok := ruleCfg.Options["excerpt_length"]; ok {
			fieldErrs["rules."+ruleID+".options.excerpt_length"] = validation.Validate(length,
				validation.By(positiveInt))
		}
	}

	values := map[string]any{
		"format":         cfg.Format,
		"color":          cfg.Color,
		"jobs":           cfg.Jobs,
		"excerpt_length": cfg.ExcerptLength,
		"ignore":         cfg.Ignore,
	}

	for _, field := range sortedKeys(fieldErrs) {
		err := fieldErrs[field]
		if err == nil {
			continue
		}
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   values[field],
			Message: err.Error(),
		})
	}

	for _, name := range slices.Concat(cfg.EnableRules, cfg.DisableRules) {
		if _, found := registry.Resolve(name); !found {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules",
				Value:   name,
				Message: fmt.Sprintf("unknown rule %q in enable/disable list", name),
			})
		}
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

var errNotPositiveInt = errors.New("must be a positive integer")

func positiveInt(value any) error {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return nil
		}
	case float64:
		if v > 0 && v == float64(int(v)) {
			return nil
		}
	}
	return errNotPositiveInt
}

func validGlob(value any) error {
	pattern, _ := value.(string)
	// filepath.Match returns an error only for malformed patterns.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}
