// Package config defines core configuration types for mdpdflint.
// These types are pure data structures with no dependency on the loader.
package config

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Color modes accepted by the reporter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultExcerptLength is the number of characters of an offending line quoted in messages.
const DefaultExcerptLength = 50

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Config is the root configuration structure for mdpdflint.
type Config struct {
	// Rules contains per-rule configuration keyed by rule ID.
	// Rule names are accepted in files and normalized to IDs by the loader.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// Ignore contains glob patterns for files skipped during directory expansion.
	Ignore []string `yaml:"ignore,omitempty"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Color controls colorized output: auto, always, never.
	Color string `yaml:"color,omitempty"`

	// Jobs specifies the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs,omitempty"`

	// ExcerptLength is how many characters of an offending line appear in messages.
	ExcerptLength int `yaml:"excerpt_length,omitempty"`

	// CLI-level options (not persisted to config files).

	// EnableRules contains rule IDs or names to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs or names to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:         make(map[string]RuleConfig),
		Format:        FormatText,
		Color:         ColorAuto,
		Jobs:          0,
		ExcerptLength: DefaultExcerptLength,
	}
}

// EffectiveExcerptLength returns ExcerptLength, or the default when unset.
func (c *Config) EffectiveExcerptLength() int {
	if c == nil || c.ExcerptLength <= 0 {
		return DefaultExcerptLength
	}
	return c.ExcerptLength
}
