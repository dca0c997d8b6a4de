package lint

import (
	"context"

	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/document"
)

// RuleContext provides all context needed by a rule to scan a document.
//
// RuleContext stores context.Context as a field (Ctx) because it is a
// short-lived parameter object created per rule invocation.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the document being checked.
	Doc *document.Document

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig
}

// NewRuleContext creates a RuleContext for the given document and configuration.
func NewRuleContext(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		Doc:        doc,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// ExcerptLength returns the excerpt length for messages: the rule's
// "excerpt_length" option if set, otherwise the global setting.
func (rc *RuleContext) ExcerptLength() int {
	n := rc.OptionInt("excerpt_length", rc.Config.EffectiveExcerptLength())
	if n <= 0 {
		return config.DefaultExcerptLength
	}
	return n
}
