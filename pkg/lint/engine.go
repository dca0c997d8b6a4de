package lint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yaklabco/mdpdflint/internal/logging"
	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/document"
)

// ErrRulePanic indicates a rule panicked while scanning a document.
var ErrRulePanic = errors.New("rule panicked")

// Result contains the outcome of checking a single document.
type Result struct {
	// Document is the checked document.
	Document *document.Document

	// Diagnostics contains all issues found, in rule-pass order: every
	// diagnostic of a rule precedes every diagnostic of the next rule.
	Diagnostics []Diagnostic

	// RuleErrors contains failures of individual rules keyed by rule ID.
	// A failed rule does not stop the remaining rules.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (r *Result) HasIssues() bool {
	return len(r.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (r *Result) IssueCount() int {
	return len(r.Diagnostics)
}

// Engine coordinates rule execution for a document.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// CheckFile loads the file at path and checks it.
func (e *Engine) CheckFile(ctx context.Context, path string, cfg *config.Config) (*Result, error) {
	doc, err := document.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.CheckDocument(ctx, doc, cfg)
}

// CheckDocument runs every enabled rule over doc, one full pass per rule.
// Log entries go to the logger in ctx, which callers tag with the file path.
func (e *Engine) CheckDocument(ctx context.Context, doc *document.Document, cfg *config.Config) (*Result, error) {
	logger := logging.FromContext(ctx)
	resolved := ResolveRules(e.Registry, cfg)

	result := &Result{
		Document:   doc,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("check cancelled: %w", ctx.Err())
		default:
		}

		started := time.Now()
		ruleCtx := NewRuleContext(ctx, doc, cfg, rr.Config)

		diags, err := applyRule(rr.Rule, ruleCtx)
		if err != nil {
			logger.Warn("rule failed",
				logging.FieldRule, rr.Rule.ID(),
				logging.FieldError, err,
			)
			result.RuleErrors[rr.Rule.ID()] = err
		}

		for idx := range diags {
			if diags[idx].FilePath == "" {
				diags[idx].FilePath = doc.Path
			}
			if diags[idx].RuleName == "" {
				diags[idx].RuleName = rr.Rule.Name()
			}
		}

		logger.Debug("rule applied",
			logging.FieldRule, rr.Rule.ID(),
			logging.FieldDiagnostics, len(diags),
			logging.FieldElapsed, time.Since(started),
		)

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	return result, nil
}

// applyRule runs a single rule, turning a panic into an error so that the
// remaining rules still run. Diagnostics returned before a failure are kept.
func applyRule(rule Rule, ruleCtx *RuleContext) (diags []Diagnostic, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			diags = nil
			err = fmt.Errorf("%w: %s: %v", ErrRulePanic, rule.ID(), recovered)
		}
	}()
	return rule.Apply(ruleCtx)
}
