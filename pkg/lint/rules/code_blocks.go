package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
	"golang.org/x/text/unicode/runenames"

	"github.com/yaklabco/mdpdflint/pkg/lint"
)

// Forbidden character categories, in match priority order.
const (
	CategoryCheckmark  = "checkmark"
	CategoryBoxDrawing = "box-drawing"
	CategoryArrow      = "arrow"
	CategoryNonASCII   = "Unicode character"
)

// scriptCategory is a named set of characters that the typesetting backend
// cannot render inside verbatim blocks.
type scriptCategory struct {
	name  string
	match func(r rune) bool
}

// forbiddenCategories is checked in order; the first category with a match
// names the diagnostic. The last entry catches every remaining non-ASCII rune.
//
//nolint:gochecknoglobals // Read-only lookup table.
var forbiddenCategories = []scriptCategory{
	{name: CategoryCheckmark, match: anyOf('✅', '✓')},
	{name: CategoryBoxDrawing, match: anyOf('├', '│', '└')},
	{name: CategoryArrow, match: anyOf('→', '←')},
	{name: CategoryNonASCII, match: func(r rune) bool { return r > unicode.MaxASCII }},
}

func anyOf(runes ...rune) func(rune) bool {
	return func(r rune) bool {
		for _, candidate := range runes {
			if r == candidate {
				return true
			}
		}
		return false
	}
}

// fenceState tracks whether the scan is inside a fenced code block.
type fenceState int

const (
	outsideFence fenceState = iota
	insideFence
)

// CodeBlockScriptRule flags non-ASCII characters inside fenced code blocks.
type CodeBlockScriptRule struct {
	lint.BaseRule
}

// NewCodeBlockScriptRule creates a new code block script rule.
func NewCodeBlockScriptRule() *CodeBlockScriptRule {
	return &CodeBlockScriptRule{
		BaseRule: lint.NewBaseRule(
			"PDF004",
			"ascii-only-code-blocks",
			"Fenced code blocks should only contain ASCII characters",
			[]string{"code", "unicode"},
		),
	}
}

// Apply walks the document once, toggling fence state on every fence line and
// scanning the lines in between. An unterminated fence is not reported.
func (r *CodeBlockScriptRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	excerptLen := ctx.ExcerptLength()
	state := outsideFence
	language := ""
	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		line := ctx.Doc.Line(lineNum)

		if lint.IsFence(line) {
			if state == insideFence {
				state = outsideFence
				language = ""
			} else {
				state = insideFence
				language = lint.FenceLanguage(line)
			}
			continue
		}

		if state == outsideFence {
			continue
		}

		category, offending, found := classifyLine(line)
		if !found {
			continue
		}

		msg := fmt.Sprintf("Unicode character in code block (line %d): %s. Use ASCII alternative. Found in: %s",
			lineNum, category, lint.Excerpt(line, excerptLen))
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Doc.Path, lineNum, msg).
			WithCategory(category).
			WithSuggestion(replacementHint(offending, language)).
			Build())
	}

	return diags, nil
}

// classifyLine returns the first forbidden category present in line and the
// first rune of that category.
func classifyLine(line string) (string, rune, bool) {
	for _, cat := range forbiddenCategories {
		if idx := strings.IndexFunc(line, cat.match); idx >= 0 {
			offending, _ := utf8.DecodeRuneInString(line[idx:])
			return cat.name, offending, true
		}
	}
	return "", 0, false
}

// replacementHint names the offending code point and, when the fence tag is
// a known language alias, the block's language.
func replacementHint(offending rune, language string) string {
	name := runenames.Name(offending)
	if name == "" {
		name = "unnamed character"
	}
	hint := fmt.Sprintf("Replace U+%04X %s with an ASCII alternative", offending, name)

	if language == "" {
		return hint
	}
	if canonical, ok := enry.GetLanguageByAlias(language); ok {
		return hint + " in this " + canonical + " block"
	}
	return hint
}
