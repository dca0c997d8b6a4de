// Package rules provides the built-in checker rules for mdpdflint.
//
// Each rule targets a Markdown pattern that breaks PDF generation through a
// typesetting backend:
//
//   - PDF001: blank-line-before-list - Lists need a blank line before them
//   - PDF002: blank-line-before-table - Tables need a blank line before them
//   - PDF003: no-bold-as-header - Bold-only lines should be real headers
//   - PDF004: ascii-only-code-blocks - Fenced code blocks must be ASCII
//
// Rules scan lines, not a Markdown AST. They are independent of each other
// and run in ID order; see lint.Engine.
//
// Rules are registered with the default registry via RegisterAll.
package rules
