// Package logging wraps charmbracelet/log with the process-wide logger,
// context helpers and the field names used across mdpdflint.
package logging

// Structured field names.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldPaths   = "paths"
	FieldElapsed = "elapsed"
	FieldRule    = "rule"

	// Configuration.
	FieldConfigFiles = "config_files"
	FieldFormat      = "format"
	FieldJobs        = "jobs"

	// Run statistics.
	FieldFilesChecked     = "files_checked"
	FieldFilesMissing     = "files_missing"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnostics      = "diagnostics"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Build information.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
