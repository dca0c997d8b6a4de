package runner

import "github.com/yaklabco/mdpdflint/pkg/lint"

// FileOutcome is the result of checking one input file.
type FileOutcome struct {
	// Path is the file path as it should be shown to the user.
	Path string

	// Result holds the diagnostics. Nil when Error is set.
	Result *lint.Result

	// Error is set when the file could not be checked, for example
	// because it does not exist (ErrFileNotFound).
	Error error
}

// Diagnostics returns the diagnostics of the outcome, or nil.
func (o FileOutcome) Diagnostics() []lint.Diagnostic {
	if o.Result == nil {
		return nil
	}
	return o.Result.Diagnostics
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files scheduled for checking.
	FilesDiscovered int

	// FilesChecked is the number of files that were read and checked.
	FilesChecked int

	// FilesMissing is the number of inputs that did not exist.
	FilesMissing int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsByRule maps rule IDs to diagnostic counts.
	DiagnosticsByRule map[string]int

	// RuleErrors is the number of rule failures across all files.
	RuleErrors int
}

// Result is the overall runner result.
type Result struct {
	// Files contains one outcome per discovered file, in input order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasMissing reports whether any input file did not exist.
func (r *Result) HasMissing() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesMissing > 0
}

// Failed reports whether the run should end with a non-zero status.
func (r *Result) Failed() bool {
	return r.HasIssues() || r.HasMissing()
}

func newStats() Stats {
	return Stats{
		DiagnosticsByRule: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesMissing++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesChecked++
	r.Stats.RuleErrors += len(outcome.Result.RuleErrors)

	diagCount := len(outcome.Result.Diagnostics)
	r.Stats.DiagnosticsTotal += diagCount
	if diagCount > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, diag := range outcome.Result.Diagnostics {
		r.Stats.DiagnosticsByRule[diag.RuleID]++
	}
}
