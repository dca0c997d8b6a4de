package cli

import (
	"errors"

	"github.com/yaklabco/mdpdflint/internal/configloader"
)

// Exit codes for mdpdflint.
const (
	// ExitSuccess indicates every file exists and has no findings.
	ExitSuccess = 0

	// ExitIssues indicates findings or missing input files.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error, such as an unreadable
	// file or a failing rule.
	ExitInternalError = 70
)

var (
	// ErrIssuesFound is returned when findings or missing files were reported.
	ErrIssuesFound = errors.New("issues found")

	// ErrUsage is returned for invalid command-line usage.
	ErrUsage = errors.New("invalid usage")

	// ErrRuleFailures is returned when a rule failed on at least one file.
	ErrRuleFailures = errors.New("rule failures")
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
