// Package runner checks many Markdown files concurrently and collects the
// outcomes in input order.
package runner

import "github.com/yaklabco/mdpdflint/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories, in the order given.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, relative paths are resolved by the operating system.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// collected when a directory is expanded. Defaults to DefaultExtensions().
	// Files named explicitly are always checked.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories
	// during directory expansion.
	ExcludeGlobs []string

	// Jobs limits the number of files checked at once.
	// 0 or negative means runtime.GOMAXPROCS(0).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}
