// Package cli provides the Cobra command structure for mdpdflint.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpdflint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by the root command and its subcommands.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root mdpdflint command with all subcommands.
// The root command itself checks the files given as arguments.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}
	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdpdflint [flags] <file>...",
		Short: "Check Markdown files for patterns that break PDF rendering",
		Long:  rootLongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(cmd, errors.New("at least one file is required"))
			}
			return nil
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if globals.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, globals, flags)
		},
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")

	addCheckFlags(rootCmd, flags)

	rootCmd.AddCommand(newRulesCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(globals.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// usageError prints the usage of cmd to its error stream and wraps err
// with ErrUsage.
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErr(cmd.UsageString())
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

const rootLongDescription = `mdpdflint checks Markdown documents that are rendered to PDF for
formatting patterns known to break the conversion:

  PDF001  lists without a blank line before them
  PDF002  tables without a blank line before them
  PDF003  bold text used as a section header
  PDF004  non-ASCII characters inside fenced code blocks

Each file is checked independently. The command exits with status 0 only
when every file exists and has no findings.

Examples:
  mdpdflint README.md                 # Check a single file
  mdpdflint docs/                     # Check every .md file below docs/
  mdpdflint --format json a.md b.md   # Machine-readable output
  mdpdflint --disable PDF003 doc.md   # Skip a rule`
