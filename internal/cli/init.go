package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpdflint/internal/configloader"
	"github.com/yaklabco/mdpdflint/internal/logging"
	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/fsutil"
	"github.com/yaklabco/mdpdflint/pkg/lint"
)

const initHeader = `# mdpdflint configuration.
# Rules may be keyed by ID (PDF001) or name (blank-line-before-list).
# Run 'mdpdflint rules' to list them.`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a .mdpdflint.yml configuration file with the default settings
and every built-in rule listed, ready to be customized.

Examples:
  mdpdflint init                      Create .mdpdflint.yml
  mdpdflint init --force              Overwrite an existing file
  mdpdflint init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ConfigFileNames[0], "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := commandContext(cmd)
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

	content, err := defaultConfigFile(lint.DefaultRegistry).ToYAMLWithHeader(initHeader)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	replaced, err := fsutil.CreateFile(ctx, flags.output, content, fsutil.DefaultFileMode, flags.force)
	if errors.Is(err, fsutil.ErrExists) {
		return fmt.Errorf("%w: %q already exists; use --force to overwrite", ErrUsage, flags.output)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if replaced {
		logger.Warn("overwrote existing file", logging.FieldPath, flags.output)
	}
	logger.Info("created configuration file", logging.FieldPath, flags.output)

	return nil
}

// defaultConfigFile returns the defaults with an explicit entry for every rule.
func defaultConfigFile(registry *lint.Registry) *config.Config {
	cfg := config.NewConfig()
	for _, rule := range registry.Rules() {
		enabled := rule.DefaultEnabled()
		cfg.Rules[rule.ID()] = config.RuleConfig{Enabled: &enabled}
	}
	return cfg
}
