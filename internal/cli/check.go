package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpdflint/internal/configloader"
	"github.com/yaklabco/mdpdflint/internal/logging"
	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/lint"
	"github.com/yaklabco/mdpdflint/pkg/reporter"
	"github.com/yaklabco/mdpdflint/pkg/runner"
)

type checkFlags struct {
	format        string
	jobs          int
	excerptLength int
	enable        []string
	disable       []string
	ignore        []string
	compact       bool
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of files checked in parallel (0 = auto)")
	cmd.Flags().IntVar(&flags.excerptLength, "excerpt-length", config.DefaultExcerptLength,
		"characters of an offending line quoted in messages")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns skipped when expanding directories")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")
}

// cliConfig builds the CLI layer of the configuration. Only flags that were
// set explicitly override lower layers.
func (f *checkFlags) cliConfig(cmd *cobra.Command, globals *globalFlags) *config.Config {
	cfg := &config.Config{
		EnableRules:  f.enable,
		DisableRules: f.disable,
		Ignore:       f.ignore,
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if cmd.Flags().Changed("excerpt-length") {
		cfg.ExcerptLength = f.excerptLength
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = globals.color
	}

	return cfg
}

func runCheck(cmd *cobra.Command, args []string, globals *globalFlags, flags *checkFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(ctx, globals, flags.cliConfig(cmd, globals))
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", configloader.ErrConfig, err)
	}

	checker := runner.New(lint.NewEngine(lint.DefaultRegistry))

	runOpts := runner.Options{
		Paths:        args,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldFormat, format,
	)

	result, err := checker.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       cfg.Color,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("check complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesMissing, result.Stats.FilesMissing,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	if result.Stats.RuleErrors > 0 {
		return fmt.Errorf("%w: %d rule failure(s); run with --debug for details",
			ErrRuleFailures, result.Stats.RuleErrors)
	}
	if result.Failed() {
		return ErrIssuesFound
	}

	return nil
}

// loadConfig resolves configuration from every source and logs how it was built.
func loadConfig(ctx context.Context, globals *globalFlags, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: globals.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// commandContext returns the command's context with the default logger attached.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}
