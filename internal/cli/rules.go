package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpdflint/internal/ui/pretty"
	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/lint"
)

type rulesFlags struct {
	format string
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Enabled     bool     `json:"enabled"`
}

func newRulesCommand(globals *globalFlags) *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List every built-in rule with its ID, name and description.
The ENABLED column reflects the configuration that a check run from the
current directory would use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, globals, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func runRules(cmd *cobra.Command, globals *globalFlags, flags *rulesFlags) error {
	ctx := commandContext(cmd)

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("color") {
		cliCfg.Color = globals.color
	}

	cfg, err := loadConfig(ctx, globals, cliCfg)
	if err != nil {
		return err
	}

	resolved := lint.ResolveAll(lint.DefaultRegistry, cfg)
	out := cmd.OutOrStdout()

	switch config.OutputFormat(flags.format) {
	case config.FormatJSON:
		return outputRulesJSON(out, resolved)
	case config.FormatText:
		styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
		table := pretty.NewRuleTableFormatter(styles, pretty.TerminalWidth(out))
		_, err := io.WriteString(out, table.FormatRules(resolved))
		return err
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, flags.format)
	}
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(out io.Writer, rules []lint.ResolvedRule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rr := range rules {
		infos = append(infos, ruleInfo{
			ID:          rr.Rule.ID(),
			Name:        rr.Rule.Name(),
			Description: rr.Rule.Description(),
			Tags:        rr.Rule.Tags(),
			Enabled:     rr.Enabled,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
