package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/mdpdflint/internal/configloader"
	"github.com/yaklabco/mdpdflint/internal/ui/pretty"
)

// minFlagGap is the number of spaces pflag leaves between a flag and its description.
const minFlagGap = 2

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			Description: plain,
			Dim:         plain,
		}
	}

	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Description: lipgloss.NewStyle(),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

const helpHeaderTemplate = `{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{with (or .Long .Short)}}{{ trimTrailingWhitespaces . }}

{{end}}`

const usageTemplate = `{{ styleHeading "Usage:" }}
{{- if .Runnable}}
  {{ styleCommand .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ styleCommand .CommandPath }} [command]{{end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlags .InheritedFlags }}
{{- end}}

{{- if not .HasParent}}

{{ styleHeading "Environment:" }}
{{ envVars }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":            h.styles.Command.Render,
		"styleHeading":            h.styles.Heading.Render,
		"styleSubcommand":         h.styles.Subcommand.Render,
		"styleDescription":        h.styles.Description.Render,
		"styleDim":                h.styles.Dim.Render,
		"styleFlags":              h.styleFlags,
		"envVars":                 h.envVars,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

// ApplyToCommand installs the styled help and usage on cmd. Subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()
	usageTmpl := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	helpTmpl := template.Must(template.New("help").Funcs(funcs).Parse(helpHeaderTemplate + usageTemplate))

	render := func(tmpl *template.Template, command *cobra.Command) error {
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			return fmt.Errorf("render %s: %w", tmpl.Name(), err)
		}
		return nil
	}

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return render(usageTmpl, command)
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(helpTmpl, command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// styleFlags styles each line of a flag set's usage text.
func (h *HelpFormatter) styleFlags(flags *pflag.FlagSet) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles "  -f, --flag type   description".
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}

	flagPart, desc, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}

	tokens := strings.Fields(flagPart)
	for i, token := range tokens {
		if !strings.HasPrefix(token, "-") {
			tokens[i] = h.styles.Dim.Render(token)
			continue
		}
		clean := strings.TrimSuffix(token, ",")
		tokens[i] = h.styles.Flag.Render(clean) + strings.TrimPrefix(token, clean)
	}

	indent := line[:len(line)-len(trimmed)]
	return indent + strings.Join(tokens, " ") + "   " + h.styles.Description.Render(desc)
}

// splitFlagLine splits at the first run of at least minFlagGap spaces.
func splitFlagLine(line string) (string, string, bool) {
	idx := strings.Index(line, strings.Repeat(" ", minFlagGap))
	if idx < 0 {
		return line, "", false
	}
	return line[:idx], strings.TrimLeft(line[idx:], " "), true
}

// envVars lists the supported environment variables, sorted by name.
func (h *HelpFormatter) envVars() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+h.styles.Flag.Render(rpad(name, width))+"   "+h.styles.Description.Render(vars[name]))
	}
	return strings.Join(lines, "\n")
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
