package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/lint"
	"github.com/yaklabco/mdpdflint/pkg/lint/rules"
)

func testRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return registry
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// newRepo returns a temp directory marked as a VCS root so the upward
// search never escapes the test sandbox.
func newRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: newRepo(t),
		IgnoreEnv:  true,
		Registry:   testRegistry(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, cfg.Format)
	}
	if cfg.ExcerptLength != config.DefaultExcerptLength {
		t.Errorf("expected excerpt length %d, got %d", config.DefaultExcerptLength, cfg.ExcerptLength)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no config files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	root := newRepo(t)
	configPath := writeConfig(t, root, ".mdpdflint.yml", `
format: json
excerpt_length: 20
rules:
  no-bold-as-header:
    enabled: false
`)
	sub := filepath.Join(root, "docs", "guides")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: sub,
		IgnoreEnv:  true,
		Registry:   testRegistry(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Paths.Project != configPath {
		t.Errorf("expected project config %q, got %q", configPath, result.Paths.Project)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected json format, got %q", result.Config.Format)
	}
	if result.Config.ExcerptLength != 20 {
		t.Errorf("expected excerpt length 20, got %d", result.Config.ExcerptLength)
	}

	// Rule names are normalized to IDs.
	ruleCfg, ok := result.Config.Rules["PDF003"]
	if !ok {
		t.Fatalf("expected PDF003 in rules, got %v", result.Config.Rules)
	}
	if ruleCfg.Enabled == nil || *ruleCfg.Enabled {
		t.Error("expected PDF003 to be disabled")
	}
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, outer, ".mdpdflint.yml", "format: json\n")
	inner := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(inner, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, err := FindProjectConfig(context.Background(), inner)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected search to stop at VCS root, found %q", path)
	}
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	root := newRepo(t)
	writeConfig(t, root, ".mdpdflint.yaml", "format: json\njobs: 2\n")
	explicit := writeConfig(t, t.TempDir(), "custom.yml", "jobs: 8\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:   root,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
		Registry:     testRegistry(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format from project config, got %q", result.Config.Format)
	}
	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs from explicit config, got %d", result.Config.Jobs)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("unexpected LoadedFrom: %v", result.LoadedFrom)
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:   newRepo(t),
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
		IgnoreEnv:    true,
		Registry:     testRegistry(),
	})
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoad_EnvAndCLIPrecedence(t *testing.T) {
	t.Setenv("MDPDFLINT_FORMAT", "json")
	t.Setenv("MDPDFLINT_JOBS", "3")
	t.Setenv("MDPDFLINT_DISABLE", "PDF001, PDF002")

	root := newRepo(t)
	writeConfig(t, root, ".mdpdflint.yml", "format: text\njobs: 1\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: root,
		CLIConfig:  &config.Config{Jobs: 5, DisableRules: []string{"PDF004"}},
		Registry:   testRegistry(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected env format to override file, got %q", result.Config.Format)
	}
	if result.Config.Jobs != 5 {
		t.Errorf("expected CLI jobs to override env, got %d", result.Config.Jobs)
	}
	want := []string{"PDF001", "PDF002", "PDF004"}
	if strings.Join(result.Config.DisableRules, ",") != strings.Join(want, ",") {
		t.Errorf("expected disable list %v, got %v", want, result.Config.DisableRules)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("MDPDFLINT_JOBS", "many")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: newRepo(t),
		Registry:   testRegistry(),
	})
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown format", "format: sarif\n", "format"},
		{"unknown color", "color: rainbow\n", "color"},
		{"negative jobs", "jobs: -1\n", "jobs"},
		{"negative excerpt", "excerpt_length: -5\n", "excerpt_length"},
		{"bad glob", "ignore:\n  - \"[\"\n", "ignore"},
		{"bad rule option", "rules:\n  PDF001:\n    options:\n      excerpt_length: 0\n", "rules.PDF001.options.excerpt_length"},
		{"malformed yaml", "format: [\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := newRepo(t)
			writeConfig(t, root, ".mdpdflint.yml", tt.content)

			_, err := Load(context.Background(), LoadOptions{
				WorkingDir: root,
				IgnoreEnv:  true,
				Registry:   testRegistry(),
			})
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
			if tt.field == "" {
				return
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, validationErr.Field)
			}
			if filepath.Base(validationErr.FilePath) != ".mdpdflint.yml" {
				t.Errorf("expected error to name the config file, got %q", validationErr.FilePath)
			}
		})
	}
}

func TestLoad_UnknownRuleWarns(t *testing.T) {
	t.Parallel()

	root := newRepo(t)
	writeConfig(t, root, ".mdpdflint.yml", "rules:\n  MD013:\n    enabled: false\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: root,
		IgnoreEnv:  true,
		Registry:   testRegistry(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `unknown rule "MD013"`) {
		t.Errorf("expected unknown rule warning, got %v", result.Warnings)
	}
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	root := newRepo(t)
	writeConfig(t, root, ".mdpdflint.yml", `
rules:
  PDF004:
    enabled: true
  ascii-only-code-blocks:
    enabled: false
`)

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: root,
		IgnoreEnv:  true,
		Registry:   testRegistry(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "duplicate rule configuration") {
		t.Fatalf("expected duplicate warning, got %v", result.Warnings)
	}
	// Keys are processed in sorted order, so the name entry is applied last.
	if enabled := result.Config.Rules["PDF004"].Enabled; enabled == nil || *enabled {
		t.Error("expected PDF004 to be disabled by the later entry")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, LoadOptions{WorkingDir: t.TempDir(), IgnoreEnv: true})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
