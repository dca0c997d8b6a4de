package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpdflint/pkg/config"
	"github.com/yaklabco/mdpdflint/pkg/lint"
	"github.com/yaklabco/mdpdflint/pkg/lint/rules"
	"github.com/yaklabco/mdpdflint/pkg/runner"
)

func newRunner() *runner.Runner {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return runner.New(lint.NewEngine(registry))
}

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestNew(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(lint.NewRegistry())
	assert.Same(t, engine, runner.New(engine).Engine)
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{Config: config.NewConfig()})
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.False(t, result.Failed())
}

func TestRunner_Run_CleanFile(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{"clean.md": "# Title\n\nText.\n"})

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"clean.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, "clean.md", result.Files[0].Path)
	require.NoError(t, result.Files[0].Error)
	assert.Empty(t, result.Files[0].Diagnostics())
	assert.Equal(t, 1, result.Stats.FilesChecked)
	assert.False(t, result.Failed())
}

func TestRunner_Run_WithDiagnostics(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"bad.md": "Intro\n- item\n\n```\n→\n```\n",
	})

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"bad.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	diags := result.Files[0].Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, "PDF001", diags[0].RuleID)
	assert.Equal(t, 2, diags[0].Line)
	assert.Equal(t, "bad.md", diags[0].FilePath)
	assert.Equal(t, "PDF004", diags[1].RuleID)
	assert.Equal(t, 5, diags[1].Line)

	assert.Equal(t, 2, result.Stats.DiagnosticsTotal)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.DiagnosticsByRule["PDF001"])
	assert.True(t, result.HasIssues())
	assert.True(t, result.Failed())
}

func TestRunner_Run_MissingFileContinues(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{"ok.md": "Text\n"})

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"missing.md", "ok.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, "missing.md", result.Files[0].Path)
	require.ErrorIs(t, result.Files[0].Error, runner.ErrFileNotFound)
	assert.Nil(t, result.Files[0].Result)

	assert.Equal(t, "ok.md", result.Files[1].Path)
	require.NoError(t, result.Files[1].Error)

	assert.Equal(t, 1, result.Stats.FilesMissing)
	assert.Equal(t, 1, result.Stats.FilesChecked)
	assert.False(t, result.HasIssues())
	assert.True(t, result.Failed())
}

func TestRunner_Run_UnreadableFileIsFatal(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	dir := writeDocs(t, map[string]string{"locked.md": "Text\n"})
	require.NoError(t, os.Chmod(filepath.Join(dir, "locked.md"), 0o000))

	_, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"locked.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.ErrorIs(t, err, runner.ErrReadFailure)
}

func TestRunner_Run_RepeatedFileReportedEachTime(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{"a.md": "Intro\n- item\n"})

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"a.md", "a.md", "./a.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	for _, outcome := range result.Files {
		assert.Len(t, outcome.Diagnostics(), 1, outcome.Path)
	}
	assert.Equal(t, 3, result.Stats.DiagnosticsTotal)
}

func TestRunner_Run_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	files := make(map[string]string)
	var paths []string
	for idx := range 40 {
		name := fmt.Sprintf("doc%02d.md", 39-idx)
		files[name] = "Intro\n| a |\n"
		paths = append(paths, name)
	}
	dir := writeDocs(t, files)

	for _, jobs := range []int{1, 4, 16} {
		result, err := newRunner().Run(context.Background(), runner.Options{
			Paths:      paths,
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		require.NoError(t, err)

		require.Len(t, result.Files, len(paths))
		for idx, outcome := range result.Files {
			assert.Equal(t, paths[idx], outcome.Path, "jobs=%d", jobs)
			assert.Len(t, outcome.Diagnostics(), 1, "jobs=%d", jobs)
		}
	}
}

func TestRunner_Run_DisabledRule(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{"doc.md": "Intro\n- item\n"})
	cfg := config.NewConfig()
	cfg.DisableRules = []string{"blank-line-before-list"}

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"doc.md"},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Files[0].Diagnostics())
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{"doc.md": "Text\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{
		Paths:      []string{"doc.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasMissing())
	assert.False(t, result.Failed())
}
