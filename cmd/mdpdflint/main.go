// Package main is the entry point for the mdpdflint CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/yaklabco/mdpdflint/internal/cli"
	"github.com/yaklabco/mdpdflint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/mdpdflint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// maxprocs.Set only fails on an invalid GOMAXPROCS value; the runtime default is kept then.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logging.Default().Debugf(format, args...)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, cli.ErrIssuesFound):
		// Issues were already reported; only the exit code remains.
	case errors.Is(err, cli.ErrUsage):
		// Usage was already printed by the command.
		logging.Default().Error("invalid usage", logging.FieldError, err)
	default:
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
