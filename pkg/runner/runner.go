package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdpdflint/internal/logging"
	"github.com/yaklabco/mdpdflint/pkg/document"
	"github.com/yaklabco/mdpdflint/pkg/lint"
)

var (
	// ErrFileNotFound marks an input path that does not exist.
	// It is recorded on the file outcome and does not stop the run.
	ErrFileNotFound = errors.New("file not found")

	// ErrReadFailure marks an existing file that could not be read.
	// It aborts the run.
	ErrReadFailure = errors.New("read failure")
)

// Runner checks multiple files with a shared engine.
type Runner struct {
	// Engine checks each document.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files from opts.Paths and checks them concurrently.
// Outcomes are returned in input order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	started := time.Now()

	targets, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(targets)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(targets)

	if len(targets) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(targets))

	logger.Debug("checking files",
		logging.FieldFilesChecked, len(targets),
		logging.FieldJobs, jobs,
	)

	outcomes := make([]*FileOutcome, len(targets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, target := range targets {
		group.Go(func() error {
			outcome, err := r.checkTarget(groupCtx, target, opts)
			if err != nil {
				return err
			}
			outcomes[idx] = outcome
			return nil
		})
	}

	waitErr := group.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if waitErr != nil {
		return result, waitErr
	}
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("run complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesMissing, result.Stats.FilesMissing,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldElapsed, time.Since(started),
	)

	return result, nil
}

// checkTarget checks one file. A missing file yields an outcome carrying
// ErrFileNotFound; any other failure is returned as an error.
func (r *Runner) checkTarget(ctx context.Context, target Target, opts Options) (*FileOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	ctx = logging.WithFields(ctx, logging.FieldPath, target.Path)
	outcome := &FileOutcome{Path: target.Path}

	doc, err := document.Load(ctx, target.FullPath)
	switch {
	case errors.Is(err, document.ErrNotFound):
		outcome.Error = fmt.Errorf("%w: %s", ErrFileNotFound, target.Path)
		return outcome, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("run cancelled: %w", err)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFailure, target.Path, err)
	}

	doc.Path = target.Path

	res, err := r.Engine.CheckDocument(ctx, doc, opts.Config)
	if err != nil {
		return nil, err
	}
	outcome.Result = res
	return outcome, nil
}
