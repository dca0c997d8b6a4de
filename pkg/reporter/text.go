package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdpdflint/internal/ui/pretty"
	"github.com/yaklabco/mdpdflint/pkg/runner"
)

// TextReporter writes one block per file: a failure report on the error
// writer, or a success line on the output writer.
type TextReporter struct {
	outStyles *pretty.Styles
	errStyles *pretty.Styles
	out       *bufio.Writer
	errOut    *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		outStyles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		errStyles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		out:       bufio.NewWriterSize(opts.Writer, bufWriterSize),
		errOut:    bufio.NewWriterSize(opts.ErrorWriter, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("report cancelled: %w", err)
		}

		total += r.reportFile(file)

		// Flush per file so stdout and stderr lines interleave in input order.
		if err := r.flush(); err != nil {
			return total, err
		}
	}

	return total, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	if file.Error != nil {
		fmt.Fprint(r.errOut, r.errStyles.FormatMissingFile(file.Path))
		return 0
	}

	diagnostics := file.Diagnostics()
	if len(diagnostics) == 0 {
		fmt.Fprint(r.out, r.outStyles.FormatSuccess(file.Path))
		return 0
	}

	fmt.Fprint(r.errOut, r.errStyles.FormatFailureBanner(file.Path))
	for idx := range diagnostics {
		fmt.Fprint(r.errOut, r.errStyles.FormatDiagnostic(&diagnostics[idx]))
	}
	fmt.Fprint(r.errOut, r.errStyles.FormatErrorCount(len(diagnostics)))

	return len(diagnostics)
}

func (r *TextReporter) flush() error {
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if err := r.errOut.Flush(); err != nil {
		return fmt.Errorf("flush error output: %w", err)
	}
	return nil
}
