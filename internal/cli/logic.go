package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirsize/internal/dirsize"
)

func logic(ctx context.Context, options dirsize.Options, out io.Writer) error {
	enableProgress := !options.JSON &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	report, err := dirsize.Analyze(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if options.Sort {
		report = report.SortedBySize()
	}

	switch {
	case options.JSON && options.Summary:
		return PrintJSON(report.Summary(), out)
	case options.JSON:
		return PrintJSON(report, out)
	case options.Summary:
		return PrintSummary(report, out, DisplayWidth(out))
	default:
		return PrintText(report, out, DisplayWidth(out), options.Chart)
	}
}
