package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for
// standard console output. Each run prints a blank line for formatting
// followed by a line identifying the algorithm and its computed value;
// the harness then prints the timing line.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentRunResult prints the per-run result block header.
func (CLIResultPresenter) PresentRunResult(name string, value int64, out io.Writer) {
	fmt.Fprintf(out, "\n%s: %d\n", name, value)
}

// PresentRunError prints a failed run.
func (CLIResultPresenter) PresentRunError(name string, err error, out io.Writer) {
	fmt.Fprintf(out, "\n%s: %serror: %v%s\n", name, ui.ColorRed(), err, ui.ColorReset())
}

// PresentComparisonTable displays the summary table with algorithm
// names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.BenchmarkResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum column widths for proper alignment
	maxNameLen := 9     // "Algorithm" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := durationCell(res)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status string
		switch {
		case res.Skipped:
			status = fmt.Sprintf("%s– Skipped (recursive limit)%s", ui.ColorYellow(), ui.ColorReset())
		case res.Err != nil:
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		default:
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := durationCell(res)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// durationCell formats a result's duration for the table.
func durationCell(res orchestration.BenchmarkResult) string {
	if res.Skipped {
		return "-"
	}
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// padRight returns s followed by spaces up to the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// QuietResultPresenter implements orchestration.ResultPresenter for
// quiet mode: one computed value per line, nothing else. Suitable for
// scripting.
type QuietResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = QuietResultPresenter{}

// PresentRunResult prints the bare value.
func (QuietResultPresenter) PresentRunResult(_ string, value int64, out io.Writer) {
	fmt.Fprintf(out, "%d\n", value)
}

// PresentRunError stays silent; the exit code carries the failure.
func (QuietResultPresenter) PresentRunError(string, error, io.Writer) {}

// PresentComparisonTable stays silent in quiet mode.
func (QuietResultPresenter) PresentComparisonTable([]orchestration.BenchmarkResult, io.Writer) {}
