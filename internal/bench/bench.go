// Package bench is the timing harness. It wraps an arbitrary operation,
// measures its wall-clock execution time against the monotonic clock, and
// reports the elapsed time in floating-point milliseconds.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibbench/internal/format"
)

// Operation is a no-argument, no-return-value block of code to be timed.
// Side effects (such as printing) are its observable effect.
type Operation func()

// Time measures the wall-clock execution of op. time.Now carries a
// monotonic clock reading, so the elapsed value is non-negative even
// across wall-clock adjustments. The harness blocks until op returns.
func Time(op Operation) time.Duration {
	start := time.Now()
	op()
	return time.Since(start)
}

// ReportElapsed emits the human-readable timing report for an elapsed
// duration, in floating-point milliseconds with sub-millisecond precision.
func ReportElapsed(out io.Writer, elapsed time.Duration) {
	fmt.Fprintf(out, "Elapsed time: %s milliseconds\n", format.FormatMilliseconds(elapsed))
}

// Run times op and writes the timing report to out. It returns the
// measured duration so callers can aggregate it (summary tables, metrics).
func Run(out io.Writer, op Operation) time.Duration {
	elapsed := Time(op)
	ReportElapsed(out, elapsed)
	return elapsed
}
