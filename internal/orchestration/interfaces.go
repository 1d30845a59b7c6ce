package orchestration

import (
	"io"
	"time"
)

// BenchmarkResult encapsulates the outcome of a single benchmarked
// algorithm run. It is the shared domain type between orchestration and
// presentation layers.
type BenchmarkResult struct {
	// Name is the identifier of the algorithm (e.g., "Iterative").
	Name string
	// Value is the computed Fibonacci number. Valid only when Err is nil
	// and Skipped is false.
	Value int64
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
	// Skipped is true when the run was suppressed by the recursive limit.
	Skipped bool
}

// ResultPresenter defines the interface for presenting benchmark output.
// It decouples the orchestration layer from presentation concerns, so the
// same run loop drives the CLI, quiet mode, and the TUI.
type ResultPresenter interface {
	// PresentRunResult displays one algorithm's computed value. It is
	// invoked inside the timed section, matching the contract that the
	// algorithm run itself prints its result while the harness prints
	// the timing line.
	PresentRunResult(name string, value int64, out io.Writer)

	// PresentRunError displays a failed run.
	PresentRunError(name string, err error, out io.Writer)

	// PresentComparisonTable displays the summary table of all runs.
	PresentComparisonTable(results []BenchmarkResult, out io.Writer)
}

// RunObserver receives lifecycle notifications for long runs. The
// orchestrator notifies it only for exponential-cost algorithms, where
// a progress indication is worth having.
type RunObserver interface {
	RunStarted(name string)
	RunCompleted(name string)
}

// NullRunObserver is a no-op RunObserver.
type NullRunObserver struct{}

// RunStarted does nothing.
func (NullRunObserver) RunStarted(string) {}

// RunCompleted does nothing.
func (NullRunObserver) RunCompleted(string) {}
