package orchestration

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibbench/internal/bench"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/metrics"
)

var tracer = otel.Tracer("github.com/agbru/fibbench/internal/orchestration")

// Options configures a benchmark session.
type Options struct {
	// N is the Fibonacci index to compute.
	N uint64
	// RecursiveLimit suppresses exponential-cost runs when N is at or
	// above it.
	RecursiveLimit uint64
	// TimingOut receives the harness timing reports. Defaults to the
	// result writer when nil (quiet mode passes io.Discard).
	TimingOut io.Writer
	// Observer receives lifecycle notifications for exponential runs.
	// Defaults to NullRunObserver when nil.
	Observer RunObserver
	// Recorder collects per-run metrics. May be nil.
	Recorder *metrics.Recorder
	// Log is the session logger. Defaults to a nop logger when nil.
	Log logging.Logger
}

func (o *Options) fillDefaults(out io.Writer) {
	if o.TimingOut == nil {
		o.TimingOut = out
	}
	if o.Observer == nil {
		o.Observer = NullRunObserver{}
	}
	if o.Log == nil {
		o.Log = logging.NewNopLogger()
	}
}

// ExecuteBenchmarks runs the given calculators one at a time, each
// wrapped in the timing harness. Runs are strictly sequential so the
// wall-clock measurements never interfere with each other; the errgroup
// with SetLimit(1) preserves that ordering while keeping the whole
// session cancellable through ctx.
//
// The recursive-limit guard is applied here: exponential-cost
// calculators are skipped entirely when opts.N >= opts.RecursiveLimit,
// recorded with Skipped set rather than executed.
func ExecuteBenchmarks(ctx context.Context, calculators []fibonacci.Calculator, opts Options, presenter ResultPresenter, out io.Writer) []BenchmarkResult {
	opts.fillDefaults(out)

	results := make([]BenchmarkResult, len(calculators))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1)

	for i, calc := range calculators {
		idx, calculator := i, calc
		name := calculator.Name()

		if isExponential(calculator) && opts.N >= opts.RecursiveLimit {
			results[idx] = BenchmarkResult{Name: name, Skipped: true}
			opts.Log.Debug("run skipped by recursive limit",
				logging.String("algorithm", name),
				logging.Uint64("n", opts.N),
				logging.Uint64("recursive_limit", opts.RecursiveLimit))
			continue
		}

		g.Go(func() error {
			results[idx] = runOne(ctx, calculator, opts, presenter, out)
			return nil
		})
	}

	g.Wait()
	return results
}

// runOne executes a single benchmarked run. The result line is printed
// inside the timed operation; the harness prints the timing line after
// the operation returns.
func runOne(ctx context.Context, calculator fibonacci.Calculator, opts Options, presenter ResultPresenter, out io.Writer) BenchmarkResult {
	name := calculator.Name()

	ctx, span := tracer.Start(ctx, "benchmark.run",
		trace.WithAttributes(
			attribute.String("algorithm", name),
			attribute.Int64("n", int64(opts.N)),
		))
	defer span.End()

	exponential := isExponential(calculator)
	if exponential {
		opts.Observer.RunStarted(name)
	}

	var value int64
	var runErr error
	elapsed := bench.Time(func() {
		value, runErr = calculator.Calculate(ctx, opts.N)
		if runErr == nil {
			presenter.PresentRunResult(name, value, out)
		}
	})

	if exponential {
		opts.Observer.RunCompleted(name)
	}

	elapsedMs := format.Milliseconds(elapsed)
	span.SetAttributes(attribute.Float64("elapsed_ms", elapsedMs))

	if runErr != nil {
		presenter.PresentRunError(name, runErr, out)
		if opts.Recorder != nil {
			opts.Recorder.ObserveFailure(name)
		}
		opts.Log.Error("run failed", logging.String("algorithm", name), logging.Err(runErr))
		return BenchmarkResult{Name: name, Duration: elapsed, Err: runErr}
	}

	bench.ReportElapsed(opts.TimingOut, elapsed)
	if opts.Recorder != nil {
		opts.Recorder.ObserveRun(name, elapsedMs)
	}
	opts.Log.Debug("run completed",
		logging.String("algorithm", name),
		logging.Uint64("n", opts.N),
		logging.Float64("elapsed_ms", elapsedMs))

	return BenchmarkResult{Name: name, Value: value, Duration: elapsed}
}

// AnalyzeResults cross-validates the values produced by the executed
// algorithms and returns the process exit code. All successful runs must
// agree: the algorithms compute the same function, so any disagreement
// is a defect worth failing loudly over.
func AnalyzeResults(results []BenchmarkResult, verbose bool, presenter ResultPresenter, out io.Writer) int {
	var firstValid *BenchmarkResult
	var firstErr error
	successCount := 0

	for i := range results {
		switch {
		case results[i].Skipped:
			// Not executed; excluded from the equivalence check.
		case results[i].Err != nil:
			if firstErr == nil {
				firstErr = results[i].Err
			}
		default:
			successCount++
			if firstValid == nil {
				firstValid = &results[i]
			}
		}
	}

	if verbose {
		presenter.PresentComparisonTable(results, out)
	}

	if successCount == 0 {
		// No error and no success means every selected run was suppressed
		// by the recursive limit. That is the guard working as intended,
		// not a failure.
		if firstErr == nil {
			fmt.Fprintf(out, "\nGlobal Status: Skipped. Every selected run was suppressed by the recursive limit.\n")
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm completed a run.\n")
		return apperrors.HandleBenchmarkError(firstErr, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Skipped && res.Value != firstValid.Value {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The algorithms disagree: %s returned %d, %s returned %d.\n",
				firstValid.Name, firstValid.Value, res.Name, res.Value)
			return apperrors.ExitErrorMismatch
		}
	}

	if verbose {
		fmt.Fprintf(out, "\nGlobal Status: Success. All executed algorithms agree.\n")
	}
	return apperrors.ExitSuccess
}

// isExponential reports whether the calculator declares exponential cost.
func isExponential(calc fibonacci.Calculator) bool {
	hinter, ok := calc.(fibonacci.CostHinter)
	return ok && hinter.Exponential()
}
