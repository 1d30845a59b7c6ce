package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibbench/internal/orchestration"
)

func TestCLIPresentRunResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentRunResult("Iterative", 55, &buf)

	// Exact per-run block shape: blank line, then "Name: value".
	if got, want := buf.String(), "\nIterative: 55\n"; got != want {
		t.Errorf("PresentRunResult output = %q, want %q", got, want)
	}
}

func TestCLIPresentRunError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentRunError("Iterative", errors.New("boom"), &buf)
	if !strings.Contains(buf.String(), "Iterative") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("PresentRunError output = %q, want name and error", buf.String())
	}
}

func TestCLIPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.BenchmarkResult{
		{Name: "Iterative", Value: 55, Duration: 3 * time.Microsecond},
		{Name: "Recursive", Skipped: true},
		{Name: "Memoized", Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Comparison Summary", "Algorithm", "Duration", "Status",
		"Iterative", "Recursive", "Skipped", "Memoized", "Failure"} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison table missing %q:\n%s", want, out)
		}
	}
}

func TestQuietPresenter(t *testing.T) {
	t.Parallel()

	t.Run("value only", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		QuietResultPresenter{}.PresentRunResult("Iterative", 6765, &buf)
		if got, want := buf.String(), "6765\n"; got != want {
			t.Errorf("quiet output = %q, want %q", got, want)
		}
	})

	t.Run("errors and tables are silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		QuietResultPresenter{}.PresentRunError("Iterative", errors.New("boom"), &buf)
		QuietResultPresenter{}.PresentComparisonTable(nil, &buf)
		if buf.Len() != 0 {
			t.Errorf("quiet mode wrote %q, want nothing", buf.String())
		}
	})
}

// fakeSpinner records spinner interactions.
type fakeSpinner struct {
	started, stopped int
	suffix           string
}

func (f *fakeSpinner) Start()                     { f.started++ }
func (f *fakeSpinner) Stop()                      { f.stopped++ }
func (f *fakeSpinner) UpdateSuffix(suffix string) { f.suffix = suffix }

func TestSpinnerRunObserver(t *testing.T) {
	t.Parallel()
	fake := &fakeSpinner{}
	observer := &SpinnerRunObserver{spinner: fake}

	observer.RunStarted("Recursive")
	if fake.started != 1 {
		t.Errorf("spinner started %d times, want 1", fake.started)
	}
	if !strings.Contains(fake.suffix, "Recursive") {
		t.Errorf("spinner suffix = %q, want algorithm name", fake.suffix)
	}

	observer.RunCompleted("Recursive")
	if fake.stopped != 1 {
		t.Errorf("spinner stopped %d times, want 1", fake.stopped)
	}
}
