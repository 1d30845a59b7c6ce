// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Present* methods implement the orchestration presenter interfaces.

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fibbench/internal/config"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/metrics"
)

// DisplayExecutionConfig shows the session parameters before the runs.
func DisplayExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "Benchmarking F(%d) (recursive limit: %d, timeout: %s)\n",
		cfg.N, cfg.RecursiveLimit, cfg.Timeout)
}

// DisplayMemoryStats shows memory statistics after a benchmark session.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Total from OS:   %s\n", format.FormatBytes(snap.Sys))
	fmt.Fprintf(out, "  Heap objects:    %d\n", snap.HeapObjects)
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
}

// DisplayMetricsReport dumps the session's Prometheus metrics in text
// exposition format.
func DisplayMetricsReport(recorder *metrics.Recorder, out io.Writer) {
	fmt.Fprintf(out, "\n--- Metrics ---\n")
	if err := recorder.WriteReport(out); err != nil {
		fmt.Fprintf(out, "metrics report unavailable: %v\n", err)
	}
}
