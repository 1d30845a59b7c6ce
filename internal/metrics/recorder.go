// Package metrics records per-run measurements into a local Prometheus
// registry and exposes runtime memory snapshots. There is no scrape
// endpoint; the gathered families are rendered as text on demand
// (verbose mode), keeping the process network-free.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder owns the process-local Prometheus registry and the benchmark
// collectors registered on it.
type Recorder struct {
	registry    *prometheus.Registry
	runDuration *prometheus.HistogramVec
	runsTotal   *prometheus.CounterVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fibbench",
		Name:      "run_duration_milliseconds",
		Help:      "Wall-clock duration of a single benchmarked algorithm run.",
		// Runs span six orders of magnitude: microseconds for the linear
		// algorithms, seconds for the guarded recursive one.
		Buckets: prometheus.ExponentialBuckets(0.001, 10, 8),
	}, []string{"algorithm"})

	r.runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fibbench",
		Name:      "runs_total",
		Help:      "Completed benchmark runs by algorithm and outcome.",
	}, []string{"algorithm", "outcome"})

	r.registry.MustRegister(r.runDuration, r.runsTotal)
	return r
}

// ObserveRun records one completed run.
func (r *Recorder) ObserveRun(algorithm string, elapsedMs float64) {
	r.runDuration.WithLabelValues(algorithm).Observe(elapsedMs)
	r.runsTotal.WithLabelValues(algorithm, "success").Inc()
}

// ObserveFailure records one failed run.
func (r *Recorder) ObserveFailure(algorithm string) {
	r.runsTotal.WithLabelValues(algorithm, "failure").Inc()
}

// WriteReport renders the gathered metric families in Prometheus text
// exposition format.
func (r *Recorder) WriteReport(out io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(out, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
