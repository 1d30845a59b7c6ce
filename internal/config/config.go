// Package config parses and validates the application configuration.
// Priority order: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "FIBBENCH_"

// DefaultTimeout bounds a full benchmark session. Only the guarded
// recursive run can approach it.
const DefaultTimeout = 5 * time.Minute

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// N is the Fibonacci index to compute.
	N uint64
	// RecursiveLimit is the index at or above which the naive recursive
	// algorithm is skipped.
	RecursiveLimit uint64
	// Algo selects a single algorithm key, or "all".
	Algo string
	// Timeout bounds the whole benchmark session.
	Timeout time.Duration
	// Quiet suppresses everything but the computed values.
	Quiet bool
	// Verbose adds the comparison table, memory stats and metrics dump.
	Verbose bool
	// TUI launches the interactive dashboard instead of the CLI run.
	TUI bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result. availableAlgos lists the algorithm keys accepted by -algo.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Uint64Var(&cfg.N, "n", fibonacci.DefaultN, "Fibonacci index to compute (0..92)")
	fs.Uint64Var(&cfg.RecursiveLimit, "recursive-limit", fibonacci.DefaultRecursiveLimit,
		"skip the naive recursive run when n is at or above this index")
	fs.StringVar(&cfg.Algo, "algo", "all",
		fmt.Sprintf("algorithm to run: %s or all", strings.Join(availableAlgos, ", ")))
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "overall time limit for the session")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the computed values")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print the comparison summary, memory stats and metrics")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.N > fibonacci.MaxNativeIndex {
		return apperrors.NewConfigError(
			"n=%d is out of range: F(n) overflows int64 above n=%d", c.N, fibonacci.MaxNativeIndex)
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Algo == "all" {
		return nil
	}
	for _, key := range availableAlgos {
		if c.Algo == key {
			return nil
		}
	}
	return apperrors.NewConfigError(
		"unknown algorithm %q (available: %s, all)", c.Algo, strings.Join(availableAlgos, ", "))
}
