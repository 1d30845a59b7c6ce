package config

import (
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
)

var testAlgos = []string{"recursive", "iterative", "memoized", "memoized-opt"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("fibbench", args, io.Discard, testAlgos)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.N != fibonacci.DefaultN {
		t.Errorf("N = %d, want %d", cfg.N, fibonacci.DefaultN)
	}
	if cfg.RecursiveLimit != fibonacci.DefaultRecursiveLimit {
		t.Errorf("RecursiveLimit = %d, want %d", cfg.RecursiveLimit, fibonacci.DefaultRecursiveLimit)
	}
	if cfg.Algo != "all" {
		t.Errorf("Algo = %q, want all", cfg.Algo)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Quiet || cfg.Verbose || cfg.TUI {
		t.Errorf("boolean modes should default to false: %+v", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parse(t, "-n", "20", "-recursive-limit", "25", "-algo", "iterative",
		"-quiet", "-timeout", "30s")
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.N != 20 || cfg.RecursiveLimit != 25 || cfg.Algo != "iterative" ||
		!cfg.Quiet || cfg.Timeout != 30*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"n above overflow limit", []string{"-n", "93"}},
		{"negative n", []string{"-n", "-1"}},
		{"unknown algorithm", []string{"-algo", "matrix"}},
		{"non-positive timeout", []string{"-timeout", "0s"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(t, tt.args...); err == nil {
				t.Errorf("ParseConfig(%v) should fail", tt.args)
			}
		})
	}
}

func TestParseConfigOverflowIsConfigError(t *testing.T) {
	_, err := parse(t, "-n", "93")
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigError", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag not set", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "42")
		t.Setenv(EnvPrefix+"ALGO", "memoized")
		t.Setenv(EnvPrefix+"QUIET", "yes")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.N != 42 || cfg.Algo != "memoized" || !cfg.Quiet {
			t.Errorf("env overrides not applied: %+v", cfg)
		}
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "42")
		cfg, err := parse(t, "-n", "7")
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.N != 7 {
			t.Errorf("N = %d, want flag value 7", cfg.N)
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "not-a-number")
		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.N != fibonacci.DefaultN {
			t.Errorf("N = %d, want default %d", cfg.N, fibonacci.DefaultN)
		}
	})

	t.Run("shorthand flag blocks env override", func(t *testing.T) {
		t.Setenv(EnvPrefix+"VERBOSE", "false")
		cfg, err := parse(t, "-v")
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if !cfg.Verbose {
			t.Error("explicit -v should win over FIBBENCH_VERBOSE")
		}
	})
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}
