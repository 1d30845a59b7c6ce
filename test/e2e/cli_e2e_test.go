package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and exercises it end to end.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "fibbench"
	if runtime.GOOS == "windows" {
		binName = "fibbench.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/fibbench")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build fibbench: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Basic Calculation",
			args:     []string{"-n", "10"},
			wantOut:  "Iterative: 55",
			wantCode: 0,
		},
		{
			name:     "Timing Report",
			args:     []string{"-n", "10"},
			wantOut:  "Elapsed time:",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Default Index",
			args:     nil,
			wantOut:  "2880067194370816120",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-n", "10", "--quiet"},
			wantOut:  "55",
			wantCode: 0,
		},
		{
			name:     "Single Algorithm",
			args:     []string{"-n", "20", "--algo", "iterative"},
			wantOut:  "Iterative: 6765",
			wantCode: 0,
		},
		{
			name:     "Index Out Of Range",
			args:     []string{"-n", "93"},
			wantOut:  "overflows",
			wantCode: 4,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "fibbench",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("command failed unexpectedly: %v\noutput: %s", err, outStr)
				}
			} else {
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					t.Fatalf("expected exit code %d, got err=%v\noutput: %s", tt.wantCode, err, outStr)
				}
				if exitErr.ExitCode() != tt.wantCode {
					t.Errorf("exit code = %d, want %d\noutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
