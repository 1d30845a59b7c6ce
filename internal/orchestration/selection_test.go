package orchestration

import (
	"testing"

	"github.com/agbru/fibbench/internal/fibonacci"
)

func TestGetCalculatorsToRun(t *testing.T) {
	t.Parallel()
	factory := fibonacci.NewDefaultFactory()

	tests := []struct {
		name      string
		algo      string
		wantCount int
	}{
		{"all returns every calculator", "all", 4},
		{"single known key", "iterative", 1},
		{"unknown key returns nil", "matrix", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calcs := GetCalculatorsToRun(tt.algo, factory)
			if len(calcs) != tt.wantCount {
				t.Errorf("GetCalculatorsToRun(%q) returned %d calculators, want %d",
					tt.algo, len(calcs), tt.wantCount)
			}
		})
	}
}
