package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibbench/internal/orchestration"
)

// SpinnerRefreshRate defines the refresh frequency of the progress spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal
// spinner. It decouples the progress observer from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}

// SpinnerRunObserver implements orchestration.RunObserver with a terminal
// spinner. The orchestrator only notifies it for exponential-cost runs,
// which are the only ones slow enough for a spinner to be visible.
type SpinnerRunObserver struct {
	spinner Spinner
}

// Verify interface compliance.
var _ orchestration.RunObserver = (*SpinnerRunObserver)(nil)

// NewSpinnerRunObserver creates an observer animating on w (typically
// stderr, so the spinner never mixes with result output).
func NewSpinnerRunObserver(w io.Writer) *SpinnerRunObserver {
	return &SpinnerRunObserver{spinner: newSpinner(w)}
}

// RunStarted starts the spinner for a long run.
func (o *SpinnerRunObserver) RunStarted(name string) {
	o.spinner.UpdateSuffix(fmt.Sprintf(" Computing %s (exponential)...", name))
	o.spinner.Start()
}

// RunCompleted stops the spinner.
func (o *SpinnerRunObserver) RunCompleted(string) {
	o.spinner.Stop()
}
