package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibbench/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge callbacks can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Messages exchanged between the bridge and the model.

// RunStartedMsg signals that a guarded (slow) run began.
type RunStartedMsg struct {
	Name       string
	Generation uint64
}

// RunResultMsg carries one algorithm's computed value as it completes.
type RunResultMsg struct {
	Name       string
	Value      int64
	Generation uint64
}

// SessionDoneMsg carries the complete session outcome.
type SessionDoneMsg struct {
	Results    []orchestration.BenchmarkResult
	ExitCode   int
	Generation uint64
}

// TickMsg drives periodic stats sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	HeapAlloc    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU/memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg signals that the session context ended.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// bridgePresenter implements orchestration.ResultPresenter by forwarding
// run results as bubbletea messages instead of writing to stdout.
type bridgePresenter struct {
	ref        *programRef
	generation uint64
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = (*bridgePresenter)(nil)

// PresentRunResult forwards a completed value to the TUI.
func (b *bridgePresenter) PresentRunResult(name string, value int64, _ io.Writer) {
	b.ref.Send(RunResultMsg{Name: name, Value: value, Generation: b.generation})
}

// PresentRunError is handled through the final session results.
func (b *bridgePresenter) PresentRunError(string, error, io.Writer) {}

// PresentComparisonTable is rendered by the model from the final results.
func (b *bridgePresenter) PresentComparisonTable([]orchestration.BenchmarkResult, io.Writer) {}

// bridgeObserver implements orchestration.RunObserver by forwarding
// run-start notifications for the guarded slow run.
type bridgeObserver struct {
	ref        *programRef
	generation uint64
}

// Verify interface compliance.
var _ orchestration.RunObserver = (*bridgeObserver)(nil)

// RunStarted notifies the TUI that a slow run began.
func (b *bridgeObserver) RunStarted(name string) {
	b.ref.Send(RunStartedMsg{Name: name, Generation: b.generation})
}

// RunCompleted is covered by the RunResultMsg that follows.
func (b *bridgeObserver) RunCompleted(string) {}
