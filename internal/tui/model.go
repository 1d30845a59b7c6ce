package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/metrics"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/sysmon"
)

// row is one algorithm line in the results panel.
type row struct {
	name     string
	value    int64
	duration time.Duration
	running  bool
	done     bool
	skipped  bool
	err      error
}

// Model is the root bubbletea model for the benchmark dashboard.
type Model struct {
	keymap KeyMap

	parentCtx   context.Context
	ctx         context.Context
	cancel      context.CancelFunc
	calculators []fibonacci.Calculator
	config      config.AppConfig
	ref         *programRef
	version     string

	rows       []row
	generation uint64
	startTime  time.Time
	done       bool
	exitCode   int
	width      int
	height     int

	heapAlloc    uint64
	numGC        uint32
	numGoroutine int
	cpuPercent   float64
	memPercent   float64
}

// NewModel creates a new dashboard model.
func NewModel(parentCtx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	rows := make([]row, len(calculators))
	for i, c := range calculators {
		rows[i] = row{name: c.Name()}
	}

	return Model{
		keymap:      DefaultKeyMap(),
		parentCtx:   parentCtx,
		ctx:         ctx,
		cancel:      cancel,
		calculators: calculators,
		config:      cfg,
		ref:         &programRef{},
		version:     version,
		rows:        rows,
		startTime:   time.Now(),
		exitCode:    apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startSessionCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RunStartedMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous session
		}
		m.setRowRunning(msg.Name)
		return m, nil

	case RunResultMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.setRowValue(msg.Name, msg.Value)
		return m, nil

	case SessionDoneMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.applyResults(msg.Results)
		m.done = true
		m.exitCode = msg.ExitCode
		return m, nil

	case TickMsg:
		if m.done {
			return m, tickCmd()
		}
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.heapAlloc = msg.HeapAlloc
		m.numGC = msg.NumGC
		m.numGoroutine = msg.NumGoroutine
		return m, nil

	case SysStatsMsg:
		m.cpuPercent = msg.CPUPercent
		m.memPercent = msg.MemPercent
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Rerun):
		if !m.done {
			return m, nil
		}
		// Cancel the finished session and start a fresh one.
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel
		for i := range m.rows {
			m.rows[i] = row{name: m.rows[i].name}
		}
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.startTime = time.Now()
		return m, tea.Batch(
			tickCmd(),
			startSessionCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}

	return m, nil
}

func (m *Model) setRowRunning(name string) {
	for i := range m.rows {
		if m.rows[i].name == name {
			m.rows[i].running = true
			return
		}
	}
}

func (m *Model) setRowValue(name string, value int64) {
	for i := range m.rows {
		if m.rows[i].name == name {
			m.rows[i].value = value
			m.rows[i].running = false
			m.rows[i].done = true
			return
		}
	}
}

func (m *Model) applyResults(results []orchestration.BenchmarkResult) {
	for _, res := range results {
		for i := range m.rows {
			if m.rows[i].name != res.Name {
				continue
			}
			m.rows[i].running = false
			m.rows[i].skipped = res.Skipped
			m.rows[i].err = res.Err
			if res.Err == nil && !res.Skipped {
				m.rows[i].done = true
				m.rows[i].value = res.Value
				m.rows[i].duration = res.Duration
			}
		}
	}
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.viewHeader()
	results := panelStyle.Width(m.panelWidth()).Render(m.viewRows())
	stats := panelStyle.Width(m.panelWidth()).Render(m.viewStats())
	footer := m.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, results, stats, footer)
}

func (m Model) panelWidth() int {
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) viewHeader() string {
	var status string
	switch {
	case m.done && m.exitCode != apperrors.ExitSuccess:
		status = statusErrorStyle.Render(fmt.Sprintf("FAILED (exit %d)", m.exitCode))
	case m.done:
		status = statusDoneStyle.Render("DONE")
	default:
		status = statusRunningStyle.Render("RUNNING")
	}
	title := titleStyle.Render(fmt.Sprintf("fibbench — F(%d)", m.config.N))
	version := versionStyle.Render(m.version)
	elapsed := versionStyle.Render(time.Since(m.startTime).Round(time.Millisecond).String())
	return headerStyle.Render(fmt.Sprintf("%s %s  %s  %s", title, version, status, elapsed))
}

func (m Model) viewRows() string {
	var b strings.Builder
	for i, r := range m.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		name := rowNameStyle.Render(fmt.Sprintf("%-18s", r.name))
		switch {
		case r.skipped:
			b.WriteString(name + rowSkippedStyle.Render(
				fmt.Sprintf("skipped (n=%d ≥ recursive limit %d)", m.config.N, m.config.RecursiveLimit)))
		case r.err != nil:
			b.WriteString(name + rowErrorStyle.Render("error: "+r.err.Error()))
		case r.running:
			b.WriteString(name + rowDurationStyle.Render("computing..."))
		case r.done:
			line := rowValueStyle.Render(fmt.Sprintf("%-22d", r.value))
			if r.duration > 0 {
				line += rowDurationStyle.Render(
					fmt.Sprintf("  %s ms", format.FormatMilliseconds(r.duration)))
			}
			b.WriteString(name + line)
		default:
			b.WriteString(name + metricLabelStyle.Render("pending"))
		}
	}
	return b.String()
}

func (m Model) viewStats() string {
	heap := metricLabelStyle.Render("heap ") + metricValueStyle.Render(format.FormatBytes(m.heapAlloc))
	gc := metricLabelStyle.Render("  gc ") + metricValueStyle.Render(fmt.Sprintf("%d", m.numGC))
	gor := metricLabelStyle.Render("  goroutines ") + metricValueStyle.Render(fmt.Sprintf("%d", m.numGoroutine))
	cpu := metricLabelStyle.Render("  cpu ") + metricValueStyle.Render(fmt.Sprintf("%.1f%%", m.cpuPercent))
	mem := metricLabelStyle.Render("  mem ") + metricValueStyle.Render(fmt.Sprintf("%.1f%%", m.memPercent))
	return heap + gc + gor + cpu + mem
}

func (m Model) viewFooter() string {
	parts := []string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		footerKeyStyle.Render("r") + footerDescStyle.Render(" rerun"),
	}
	return " " + strings.Join(parts, "  ")
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, calculators, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge callbacks can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSessionCmd returns a tea.Cmd that runs the benchmark session.
func startSessionCmd(ref *programRef, ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		presenter := &bridgePresenter{ref: ref, generation: gen}
		observer := &bridgeObserver{ref: ref, generation: gen}

		opts := orchestration.Options{
			N:              cfg.N,
			RecursiveLimit: cfg.RecursiveLimit,
			TimingOut:      io.Discard,
			Observer:       observer,
		}
		results := orchestration.ExecuteBenchmarks(ctx, calculators, opts, presenter, io.Discard)
		exitCode := orchestration.AnalyzeResults(results, false, presenter, io.Discard)

		return SessionDoneMsg{Results: results, ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		snap := metrics.NewMemoryCollector().Snapshot()
		return MemStatsMsg{
			HeapAlloc:    snap.HeapAlloc,
			NumGC:        snap.NumGC,
			PauseTotalNs: snap.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
