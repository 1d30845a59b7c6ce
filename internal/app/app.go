package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fibbench/internal/cli"
	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/metrics"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/tui"
	"github.com/agbru/fibbench/internal/ui"
)

// Application represents the fibbench application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	ErrWriter io.Writer
	Log       logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	programName := "fibbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	app.Log = logging.NewLogger(errWriter, "fibbench")
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.configureLogLevel()
	ui.InitTheme(false)

	// Session lifecycle: overall timeout plus SIGINT/SIGTERM.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	if len(calculatorsToRun) == 0 {
		a.Log.Error("no calculators selected", logging.String("algo", a.Config.Algo))
		return apperrors.ExitErrorConfig
	}

	if a.Config.TUI {
		return tui.Run(ctx, calculatorsToRun, a.Config, Version)
	}

	return a.runBenchmarks(ctx, calculatorsToRun, out)
}

// runBenchmarks drives the CLI benchmark session.
func (a *Application) runBenchmarks(ctx context.Context, calculators []fibonacci.Calculator, out io.Writer) int {
	recorder := metrics.NewRecorder()

	var presenter orchestration.ResultPresenter
	var observer orchestration.RunObserver
	timingOut := io.Writer(out)
	analysisOut := io.Writer(out)

	if a.Config.Quiet {
		presenter = cli.QuietResultPresenter{}
		observer = orchestration.NullRunObserver{}
		timingOut = io.Discard
		analysisOut = a.ErrWriter
	} else {
		presenter = cli.CLIResultPresenter{}
		observer = cli.NewSpinnerRunObserver(a.ErrWriter)
		if a.Config.Verbose {
			cli.DisplayExecutionConfig(a.Config, out)
		}
	}

	opts := orchestration.Options{
		N:              a.Config.N,
		RecursiveLimit: a.Config.RecursiveLimit,
		TimingOut:      timingOut,
		Observer:       observer,
		Recorder:       recorder,
		Log:            a.Log,
	}
	results := orchestration.ExecuteBenchmarks(ctx, calculators, opts, presenter, out)
	exitCode := orchestration.AnalyzeResults(results, a.Config.Verbose, presenter, analysisOut)

	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
		cli.DisplayMetricsReport(recorder, out)
	}

	return exitCode
}

// configureLogLevel sets the global zerolog level from the configuration:
// debug when verbose, disabled when quiet, info otherwise.
func (a *Application) configureLogLevel() {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
