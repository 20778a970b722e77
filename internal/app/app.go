// Package app wires configuration, solvers, metrics, and presentation into
// the runnable application. It owns mode selection (single-shot, batch,
// REPL, completion) and the process lifecycle: timeout, signal handling,
// and exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/stepsolve/internal/cli"
	"github.com/agbru/stepsolve/internal/config"
	apperrors "github.com/agbru/stepsolve/internal/errors"
	"github.com/agbru/stepsolve/internal/logging"
	"github.com/agbru/stepsolve/internal/metrics"
	"github.com/agbru/stepsolve/internal/solve"
	"github.com/agbru/stepsolve/internal/ui"
)

// Application represents the stepsolve application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *solve.Registry
	Metrics   *metrics.Metrics
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom solver registry for the application.
func WithRegistry(r *solve.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector, including the program name.
//   - errWriter: The writer for usage and error output.
//   - opts: Optional construction hooks.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError for
//     invalid arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "stepsolve"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveWorkers(cfg)
	app.Config = cfg

	if app.Registry == nil {
		app.Registry = solve.NewDefaultRegistry(
			solve.WithLogger(logging.NewLogger(errWriter, "solve")))
	}
	app.Metrics = metrics.NewMetrics()

	return app, nil
}

// Run executes the application based on the configured mode.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	a.configureLogging()
	// Theme selection first, then the no-color override on top.
	ui.SetTheme(a.Config.Theme)
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.REPL:
		return a.runREPL(ctx)
	case a.Config.BatchFile != "":
		return a.runBatch(ctx, out)
	default:
		return a.runSingle(ctx, out)
	}
}

// configureLogging sets the global log level from the verbosity flags.
func (a *Application) configureLogging() {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL launches the interactive read-solve loop.
func (a *Application) runREPL(ctx context.Context) int {
	repl := cli.NewREPL(a.Registry, cli.REPLConfig{
		JSON:    a.Config.JSON,
		Verbose: a.Config.Verbose,
	})
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// CodeForError maps a construction error to a process exit code.
func CodeForError(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	var cfgErr apperrors.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
