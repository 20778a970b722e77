package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/stepsolve/internal/errors"
)

// EnvPrefix is the prefix of all environment variables the application
// reads for configuration overrides.
const EnvPrefix = "STEPSOLVE_"

// DefaultTimeout bounds a whole run (single-shot, batch, or one REPL
// evaluation round).
const DefaultTimeout = 1 * time.Minute

// Valid theme names accepted by --theme.
var validThemes = map[string]bool{"dark": true, "light": true, "none": true}

// AppConfig holds the complete runtime configuration of the application.
// Resolution priority: CLI flags > environment variables > defaults.
type AppConfig struct {
	// Expression is the single-shot input (expression or equation) taken
	// from the positional arguments.
	Expression string
	// BatchFile is the path of a file with one input per line; non-empty
	// selects batch mode.
	BatchFile string
	// REPL selects the interactive read-solve loop.
	REPL bool
	// JSON switches solution output to JSON.
	JSON bool
	// Workers bounds batch concurrency; 0 means adaptive.
	Workers int
	// Quiet suppresses progress display and decorative output.
	Quiet bool
	// Verbose includes the detailed explanations of each step.
	Verbose bool
	// NoColor disables colored output.
	NoColor bool
	// Theme selects the color theme: dark, light, or none.
	Theme string
	// ShowMetrics prints a metrics summary after a batch run.
	ShowMetrics bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Completion, when non-empty, generates a shell completion script and
	// exits ("bash", "zsh", "fish", "powershell").
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and
// validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError for
//     invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Theme:   "dark",
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.BatchFile, "file", "", "solve inputs from a file, one per line")
	fs.StringVar(&cfg.BatchFile, "f", "", "shorthand for --file")
	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive read-solve loop")
	fs.BoolVar(&cfg.REPL, "i", false, "shorthand for --repl")
	fs.BoolVar(&cfg.JSON, "json", false, "emit solutions as JSON")
	fs.BoolVar(&cfg.JSON, "j", false, "shorthand for --json")
	fs.IntVar(&cfg.Workers, "workers", 0, "batch concurrency (0 = adaptive)")
	fs.IntVar(&cfg.Workers, "w", 0, "shorthand for --workers")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress and decorative output")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for --quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "include detailed step explanations")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Theme, "theme", "dark", "color theme: dark, light, none")
	fs.BoolVar(&cfg.ShowMetrics, "metrics", false, "print a metrics summary after a batch run")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run time")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a completion script: bash, zsh, fish, powershell")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options] [expression or equation]\n\n", programName)
		fmt.Fprintf(errWriter, "Solves arithmetic expressions and single-variable equations with\n")
		fmt.Fprintf(errWriter, "step-by-step explanations.\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nExamples:\n")
		fmt.Fprintf(errWriter, "  %s \"2 + 2 * 3\"\n", programName)
		fmt.Fprintf(errWriter, "  %s \"x^2 - 5x + 6 = 0\"\n", programName)
		fmt.Fprintf(errWriter, "  %s --file problems.txt --workers 4\n", programName)
		fmt.Fprintf(errWriter, "  %s --repl\n", programName)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// The input may arrive as several positional arguments
	// ("stepsolve 2 + 2"); they are one expression.
	cfg.Expression = strings.TrimSpace(strings.Join(fs.Args(), " "))

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations that cannot be executed.
func validate(cfg AppConfig) error {
	if cfg.Workers < 0 {
		return apperrors.NewConfigError("workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %v", cfg.Timeout)
	}
	if !validThemes[cfg.Theme] {
		return apperrors.NewConfigError("unknown theme %q (accepted values: dark, light, none)", cfg.Theme)
	}
	if cfg.REPL && cfg.BatchFile != "" {
		return apperrors.NewConfigError("--repl and --file are mutually exclusive")
	}
	if cfg.Completion != "" {
		return nil
	}
	if !cfg.REPL && cfg.BatchFile == "" && cfg.Expression == "" {
		return apperrors.NewConfigError("nothing to solve: pass an expression, --file, or --repl")
	}
	return nil
}
