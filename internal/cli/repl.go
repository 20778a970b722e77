// Package cli provides the presentation layer: step rendering, JSON
// output, batch progress display, shell completion, and the interactive
// REPL (Read-Solve-Print Loop).
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/stepsolve/internal/solve"
	"github.com/agbru/stepsolve/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// JSON starts the session in JSON output mode.
	JSON bool
	// Verbose includes detailed step explanations.
	Verbose bool
}

// REPL represents an interactive solving session.
type REPL struct {
	registry  *solve.Registry
	presenter *StepPresenter
	jsonMode  bool
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - registry: The solver registry used for dispatch.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(registry *solve.Registry, config REPLConfig) *REPL {
	return &REPL{
		registry:  registry,
		presenter: NewStepPresenter(config.Verbose),
		jsonMode:  config.JSON,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input
// and processes commands until the user exits, EOF is reached, or the
// context is canceled.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		fmt.Fprint(r.out, ui.ColorGreen()+"solve> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🧮 Step Solver - Interactive Mode%s                     %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sEnter an expression or an equation to solve it step by step.%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "%sCommands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sjson%s          - Toggle JSON output\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sverbose%s       - Toggle detailed step explanations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stheme <name>%s  - Change color theme (dark, light, none)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssolvers%s       - List registered solvers\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current session settings\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command. Anything that is not a
// recognized command is treated as a problem to solve.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "json":
		r.cmdJSON()
	case "verbose":
		r.cmdVerbose()
	case "theme":
		r.cmdTheme(args)
	case "solvers", "ls":
		r.cmdSolvers()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.solveInput(input)
	}

	return true
}

// solveInput dispatches a problem to the registry and renders the solution.
func (r *REPL) solveInput(input string) {
	solution, ok := r.registry.Solve(input)
	if !ok {
		fmt.Fprintf(r.out, "%sNo solver available for this input.%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Enter an expression like %s2 + 2%s or an equation like %sx^2 - 5x + 6 = 0%s.\n",
			ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
		return
	}

	if r.jsonMode {
		if err := DisplaySolutionJSON(r.out, input, solution); err != nil {
			fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		}
		return
	}
	r.presenter.DisplaySolution(input, solution, r.out)
	fmt.Fprintln(r.out)
}

// cmdJSON toggles JSON output mode.
func (r *REPL) cmdJSON() {
	r.jsonMode = !r.jsonMode
	status := "disabled"
	if r.jsonMode {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "JSON output: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdVerbose toggles detailed explanations.
func (r *REPL) cmdVerbose() {
	r.presenter.Verbose = !r.presenter.Verbose
	status := "disabled"
	if r.presenter.Verbose {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Detailed explanations: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdTheme handles the "theme" command.
func (r *REPL) cmdTheme(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: theme <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available themes: dark, light, none\n")
		return
	}
	name := strings.ToLower(args[0])
	ui.SetTheme(name)
	fmt.Fprintf(r.out, "Theme changed to: %s%s%s\n", ui.ColorGreen(), ui.GetCurrentTheme().Name, ui.ColorReset())
}

// cmdSolvers lists the registered solvers.
func (r *REPL) cmdSolvers() {
	fmt.Fprintf(r.out, "\n%sRegistered solvers:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, s := range r.registry.Solvers() {
		fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorYellow(), s.Type(), ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays the current session settings.
func (r *REPL) cmdStatus() {
	boolStatus := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	fmt.Fprintf(r.out, "\n%sCurrent session:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  JSON output:  %s%s%s\n", ui.ColorCyan(), boolStatus(r.jsonMode), ui.ColorReset())
	fmt.Fprintf(r.out, "  Verbose:      %s%s%s\n", ui.ColorCyan(), boolStatus(r.presenter.Verbose), ui.ColorReset())
	fmt.Fprintf(r.out, "  Theme:        %s%s%s\n", ui.ColorCyan(), ui.GetCurrentTheme().Name, ui.ColorReset())
	fmt.Fprintln(r.out)
}
