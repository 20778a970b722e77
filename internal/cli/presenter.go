package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/stepsolve/internal/format"
	"github.com/agbru/stepsolve/internal/orchestration"
	"github.com/agbru/stepsolve/internal/solve"
	"github.com/agbru/stepsolve/internal/ui"
)

// StepPresenter renders solutions as a numbered, styled step sequence.
type StepPresenter struct {
	// Verbose includes each step's detailed explanation when present.
	Verbose bool
}

// NewStepPresenter creates a step presenter.
func NewStepPresenter(verbose bool) *StepPresenter {
	return &StepPresenter{Verbose: verbose}
}

// DisplaySolution writes the full step-by-step rendering of a solution.
// Steps are rendered strictly in order.
//
// Parameters:
//   - input: The raw problem text, echoed as the header.
//   - sol: The solution to render.
//   - out: The output writer.
func (p *StepPresenter) DisplaySolution(input string, sol solve.Solution, out io.Writer) {
	styles := ui.GetCurrentStepStyles()

	fmt.Fprintf(out, "\n%s\n", styles.Header.Render("Problem: "+input))

	for i, step := range sol.Steps {
		fmt.Fprintf(out, "\n%s\n", styles.StepLabel.Render(fmt.Sprintf("Step %d: %s", i+1, step.Description)))
		fmt.Fprintf(out, "    %s\n", styles.Formula.Render(step.Formula))
		if step.Explanation != "" {
			fmt.Fprintf(out, "    %s\n", styles.Explanation.Render(step.Explanation))
		}
		if p.Verbose && step.DetailedExplanation != "" {
			fmt.Fprintf(out, "    %s\n", styles.Meta.Render(step.DetailedExplanation))
		}
	}

	fmt.Fprintln(out)
	if sol.IsError() {
		fmt.Fprintf(out, "%s\n", styles.Error.Render("Result: "+sol.Result))
	} else {
		fmt.Fprintf(out, "%s\n", styles.Result.Render("Result: "+sol.Result))
	}
	fmt.Fprintf(out, "%s\n", styles.Meta.Render(fmt.Sprintf("type: %s, difficulty: %s", sol.Type, sol.Difficulty)))

	if sol.Visualization != nil {
		p.displayVisualization(sol.Visualization, styles, out)
	}
}

// displayVisualization renders the plotting hint attached to a solution.
func (p *StepPresenter) displayVisualization(viz *solve.VisualizationData, styles ui.StepStyles, out io.Writer) {
	line := fmt.Sprintf("plot: %s for %s in [%s, %s]",
		viz.Expression, viz.Variable,
		format.Number(viz.XRange[0]), format.Number(viz.XRange[1]))
	if len(viz.SolutionPoints) > 0 {
		points := make([]string, len(viz.SolutionPoints))
		for i, pt := range viz.SolutionPoints {
			points[i] = format.Number(pt)
		}
		line += ", roots marked at " + strings.Join(points, ", ")
	}
	fmt.Fprintf(out, "%s\n", styles.Meta.Render(line))
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI
// output: a formatted, colorized per-input outcome table for batch runs.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentBatchTable displays the batch outcome table with inputs,
// durations, solution types, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentBatchTable(results []orchestration.BatchResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Batch Summary ---\n")

	// Find the maximum column widths for proper alignment
	maxInputLen := 5 // "Input" header length
	maxTypeLen := 4  // "Type" header length
	for _, res := range results {
		if len(res.Input) > maxInputLen {
			maxInputLen = len(res.Input)
		}
		if len(res.Solution.Type) > maxTypeLen {
			maxTypeLen = len(res.Solution.Type)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sInput%s%s   %sType%s%s   %sDuration%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxInputLen-5),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxTypeLen-4),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status, typ string
		switch {
		case res.Err != nil:
			typ = "-"
			status = fmt.Sprintf("%s❌ Canceled (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		case !res.Claimed:
			typ = "-"
			status = fmt.Sprintf("%s❌ No solver%s", ui.ColorRed(), ui.ColorReset())
		case res.Solution.IsError():
			typ = res.Solution.Type
			status = fmt.Sprintf("%s❌ Failure%s", ui.ColorRed(), ui.ColorReset())
		default:
			typ = res.Solution.Type
			status = fmt.Sprintf("%s✅ %s%s", ui.ColorGreen(), res.Solution.Result, ui.ColorReset())
		}

		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%8s%s   %s\n",
			ui.ColorBlue(), res.Input, ui.ColorReset(), padRight("", maxInputLen-len(res.Input)),
			ui.ColorCyan(), typ, ui.ColorReset(), padRight("", maxTypeLen-len(typ)),
			ui.ColorYellow(), duration, ui.ColorReset(),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayMemoryStats shows memory statistics after a batch run.
func DisplayMemoryStats(heapAllocMB float64, gcCycles uint32, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:  %.1f MiB\n", heapAllocMB)
	fmt.Fprintf(out, "  GC cycles:  %d\n", gcCycles)
}
