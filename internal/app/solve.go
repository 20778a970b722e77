package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/stepsolve/internal/cli"
	apperrors "github.com/agbru/stepsolve/internal/errors"
	"github.com/agbru/stepsolve/internal/metrics"
	"github.com/agbru/stepsolve/internal/orchestration"
)

// runSingle solves the one positional input and renders the solution.
func (a *Application) runSingle(ctx context.Context, out io.Writer) int {
	if err := ctx.Err(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Canceled: %v\n", err)
		return apperrors.ExitErrorCanceled
	}

	input := a.Config.Expression

	a.Metrics.IncrementActiveSolves()
	start := time.Now()
	solver, claimed := a.Registry.SolverFor(input)
	if !claimed {
		a.Metrics.DecrementActiveSolves()
		a.Metrics.ObserveUnclaimed()
		fmt.Fprintf(a.ErrWriter, "No solver available for input: %s\n", input)
		return apperrors.ExitErrorInput
	}
	solution := solver.Solve(input)
	a.Metrics.DecrementActiveSolves()
	a.Metrics.ObserveSolve(solver.Type(), solution.Type, solution.IsError(), time.Since(start))

	switch {
	case a.Config.JSON:
		if err := cli.DisplaySolutionJSON(out, input, solution); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	case a.Config.Quiet:
		cli.DisplayQuietResult(out, solution)
	default:
		cli.NewStepPresenter(a.Config.Verbose).DisplaySolution(input, solution, out)
	}

	if solution.IsError() {
		return apperrors.ExitErrorInput
	}
	return apperrors.ExitSuccess
}

// runBatch solves every input in the batch file concurrently and prints the
// per-input summary.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	inputs, err := readBatchInputs(a.Config.BatchFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error reading batch file: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	if len(inputs) == 0 {
		fmt.Fprintf(a.ErrWriter, "Batch file contains no inputs: %s\n", a.Config.BatchFile)
		return apperrors.ExitErrorConfig
	}

	memBefore := metrics.NewMemoryCollector().Snapshot()

	var reporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet || a.Config.JSON {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteBatch(ctx, inputs, a.Registry, a.Metrics, a.Config.Workers, reporter, progressOut)

	var exitCode int
	if a.Config.JSON {
		if err := cli.DisplayBatchJSON(out, results); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		exitCode = batchExitCode(results)
	} else {
		exitCode = orchestration.SummarizeBatch(results, cli.CLIResultPresenter{}, out)
	}

	if a.Config.ShowMetrics && !a.Config.JSON {
		memAfter := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(memAfter.HeapAllocMB(), memAfter.GCDelta(memBefore), out)
	}

	if canceled(results) {
		return apperrors.ExitErrorCanceled
	}
	return exitCode
}

// batchExitCode derives the exit code for JSON batch output, where
// SummarizeBatch's table is skipped.
func batchExitCode(results []orchestration.BatchResult) int {
	for _, r := range results {
		if r.Err != nil || !r.Claimed || r.Solution.IsError() {
			return apperrors.ExitErrorInput
		}
	}
	return apperrors.ExitSuccess
}

// canceled reports whether any result carries a context error.
func canceled(results []orchestration.BatchResult) bool {
	for _, r := range results {
		if apperrors.IsContextError(r.Err) {
			return true
		}
	}
	return false
}

// readBatchInputs loads one problem per line from path, skipping blank
// lines and #-comments.
func readBatchInputs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}
