package orchestration

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/stepsolve/internal/errors"
	"github.com/agbru/stepsolve/internal/solve"
)

// BatchResult encapsulates the outcome of solving a single batch input.
// Results keep the submission order regardless of which worker finished
// first.
type BatchResult struct {
	// Index is the position of the input in the submitted batch.
	Index int
	// Input is the raw problem text.
	Input string
	// Solution is the solver output. It is the zero value when no solver
	// claimed the input or the run was canceled first.
	Solution solve.Solution
	// Claimed reports whether any registered solver claimed the input.
	Claimed bool
	// Duration is the time taken to solve the input.
	Duration time.Duration
	// Err is non-nil only when the batch was canceled before this input
	// was solved.
	Err error
}

// ExecuteBatch solves every input concurrently with a bounded worker pool
// and streams completion updates to the progress reporter.
//
// Parameters:
//   - ctx: The context for cancellation; inputs not yet started when it is
//     canceled carry the context error in their result.
//   - inputs: The batch of raw problem texts.
//   - registry: The solver registry used for dispatch.
//   - recorder: The instrumentation sink (use NopRecorder to discard).
//   - workers: The concurrency bound; non-positive means GOMAXPROCS-sized.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []BatchResult: One result per input, in submission order.
func ExecuteBatch(ctx context.Context, inputs []string, registry *solve.Registry, recorder Recorder, workers int, reporter ProgressReporter, out io.Writer) []BatchResult {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	results := make([]BatchResult, len(inputs))
	progressChan := make(chan ProgressUpdate, len(inputs)+1)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(inputs), out)

	var completed atomic.Int64
	for i, input := range inputs {
		idx, text := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[idx] = BatchResult{Index: idx, Input: text, Err: err}
				return err
			}

			recorder.IncrementActiveSolves()
			start := time.Now()
			solver, claimed := registry.SolverFor(text)
			var solution solve.Solution
			if claimed {
				solution = solver.Solve(text)
			}
			duration := time.Since(start)
			recorder.DecrementActiveSolves()

			if claimed {
				recorder.ObserveSolve(solver.Type(), solution.Type, solution.IsError(), duration)
			} else {
				recorder.ObserveUnclaimed()
			}

			results[idx] = BatchResult{
				Index: idx, Input: text, Solution: solution, Claimed: claimed, Duration: duration,
			}
			progressChan <- ProgressUpdate{Completed: int(completed.Add(1)), Total: len(inputs)}
			return nil
		})
	}

	// Solving failures surface as error Solutions, so the only group error
	// is cancellation, which the per-result Err fields already carry.
	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// SummarizeBatch presents the per-input table and derives the process exit
// code: success only when every input was claimed and solved without an
// error tag.
//
// Parameters:
//   - results: The batch results to summarize.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: apperrors.ExitSuccess, or apperrors.ExitErrorInput when any
//     input failed.
func SummarizeBatch(results []BatchResult, presenter ResultPresenter, out io.Writer) int {
	presenter.PresentBatchTable(results, out)

	failed := 0
	for _, r := range results {
		if r.Err != nil || !r.Claimed || r.Solution.IsError() {
			failed++
		}
	}

	if failed == 0 {
		fmt.Fprintf(out, "\nBatch status: success. All %d inputs solved.\n", len(results))
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "\nBatch status: %d of %d inputs failed.\n", failed, len(results))
	return apperrors.ExitErrorInput
}
