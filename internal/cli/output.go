// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [StepPresenter.DisplaySolution], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/agbru/stepsolve/internal/orchestration"
	"github.com/agbru/stepsolve/internal/solve"
)

// jsonSolution is the JSON envelope of a single solved input.
type jsonSolution struct {
	Input      string          `json:"input"`
	Solution   *solve.Solution `json:"solution,omitempty"`
	DurationMs float64         `json:"durationMs,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// DisplaySolutionJSON writes one solution as indented JSON.
//
// Parameters:
//   - out: The output writer.
//   - input: The raw problem text.
//   - sol: The solution to encode.
//
// Returns:
//   - error: An error if encoding fails.
func DisplaySolutionJSON(out io.Writer, input string, sol solve.Solution) error {
	return encodeJSON(out, jsonSolution{Input: input, Solution: &sol})
}

// DisplayBatchJSON writes the outcomes of a batch run as a JSON array, in
// submission order. Unclaimed and canceled inputs carry an error message
// instead of a solution.
//
// Parameters:
//   - out: The output writer.
//   - results: The batch results to encode.
//
// Returns:
//   - error: An error if encoding fails.
func DisplayBatchJSON(out io.Writer, results []orchestration.BatchResult) error {
	payload := make([]jsonSolution, len(results))
	for i, res := range results {
		entry := jsonSolution{
			Input:      res.Input,
			DurationMs: float64(res.Duration) / float64(time.Millisecond),
		}
		switch {
		case res.Err != nil:
			entry.Error = res.Err.Error()
		case !res.Claimed:
			entry.Error = "no solver available for this input"
		default:
			sol := res.Solution
			entry.Solution = &sol
		}
		payload[i] = entry
	}
	return encodeJSON(out, payload)
}

// encodeJSON writes v as indented JSON with a trailing newline.
func encodeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json encoding failed: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("json output failed: %w", err)
	}
	return nil
}

// FormatQuietResult formats a solution for quiet mode output: a single line
// suitable for scripting.
func FormatQuietResult(sol solve.Solution) string {
	return sol.Result
}

// DisplayQuietResult outputs a solution in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, sol solve.Solution) {
	fmt.Fprintln(out, FormatQuietResult(sol))
}
