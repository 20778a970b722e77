package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/stepsolve/internal/orchestration"
	"github.com/agbru/stepsolve/internal/solve"
)

func TestDisplaySolutionJSON(t *testing.T) {
	registry := solve.NewDefaultRegistry()
	sol, ok := registry.Solve("2 + 2")
	if !ok {
		t.Fatal("registry did not claim the expression")
	}

	var buf bytes.Buffer
	if err := DisplaySolutionJSON(&buf, "2 + 2", sol); err != nil {
		t.Fatalf("DisplaySolutionJSON: %v", err)
	}

	var decoded jsonSolution
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Input != "2 + 2" {
		t.Errorf("input = %q, want %q", decoded.Input, "2 + 2")
	}
	if decoded.Solution == nil || decoded.Solution.Result != "4" {
		t.Errorf("solution result missing or wrong: %+v", decoded.Solution)
	}
	if decoded.Error != "" {
		t.Errorf("unexpected error field: %q", decoded.Error)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("JSON output should end with a newline")
	}
}

func TestDisplayBatchJSON(t *testing.T) {
	results := []orchestration.BatchResult{
		{
			Index: 0, Input: "2 + 2", Claimed: true, Duration: 2 * time.Millisecond,
			Solution: solve.Solution{
				Steps:      []solve.SolutionStep{{Description: "Compute", Formula: "2 + 2 = 4"}},
				Result:     "4",
				Type:       solve.TypeCalculation,
				Difficulty: solve.DifficultyBasic,
			},
		},
		{Index: 1, Input: "x = 2 = 3", Claimed: false},
		{Index: 2, Input: "3 * 3", Err: errors.New("context canceled")},
	}

	var buf bytes.Buffer
	if err := DisplayBatchJSON(&buf, results); err != nil {
		t.Fatalf("DisplayBatchJSON: %v", err)
	}

	var decoded []jsonSolution
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 3 {
		t.Fatalf("entries = %d, want 3", len(decoded))
	}

	if decoded[0].Solution == nil || decoded[0].Solution.Result != "4" {
		t.Errorf("solved entry malformed: %+v", decoded[0])
	}
	if decoded[1].Error != "no solver available for this input" {
		t.Errorf("unclaimed entry error = %q", decoded[1].Error)
	}
	if decoded[1].Solution != nil {
		t.Error("unclaimed entry should carry no solution")
	}
	if decoded[2].Error != "context canceled" {
		t.Errorf("canceled entry error = %q", decoded[2].Error)
	}
}

func TestFormatQuietResult(t *testing.T) {
	sol := solve.Solution{Result: "x = 2"}
	if got := FormatQuietResult(sol); got != "x = 2" {
		t.Errorf("FormatQuietResult = %q, want %q", got, "x = 2")
	}

	var buf bytes.Buffer
	DisplayQuietResult(&buf, sol)
	if buf.String() != "x = 2\n" {
		t.Errorf("DisplayQuietResult = %q", buf.String())
	}
}
