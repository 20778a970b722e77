package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/stepsolve/internal/errors"
)

// newTestApp builds an Application from args (without the program name),
// forcing --no-color for deterministic output.
func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	errBuf := &bytes.Buffer{}
	full := append([]string{"stepsolve", "--no-color"}, args...)
	application, err := New(full, errBuf)
	if err != nil {
		t.Fatalf("New(%v): %v\n%s", args, err, errBuf.String())
	}
	return application, errBuf
}

func TestNew_ConfigError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"stepsolve"}, &errBuf)
	if err == nil {
		t.Fatal("expected an error with no input")
	}
	if IsHelpError(err) {
		t.Error("missing input should not be a help error")
	}
	if CodeForError(err) != apperrors.ExitErrorConfig {
		t.Errorf("CodeForError = %d, want %d", CodeForError(err), apperrors.ExitErrorConfig)
	}
}

func TestNew_HelpError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"stepsolve", "--help"}, &errBuf)
	if !IsHelpError(err) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if CodeForError(err) != apperrors.ExitSuccess {
		t.Errorf("help should exit 0, got %d", CodeForError(err))
	}
}

func TestRun_SingleExpression(t *testing.T) {
	application, _ := newTestApp(t, "2 + 2")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d\n%s", code, apperrors.ExitSuccess, out.String())
	}
	if !strings.Contains(out.String(), "Result: 4") {
		t.Errorf("output missing result:\n%s", out.String())
	}
}

func TestRun_SingleQuiet(t *testing.T) {
	application, _ := newTestApp(t, "--quiet", "2x + 3 = 7")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
	if out.String() != "x = 2\n" {
		t.Errorf("quiet output = %q, want %q", out.String(), "x = 2\n")
	}
}

func TestRun_SingleJSON(t *testing.T) {
	application, _ := newTestApp(t, "--json", "2 + 2")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), `"result": "4"`) {
		t.Errorf("output missing JSON result:\n%s", out.String())
	}
}

func TestRun_SingleUnclaimed(t *testing.T) {
	application, errBuf := newTestApp(t, "x = 2 = 3")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitErrorInput {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorInput)
	}
	if !strings.Contains(errBuf.String(), "No solver available") {
		t.Errorf("stderr missing unclaimed message:\n%s", errBuf.String())
	}
}

func TestRun_SingleErrorSolution(t *testing.T) {
	application, _ := newTestApp(t, "1 / 0")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitErrorInput {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorInput)
	}
	if !strings.Contains(out.String(), "Result: Error") {
		t.Errorf("output missing error result:\n%s", out.String())
	}
}

// writeBatchFile creates a temp batch file with the given lines.
func writeBatchFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problems.txt")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_BatchSuccess(t *testing.T) {
	path := writeBatchFile(t,
		"# elementary warm-up",
		"2 + 2",
		"",
		"2x + 3 = 7",
		"x^2 - 5x + 6 = 0",
	)
	application, _ := newTestApp(t, "--quiet", "--file", path)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "All 3 inputs solved") {
		t.Errorf("output missing success summary:\n%s", out.String())
	}
}

func TestRun_BatchWithFailures(t *testing.T) {
	path := writeBatchFile(t, "2 + 2", "1 / 0", "x = 2 = 3")
	application, _ := newTestApp(t, "--quiet", "--file", path)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitErrorInput {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorInput)
	}
	if !strings.Contains(out.String(), "2 of 3 inputs failed") {
		t.Errorf("output missing failure summary:\n%s", out.String())
	}
}

func TestRun_BatchJSON(t *testing.T) {
	path := writeBatchFile(t, "2 + 2", "3 * 3")
	application, _ := newTestApp(t, "--json", "--file", path)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d\n%s", code, out.String())
	}
	for _, want := range []string{`"input": "2 + 2"`, `"result": "9"`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("JSON output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_BatchMissingFile(t *testing.T) {
	application, errBuf := newTestApp(t, "--file", filepath.Join(t.TempDir(), "absent.txt"))

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errBuf.String(), "Error reading batch file") {
		t.Errorf("stderr missing file error:\n%s", errBuf.String())
	}
}

func TestRun_BatchEmptyFile(t *testing.T) {
	path := writeBatchFile(t, "# only comments")
	application, errBuf := newTestApp(t, "--file", path)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errBuf.String(), "no inputs") {
		t.Errorf("stderr missing empty-file error:\n%s", errBuf.String())
	}
}

func TestRun_Completion(t *testing.T) {
	application, _ := newTestApp(t, "--completion", "bash")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "_stepsolve_completions") {
		t.Errorf("output missing completion script:\n%s", out.String())
	}
}

func TestRun_CompletionUnsupported(t *testing.T) {
	application, errBuf := newTestApp(t, "--completion", "tcsh")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errBuf.String(), "unsupported shell") {
		t.Errorf("stderr missing shell error:\n%s", errBuf.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"--version"}) || !HasVersionFlag([]string{"-V"}) {
		t.Error("version flags not detected")
	}
	if HasVersionFlag([]string{"2 + 2"}) {
		t.Error("false positive on plain input")
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "stepsolve") {
		t.Errorf("version banner = %q", out.String())
	}
}
