package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates the input could not be claimed by any solver.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ParseError reports input text that does not conform to the supported
// expression grammar. Position is the zero-based rune offset where scanning
// or parsing failed.
type ParseError struct {
	// Input is the original text being parsed.
	Input string
	// Position is the offset of the offending token.
	Position int
	// Message explains why parsing failed.
	Message string
}

// Error returns a formatted message describing the parse failure.
//
// Returns:
//   - string: The error message string.
func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

// NewParseError creates a ParseError for the given input and offset.
//
// Parameters:
//   - input: The text being parsed.
//   - pos: The offset of the offending token.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ParseError instance.
func NewParseError(input string, pos int, format string, a ...any) error {
	return ParseError{Input: input, Position: pos, Message: fmt.Sprintf(format, a...)}
}

// EvalError reports a well-formed expression that hit an undefined operation
// during numeric evaluation, such as division by zero or an unknown function.
type EvalError struct {
	// Operation names the operation that failed (e.g., "division", "sqrt").
	Operation string
	// Message explains the evaluation failure.
	Message string
}

// Error returns a formatted message describing the evaluation failure.
//
// Returns:
//   - string: The error message string.
func (e EvalError) Error() string {
	return fmt.Sprintf("evaluation error in %s: %s", e.Operation, e.Message)
}

// NewEvalError creates an EvalError for the named operation.
//
// Parameters:
//   - operation: The operation that failed.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new EvalError instance.
func NewEvalError(operation, format string, a ...any) error {
	return EvalError{Operation: operation, Message: fmt.Sprintf(format, a...)}
}

// SolveError encapsulates a solver failure while preserving the original
// cause. This allows for structured error handling and inspection of what
// went wrong while a solver was building its step sequence.
type SolveError struct {
	// Solver is the identifier of the solver that failed.
	Solver string
	// Cause is the underlying error that triggered this solve error.
	Cause error
}

// Error returns the error message including the failing solver.
//
// Returns:
//   - string: The error message string.
func (e SolveError) Error() string {
	return fmt.Sprintf("solver %q: %v", e.Solver, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the SolveError.
func (e SolveError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsParseError reports whether err is (or wraps) a ParseError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a ParseError.
func IsParseError(err error) bool {
	var pe ParseError
	return errors.As(err, &pe)
}

// IsEvalError reports whether err is (or wraps) an EvalError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an EvalError.
func IsEvalError(err error) bool {
	var ee EvalError
	return errors.As(err, &ee)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
