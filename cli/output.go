package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/gm-socius/review-restaurants/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Rejected input or unknown restaurant
	ExitCommandError = 2 // Bad usage, unreachable database, store failure
)

// Error codes reported in CLI output.
const (
	ErrCodeInvalidInput       = "E001"
	ErrCodeRestaurantNotFound = "E002"
	ErrCodeStore              = "E100"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that did not go
// through a command (flag parsing, unknown commands) are command errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// CLIResponse is the JSON envelope for every command.
type CLIResponse struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes data as JSON, or calls text to render it for humans.
func (f *OutputFormatter) Success(data any, text func(w io.Writer)) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}

	text(f.Writer)
	return nil
}

// Fail reports err in the configured format and returns the ExitError the
// command should return.
func (f *OutputFormatter) Fail(action string, err error) error {
	exitCode, code := classifyError(err)
	message := err.Error()

	var validationErr *store.ValidationError
	if errors.As(err, &validationErr) {
		message = validationErr.Error()
	}

	if f.Format == "json" {
		if encodeErr := json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		}); encodeErr != nil {
			return WrapExitError(ExitCommandError, "failed to write output", encodeErr)
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	}

	return WrapExitError(exitCode, "failed to "+action, err)
}

// VerboseLog writes diagnostics to ErrWriter when verbose mode is on.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		return ExitFailure, ErrCodeInvalidInput
	case errors.Is(err, store.ErrRestaurantNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ExitFailure, ErrCodeRestaurantNotFound
	default:
		return ExitCommandError, ErrCodeStore
	}
}
