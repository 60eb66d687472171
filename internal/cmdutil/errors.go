package cmdutil

import (
	"errors"
	"fmt"
)

// Process exit codes returned by Main.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// FlagError indicates bad flags or arguments. Main prints the command's
// usage after the error and exits with ExitUsage.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf creates a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap wraps an existing error as a FlagError.
func FlagErrorWrap(err error) error {
	return &FlagError{err: err}
}

// SilentError signals that the error has already been displayed to the user.
// Main will exit non-zero but not print anything additional.
var SilentError = errors.New("SilentError")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var flagErr *FlagError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &flagErr):
		return ExitUsage
	default:
		return ExitError
	}
}
