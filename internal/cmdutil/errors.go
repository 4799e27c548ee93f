package cmdutil

import (
	"errors"
	"fmt"
)

// ExitError carries a specific process exit code out of a command.
// Commands return this instead of calling os.Exit() directly, allowing
// deferred cleanup to run; Main() translates it into the exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// FlagError indicates bad flags or arguments. When Main() encounters
// this error type it exits with the usage status code.
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

// SilentError signals that the error has already been displayed to the
// user. Main() will exit non-zero but not print anything additional.
var SilentError = errors.New("SilentError")
