package error

import (
	"errors"
	"fmt"
	"runtime"
)

const (
	// ExitCodeGeneric is used for fatal conditions that carry no
	// more specific exit code.
	ExitCodeGeneric uint = 1
	// ExitCodeUsage is used when the invocation itself was invalid.
	ExitCodeUsage uint = 2
)

type ErrorWithExitCode struct {
	ExitCode uint
	Wrapped  error
}

func (e ErrorWithExitCode) Error() string {
	return e.Wrapped.Error()
}

func (e ErrorWithExitCode) Unwrap() error {
	return e.Wrapped
}

// WithExitCode attaches an exit code to the error. The outermost exit
// code wins when the error is wrapped more than once.
func WithExitCode(exitCode uint, err error) error {
	if err == nil {
		return nil
	}
	var existing ErrorWithExitCode
	if errors.As(err, &existing) && existing.ExitCode == exitCode {
		return err
	}
	return ErrorWithExitCode{
		ExitCode: exitCode,
		Wrapped:  err,
	}
}

// GetExitCode returns the first exit code found in the error chain.
func GetExitCode(err error) (exitCode uint, hasExitCode bool) {
	var withExitCode ErrorWithExitCode
	if errors.As(err, &withExitCode) {
		return withExitCode.ExitCode, true
	}
	return 0, false
}

// ErrorWithStackTrace is an error that attaches a stack trace to its
// message.
type ErrorWithStackTrace struct {
	StackTrace string
	Wrapped    error
}

// Error returns the wrapped error's message. Use Verbose to include the
// stack trace.
func (s ErrorWithStackTrace) Error() string {
	return s.Wrapped.Error()
}

// Verbose returns the error's message followed by its stack trace.
func (s ErrorWithStackTrace) Verbose() string {
	return fmt.Sprintf("%v\n\n%s\nEND OF StackTraceError", s.Wrapped, s.StackTrace)
}

// Unwrap returns the underlying error of this error.
func (s ErrorWithStackTrace) Unwrap() error {
	return s.Wrapped
}

// WithStackTrace attaches a stack trace to the error, if it does not
// already contain one.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}
	if hasStackTrace(err) {
		return err
	}
	st := make([]byte, 1<<14)
	n := runtime.Stack(st, false)
	return ErrorWithStackTrace{
		Wrapped:    err,
		StackTrace: string(st[:n]),
	}
}

func hasStackTrace(err error) bool {
	var withStackTrace ErrorWithStackTrace
	return errors.As(err, &withStackTrace)
}

func StackTracef(format string, a ...interface{}) error {
	return WithStackTrace(fmt.Errorf(format, a...))
}
