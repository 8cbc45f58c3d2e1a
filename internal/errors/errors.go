// Package errors provides sentinel errors and custom error types for the initgit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNoRepository indicates that the working directory has no .git directory
	ErrNoRepository = errors.New("no git repository found")

	// ErrEmptyCommand indicates that a command string was empty after trimming
	ErrEmptyCommand = errors.New("empty command")

	// ErrDuplicateMessage indicates that a commit message was already used
	ErrDuplicateMessage = errors.New("duplicate commit message")

	// ErrNoDependencies indicates that the dependency scan found nothing to record
	ErrNoDependencies = errors.New("no dependencies found")
)

// CommandError represents a non-zero exit from a wrapped command
type CommandError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command '%s' failed with exit code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", strings.TrimSpace(e.Stderr))
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, exitCode int, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command:  command,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// NotFoundError represents a missing executable or working directory
type NotFoundError struct {
	Name string
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s not found: %s", e.Name, e.Path)
	}
	return fmt.Sprintf("%s not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(name, path string, err error) *NotFoundError {
	return &NotFoundError{Name: name, Path: path, Err: err}
}

// ValidationError represents an invalid or missing user-supplied parameter.
// Validation failures abort before any subprocess is spawned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ExitCode returns the process exit code for an error chain.
// CommandErrors carry the originating command's exit code; everything else is 1.
func ExitCode(err error) int {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode != 0 {
		return cmdErr.ExitCode
	}
	return 1
}
