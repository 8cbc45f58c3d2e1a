// Package runner executes external commands with shell-safe argument
// handling, separate stdout/stderr capture, and structured errors.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/output"
)

// DefaultCommandTimeout is the default timeout for external commands
const DefaultCommandTimeout = 5 * time.Minute

// Runner executes Commands sequentially, one child process at a time.
type Runner struct {
	splog *output.Splog
}

// NewRunner creates a Runner that reports command status through splog.
func NewRunner(splog *output.Splog) *Runner {
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Runner{splog: splog}
}

// Run executes a command and returns its Result.
// A non-zero exit returns the Result together with a *errors.CommandError
// carrying the captured stderr; a spawn failure returns a *errors.NotFoundError
// naming the missing executable. The command's Delay fires exactly once on
// every exit path, including spawn failures.
func (r *Runner) Run(ctx context.Context, cmd *Command) (result *Result, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	// The settle delay lets asynchronous remote-side effects (e.g. GitHub
	// repo creation propagating) land before the next dependent command.
	defer func() {
		if cmd.Delay > 0 {
			time.Sleep(cmd.Delay)
		}
	}()

	execCmd := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	runErr := execCmd.Run()

	result = &Result{
		Cmd:    cmd,
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.splog.Error("Command failed: %s", cmd.Raw)
			return result, initgiterrors.NewCommandError(cmd.Raw, result.ExitCode, result.Stdout, result.Stderr, runErr)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.ExitCode = 1
			r.splog.Error("Command timed out: %s", cmd.Raw)
			return result, initgiterrors.NewCommandError(cmd.Raw, 1, result.Stdout, result.Stderr, ctx.Err())
		}
		// Spawn failure, the executable itself was not found.
		result.ExitCode = 1
		r.splog.Error("Command failed: %s", cmd.Raw)
		return result, initgiterrors.NewNotFoundError("executable", cmd.Name, runErr)
	}

	if result.Stderr != "" {
		r.splog.Warn("Command stderr: %s", result.Stderr)
	}
	r.splog.Debug("Command succeeded: %s", cmd.Raw)
	return result, nil
}

// RunText builds a Command from raw text and runs it.
func (r *Runner) RunText(ctx context.Context, raw, dir string) (*Result, error) {
	cmd, err := New(raw, dir)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, cmd)
}

// RunTextWithDelay builds a Command with a settle delay and runs it.
func (r *Runner) RunTextWithDelay(ctx context.Context, raw, dir string, delay time.Duration) (*Result, error) {
	cmd, err := NewWithDelay(raw, dir, delay)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, cmd)
}
