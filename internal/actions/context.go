// Package actions sequences runner invocations to implement each named
// workflow: init, commit, create, reset, revert, push, pull, fetch, and the
// manifest operations.
package actions

import (
	"context"

	"initgit.dev/initgit/internal/config"
	"initgit.dev/initgit/internal/output"
	"initgit.dev/initgit/internal/runner"
)

// CommandRunner executes prepared commands. Satisfied by *runner.Runner;
// tests substitute a scripted fake.
type CommandRunner interface {
	Run(ctx context.Context, cmd *runner.Command) (*runner.Result, error)
}

// Context carries the per-invocation state threaded through every action:
// working directory, resolved configuration, runner, and logger.
type Context struct {
	Dir    string
	Config *config.Config
	Runner CommandRunner
	Splog  *output.Splog
}

// NewContext builds an action context for a working directory.
func NewContext(dir string, cfg *config.Config, splog *output.Splog) *Context {
	if cfg == nil {
		cfg = config.FromEnv()
	}
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Context{
		Dir:    dir,
		Config: cfg,
		Runner: runner.NewRunner(splog),
		Splog:  splog,
	}
}

// run executes a quoted command line in the action's working directory,
// applying the configured settle delay.
func (c *Context) run(ctx context.Context, words ...string) (*runner.Result, error) {
	cmd, err := runner.NewWithDelay(runner.Quote(words...), c.Dir, c.Config.Delay)
	if err != nil {
		return nil, err
	}
	return c.Runner.Run(ctx, cmd)
}
