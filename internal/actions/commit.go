package actions

import (
	"context"
	"errors"
	"strings"

	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/repo"
)

// CommitOutcome reports how a commit attempt ended. NeedsMessage means the
// caller should obtain a different message and try again; the action never
// re-prompts itself.
type CommitOutcome int

const (
	// CommitOK means a commit was created.
	CommitOK CommitOutcome = iota

	// CommitNeedsMessage means the message was empty or duplicated the
	// previous commit message.
	CommitNeedsMessage

	// CommitNoChanges means git had nothing to commit.
	CommitNoChanges
)

// Commit commits staged files with the given message.
// Fails with ErrNoRepository before spawning anything when the working
// directory has no git repository.
func Commit(ctx context.Context, actx *Context, message string) (CommitOutcome, error) {
	if err := repo.Detect(actx.Dir); err != nil {
		actx.Splog.Error("No git repository found. Please initialize a git repository first.")
		return CommitNoChanges, err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return CommitNeedsMessage, nil
	}

	if last := repo.LastCommitMessage(actx.Dir); last != "" && last == message {
		actx.Splog.Warn("Commit message already used: %s", message)
		return CommitNeedsMessage, nil
	}

	_, err := actx.run(ctx, "git", "commit", "-m", message)
	if err != nil {
		var cmdErr *initgiterrors.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
			actx.Splog.Warn("No changes to commit. Please stage files first.")
			return CommitNoChanges, nil
		}
		return CommitNoChanges, err
	}

	return CommitOK, nil
}
