package actions

import (
	"context"

	initgiterrors "initgit.dev/initgit/internal/errors"
)

// ResetStage unstages a single file.
func ResetStage(ctx context.Context, actx *Context, filename string) error {
	if filename == "" {
		return initgiterrors.NewValidationError("filename", "no filename provided")
	}
	_, err := actx.run(ctx, "git", "reset", "HEAD", filename)
	return err
}

// UncommitLast removes the last commit but keeps its changes in the working tree.
func UncommitLast(ctx context.Context, actx *Context) error {
	_, err := actx.run(ctx, "git", "reset", "--soft", "HEAD~1")
	return err
}

// HardReset resets hard to a specific commit, discarding newer commits.
func HardReset(ctx context.Context, actx *Context, commitHash string) error {
	if commitHash == "" {
		return initgiterrors.NewValidationError("commit hash", "no commit hash provided")
	}
	_, err := actx.run(ctx, "git", "reset", "--hard", commitHash)
	return err
}

// Revert creates a new commit undoing the changes of a pushed commit.
func Revert(ctx context.Context, actx *Context, commitHash string) error {
	if commitHash == "" {
		return initgiterrors.NewValidationError("commit hash", "no commit hash provided")
	}
	_, err := actx.run(ctx, "git", "revert", commitHash)
	return err
}

// Discard throws away unstaged edits to a file.
func Discard(ctx context.Context, actx *Context, filePath string) error {
	if filePath == "" {
		return initgiterrors.NewValidationError("filename", "no filename provided")
	}
	_, err := actx.run(ctx, "git", "checkout", "--", filePath)
	return err
}
