package actions

import (
	"context"

	"initgit.dev/initgit/internal/config"
	"initgit.dev/initgit/internal/repo"
)

// resolveBranch picks the branch for push/pull: explicit flag, then the
// repository HEAD, then the configured default.
func resolveBranch(actx *Context, branch string) string {
	if branch != "" {
		return branch
	}
	if head := repo.CurrentBranch(actx.Dir); head != "" {
		return head
	}
	return config.DefaultBranch(actx.Dir)
}

// resolveRemote picks the remote name: explicit flag, then the configured default.
func resolveRemote(actx *Context, remote string) string {
	if remote != "" {
		return remote
	}
	return config.DefaultRemote(actx.Dir)
}

// Push pushes the branch with upstream tracking.
func Push(ctx context.Context, actx *Context, remote, branch string) error {
	_, err := actx.run(ctx, "git", "push", "-u", resolveRemote(actx, remote), resolveBranch(actx, branch))
	return err
}

// Pull pulls the branch from the remote.
func Pull(ctx context.Context, actx *Context, remote, branch string) error {
	_, err := actx.run(ctx, "git", "pull", resolveRemote(actx, remote), resolveBranch(actx, branch))
	return err
}

// Fetch fetches from the remote.
func Fetch(ctx context.Context, actx *Context, remote string) error {
	_, err := actx.run(ctx, "git", "fetch", resolveRemote(actx, remote))
	return err
}
