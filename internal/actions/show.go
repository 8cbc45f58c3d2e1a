package actions

import "context"

// Status returns the working tree status.
func Status(ctx context.Context, actx *Context) (string, error) {
	result, err := actx.run(ctx, "git", "status")
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

// Log returns the one-line commit log.
func Log(ctx context.Context, actx *Context) (string, error) {
	result, err := actx.run(ctx, "git", "log", "--oneline")
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

// Branches returns all local and remote branches.
func Branches(ctx context.Context, actx *Context) (string, error) {
	result, err := actx.run(ctx, "git", "branch", "-a")
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

// Diff returns the unstaged diff.
func Diff(ctx context.Context, actx *Context) (string, error) {
	result, err := actx.run(ctx, "git", "diff")
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}
