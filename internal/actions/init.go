package actions

import (
	"context"
	"path/filepath"

	"initgit.dev/initgit/internal/scaffold"
	"initgit.dev/initgit/internal/utils"
)

// InitOptions holds the parameters for the init workflow.
type InitOptions struct {
	Branch      string
	Description string
	Message     string
	RepoName    string
	Username    string
}

// InitGit initializes a git repository on the given branch.
func InitGit(ctx context.Context, actx *Context, branch string) error {
	if branch == "" {
		branch = "master"
	}
	_, err := actx.run(ctx, "git", "init", "-b", branch)
	return err
}

// Scaffold creates the pre-stage boilerplate files and returns the repo name
// used for the README title.
func Scaffold(actx *Context, repoName, description string) (string, error) {
	if repoName == "" {
		repoName = utils.TitleCase(filepath.Base(actx.Dir))
	}

	written, err := scaffold.Files(scaffold.Options{
		Dir:            actx.Dir,
		RepoName:       repoName,
		Description:    description,
		Owner:          actx.Config.Username,
		IgnoreTemplate: actx.Config.IgnoreTemplate,
	})
	if err != nil {
		return "", err
	}

	actx.Splog.Info("Pre-stage files created in %s (%d files)", actx.Dir, len(written))
	return repoName, nil
}

// Stage adds everything in the working directory to the index.
func Stage(ctx context.Context, actx *Context) error {
	_, err := actx.run(ctx, "git", "add", actx.Dir)
	return err
}

// Initialize runs the full init workflow: git init, scaffold, stage, commit.
// Returns the resolved username and repo name for use by the create workflow.
func Initialize(ctx context.Context, actx *Context, opts InitOptions) (username, repoName string, err error) {
	username = opts.Username
	if username == "" {
		username = actx.Config.Username
	}

	if err := InitGit(ctx, actx, opts.Branch); err != nil {
		return "", "", err
	}

	repoName, err = Scaffold(actx, opts.RepoName, opts.Description)
	if err != nil {
		return "", "", err
	}

	if err := Stage(ctx, actx); err != nil {
		return "", "", err
	}

	message := opts.Message
	if message == "" {
		message = utils.StampDate()
	}
	outcome, err := Commit(ctx, actx, message)
	if err != nil {
		return "", "", err
	}
	if outcome == CommitNeedsMessage {
		// The supplied message duplicates the previous one; fall back to a
		// timestamp rather than re-prompting inside the sequence.
		if _, err := Commit(ctx, actx, utils.StampDate()); err != nil {
			return "", "", err
		}
	}

	return username, repoName, nil
}
