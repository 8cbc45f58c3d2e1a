package actions

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/github"
	"initgit.dev/initgit/internal/runner"
)

// Visibility values accepted by gh repo create.
const (
	VisibilityPublic   = "public"
	VisibilityPrivate  = "private"
	VisibilityInternal = "internal"
)

// CreateOptions holds the parameters for the create workflow.
type CreateOptions struct {
	Username    string
	RepoName    string
	Branch      string
	Description string
	Message     string
	Visibility  string
	Remote      string
	URL         string
	Interactive bool
}

// StepResult records one command of the create sequence for the aggregate report.
type StepResult struct {
	Command string
	Result  *runner.Result
	Err     error
}

// validateCreate checks parameters before any subprocess is spawned.
func validateCreate(opts *CreateOptions) error {
	if opts.Visibility == "" {
		opts.Visibility = VisibilityPublic
	}
	switch opts.Visibility {
	case VisibilityPublic, VisibilityPrivate, VisibilityInternal:
	default:
		return initgiterrors.NewValidationError("visibility",
			fmt.Sprintf("%s must be one of public, private, internal", opts.Visibility))
	}

	if opts.URL != "" {
		parsed, err := url.Parse(opts.URL)
		if err != nil || !parsed.IsAbs() {
			return initgiterrors.NewValidationError("url", opts.URL+" is not an absolute URL")
		}
	}

	if opts.Remote != "" && strings.TrimSpace(opts.Remote) == "" {
		return initgiterrors.NewValidationError("remote", "remote name cannot be empty")
	}

	return nil
}

// repoCreateCommand builds the gh repo create argument list.
func repoCreateCommand(dir string, opts CreateOptions) []string {
	words := []string{"gh", "repo", "create"}
	if opts.Interactive {
		return words
	}

	fullName := opts.RepoName
	if opts.Username != "" {
		fullName = opts.Username + "/" + opts.RepoName
	}
	words = append(words, fullName, "--source="+dir, "--"+opts.Visibility)

	if opts.Remote != "" {
		words = append(words, "--remote="+opts.Remote)
	}
	if opts.Description != "" {
		words = append(words, "--description="+opts.Description)
	}
	if opts.URL != "" {
		words = append(words, "--homepage="+opts.URL)
	}
	return words
}

// fallbackSequence is the manual three-step remote setup used when the
// combined gh creation command fails.
func fallbackSequence(username, repoName, branch string) [][]string {
	remoteURL := fmt.Sprintf("https://github.com/%s/%s.git", username, repoName)
	return [][]string{
		{"git", "branch", "-m", branch},
		{"git", "remote", "add", "origin", remoteURL},
		{"git", "push", "-u", "origin", branch},
	}
}

// CreateRepo initializes the local repository and creates the remote one.
// The combined gh command is attempted first; on command failure the manual
// fallback sequence runs exactly once. If the fallback fails too, both errors
// are surfaced together and no further retry happens.
func CreateRepo(ctx context.Context, actx *Context, opts CreateOptions) ([]StepResult, error) {
	if err := validateCreate(&opts); err != nil {
		return nil, err
	}

	username, repoName, err := Initialize(ctx, actx, InitOptions{
		Branch:      opts.Branch,
		Description: opts.Description,
		Message:     opts.Message,
		RepoName:    opts.RepoName,
		Username:    opts.Username,
	})
	if err != nil {
		return nil, err
	}
	opts.Username = username
	opts.RepoName = repoName

	branch := opts.Branch
	if branch == "" {
		branch = "master"
	}

	var results []StepResult

	createWords := repoCreateCommand(actx.Dir, opts)
	result, createErr := actx.run(ctx, createWords...)
	results = append(results, StepResult{Command: runner.Quote(createWords...), Result: result, Err: createErr})

	if createErr != nil {
		var cmdErr *initgiterrors.CommandError
		if !errors.As(createErr, &cmdErr) {
			// Validation or spawn failure, nothing the fallback can fix.
			return results, createErr
		}

		actx.Splog.Warn("Repository creation failed, trying alternate sequence")
		fallbackErr := runFallback(ctx, actx, username, repoName, branch, &results)
		if fallbackErr != nil {
			actx.Splog.Error("Backup commands failed: %v", fallbackErr)
			return results, fmt.Errorf("failed to create remote repository %s: %w",
				repoName, errors.Join(createErr, fallbackErr))
		}
	}

	reportCreate(actx, repoName, results)
	verifyRemote(ctx, actx, username, repoName)
	return results, nil
}

// runFallback executes the three-step manual sequence, recording each step.
// It runs at most once per create invocation.
func runFallback(ctx context.Context, actx *Context, username, repoName, branch string, results *[]StepResult) error {
	for _, words := range fallbackSequence(username, repoName, branch) {
		result, err := actx.run(ctx, words...)
		*results = append(*results, StepResult{Command: runner.Quote(words...), Result: result, Err: err})
		if err != nil {
			return err
		}
	}
	return nil
}

// reportCreate prints the aggregate outcome of the create sequence.
func reportCreate(actx *Context, repoName string, results []StepResult) {
	succeeded := 0
	for _, step := range results {
		if step.Err == nil {
			succeeded++
		}
	}

	actx.Splog.Info("%d of %d commands executed successfully:", succeeded, len(results))
	for _, step := range results {
		if step.Err != nil {
			actx.Splog.Error("  %s -> %v", step.Command, step.Err)
		} else {
			actx.Splog.Success("  %s -> ok", step.Command)
		}
	}
	actx.Splog.Success("Repository %s created and added as origin.", repoName)
}

// verifyRemote confirms the repository is visible through the GitHub API.
// Best effort only: missing tokens and API failures are logged, never fatal.
func verifyRemote(ctx context.Context, actx *Context, username, repoName string) {
	if username == "" {
		return
	}
	client, err := github.NewClient(ctx)
	if err != nil {
		actx.Splog.Debug("Skipping remote verification: %v", err)
		return
	}
	exists, err := client.RepoExists(ctx, username, repoName)
	if err != nil {
		actx.Splog.Debug("Remote verification failed: %v", err)
		return
	}
	if exists {
		actx.Splog.Debug("Verified %s/%s on GitHub", username, repoName)
	} else {
		actx.Splog.Warn("Repository %s/%s not yet visible on GitHub", username, repoName)
	}
}
