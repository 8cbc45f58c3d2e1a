// Package github provides a client for verifying repositories through the GitHub API.
package github

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API for post-creation verification.
type Client struct {
	api *github.Client
}

// getGitHubToken reads the API token from the environment.
func getGitHubToken() (string, error) {
	for _, name := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(name); token != "" {
			return token, nil
		}
	}
	return "", fmt.Errorf("no GitHub token found, set GITHUB_TOKEN or GH_TOKEN")
}

// NewClient creates a Client authenticated with the environment token.
// Returns an error when no token is configured; callers treat that as a
// signal to skip verification, not as a failure.
func NewClient(ctx context.Context) (*Client, error) {
	token, err := getGitHubToken()
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Client{api: github.NewClient(tc)}, nil
}

// RepoExists reports whether owner/repo is visible through the API.
func (c *Client) RepoExists(ctx context.Context, owner, repo string) (bool, error) {
	_, resp, err := c.api.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to query repository %s/%s: %w", owner, repo, err)
	}
	return true, nil
}
