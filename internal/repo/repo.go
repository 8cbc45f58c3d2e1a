// Package repo inspects the local git repository without spawning git,
// using go-git for read-only queries.
package repo

import (
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	initgiterrors "initgit.dev/initgit/internal/errors"
)

// Detect verifies that dir contains a git repository.
// Returns ErrNoRepository when no .git directory is present.
func Detect(dir string) error {
	if _, err := gogit.PlainOpen(dir); err != nil {
		return initgiterrors.ErrNoRepository
	}
	return nil
}

// CurrentBranch returns the short name of the branch HEAD points at.
// Detached HEAD or an unborn branch yields an empty string, not an error.
func CurrentBranch(dir string) string {
	r, err := gogit.PlainOpen(dir)
	if err != nil {
		return ""
	}
	head, err := r.Head()
	if err != nil {
		// Unborn branch: resolve the symbolic HEAD reference directly.
		ref, refErr := r.Reference("HEAD", false)
		if refErr != nil || ref.Target() == "" {
			return ""
		}
		return ref.Target().Short()
	}
	if !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

// HasRemote reports whether the named remote is configured.
func HasRemote(dir, name string) bool {
	r, err := gogit.PlainOpen(dir)
	if err != nil {
		return false
	}
	if _, err := r.Remote(name); err != nil {
		return false
	}
	return true
}

// CommitMessagePath returns the path of git's last-commit-message file.
func CommitMessagePath(dir string) string {
	return filepath.Join(dir, ".git", "COMMIT_EDITMSG")
}

// LastCommitMessage returns the trimmed content of .git/COMMIT_EDITMSG,
// or an empty string when the file does not exist.
func LastCommitMessage(dir string) string {
	data, err := os.ReadFile(CommitMessagePath(dir))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
