package repo_test

import (
	"os"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"

	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/repo"
)

func TestDetect(t *testing.T) {
	t.Run("fails in a directory without a repository", func(t *testing.T) {
		err := repo.Detect(t.TempDir())
		require.ErrorIs(t, err, initgiterrors.ErrNoRepository)
	})

	t.Run("succeeds in an initialized repository", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		require.NoError(t, repo.Detect(dir))
	})
}

func TestCurrentBranch(t *testing.T) {
	t.Run("empty for a non-repository", func(t *testing.T) {
		require.Empty(t, repo.CurrentBranch(t.TempDir()))
	})

	t.Run("reports the unborn branch from symbolic HEAD", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		require.Equal(t, "master", repo.CurrentBranch(dir))
	})
}

func TestHasRemote(t *testing.T) {
	dir := t.TempDir()
	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	t.Run("false before the remote is added", func(t *testing.T) {
		require.False(t, repo.HasRemote(dir, "origin"))
	})

	t.Run("true after the remote is added", func(t *testing.T) {
		_, err := r.CreateRemote(&gogitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"https://github.com/octocat/demo.git"},
		})
		require.NoError(t, err)

		require.True(t, repo.HasRemote(dir, "origin"))
		require.False(t, repo.HasRemote(dir, "upstream"))
	})
}

func TestLastCommitMessage(t *testing.T) {
	t.Run("empty when no commit has been made", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		require.Empty(t, repo.LastCommitMessage(dir))
	})

	t.Run("returns the trimmed message file content", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(repo.CommitMessagePath(dir), []byte("first commit\n"), 0644))
		require.Equal(t, "first commit", repo.LastCommitMessage(dir))
	})
}
