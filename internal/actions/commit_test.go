package actions

import (
	"context"
	"os"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/repo"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	return NewContext(t.TempDir(), nil, nil)
}

func initRepo(t *testing.T, dir string) {
	t.Helper()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
}

func TestCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("fails before spawning when there is no repository", func(t *testing.T) {
		actx := newTestContext(t)
		_, err := Commit(ctx, actx, "first commit")
		require.ErrorIs(t, err, initgiterrors.ErrNoRepository)
	})

	t.Run("empty message needs a message", func(t *testing.T) {
		actx := newTestContext(t)
		initRepo(t, actx.Dir)

		outcome, err := Commit(ctx, actx, "   ")
		require.NoError(t, err)
		require.Equal(t, CommitNeedsMessage, outcome)
	})

	t.Run("duplicate of the previous message needs a message", func(t *testing.T) {
		actx := newTestContext(t)
		initRepo(t, actx.Dir)
		require.NoError(t, os.WriteFile(repo.CommitMessagePath(actx.Dir), []byte("same message\n"), 0644))

		outcome, err := Commit(ctx, actx, "same message")
		require.NoError(t, err)
		require.Equal(t, CommitNeedsMessage, outcome)
	})
}
