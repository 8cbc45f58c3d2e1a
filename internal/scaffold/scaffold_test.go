package scaffold_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"initgit.dev/initgit/internal/scaffold"
)

func TestFiles(t *testing.T) {
	t.Run("writes the three boilerplate files", func(t *testing.T) {
		dir := t.TempDir()
		written, err := scaffold.Files(scaffold.Options{
			Dir:         dir,
			RepoName:    "Demo",
			Description: "a demo project",
			Owner:       "octocat",
		})
		require.NoError(t, err)
		require.Len(t, written, 3)

		readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
		require.NoError(t, err)
		require.Equal(t, "# Demo\na demo project\n", string(readme))

		license, err := os.ReadFile(filepath.Join(dir, "LICENSE.txt"))
		require.NoError(t, err)
		require.Contains(t, string(license), "Permission is hereby granted")
		require.Contains(t, string(license), fmt.Sprintf("Copyright (c) %d octocat", time.Now().UTC().Year()))

		ignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		require.NoError(t, err)
		require.Contains(t, string(ignore), "__pycache__/")
	})

	t.Run("running twice overwrites instead of appending", func(t *testing.T) {
		dir := t.TempDir()
		opts := scaffold.Options{Dir: dir, RepoName: "Demo", Description: "desc"}

		_, err := scaffold.Files(opts)
		require.NoError(t, err)
		first, err := os.ReadFile(filepath.Join(dir, "README.md"))
		require.NoError(t, err)

		_, err = scaffold.Files(opts)
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(dir, "README.md"))
		require.NoError(t, err)

		require.Equal(t, string(first), string(second))
	})

	t.Run("owner falls back to the repo name", func(t *testing.T) {
		dir := t.TempDir()
		_, err := scaffold.Files(scaffold.Options{Dir: dir, RepoName: "Demo"})
		require.NoError(t, err)

		license, err := os.ReadFile(filepath.Join(dir, "LICENSE.txt"))
		require.NoError(t, err)
		require.Contains(t, string(license), "Demo")
	})

	t.Run("uses a gitignore template file when provided", func(t *testing.T) {
		dir := t.TempDir()
		template := filepath.Join(t.TempDir(), "template.txt")
		require.NoError(t, os.WriteFile(template, []byte("*.secret\nbuild/\n"), 0644))

		_, err := scaffold.Files(scaffold.Options{
			Dir:            dir,
			RepoName:       "Demo",
			IgnoreTemplate: template,
		})
		require.NoError(t, err)

		ignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		require.NoError(t, err)
		require.Equal(t, "*.secret\nbuild/\n", string(ignore))
	})

	t.Run("missing template file is an error", func(t *testing.T) {
		_, err := scaffold.Files(scaffold.Options{
			Dir:            t.TempDir(),
			RepoName:       "Demo",
			IgnoreTemplate: "/no/such/template.txt",
		})
		require.Error(t, err)
	})
}
