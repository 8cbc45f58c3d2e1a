package pydeps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPackages(t *testing.T) {
	t.Run("returns dotted package paths", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "top.py", "")
		writePy(t, dir, "mypkg/__init__.py", "")
		writePy(t, dir, "mypkg/sub/core.py", "")
		writePy(t, dir, ".venv/lib/ignored.py", "")

		packages, err := FindPackages(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"mypkg", "mypkg.sub"}, packages)
	})

	t.Run("empty tree yields no packages", func(t *testing.T) {
		packages, err := FindPackages(t.TempDir())
		require.NoError(t, err)
		require.Empty(t, packages)
	})
}

func TestFindModules(t *testing.T) {
	t.Run("returns top-level stems excluding __init__", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "tool.py", "")
		writePy(t, dir, "helper.py", "")
		writePy(t, dir, "__init__.py", "")
		writePy(t, dir, "mypkg/core.py", "")

		modules, err := FindModules(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"helper", "tool"}, modules)
	})
}
