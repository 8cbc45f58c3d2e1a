package pydeps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestScanner builds a Scanner whose toolchain probes are stubbed out:
// versions resolves installed package versions and origins maps module names
// to import origin paths.
func newTestScanner(versions, origins map[string]string) *Scanner {
	s := NewScanner(nil)
	s.resolveVersion = func(_ context.Context, pkg string) string {
		return versions[pkg]
	}
	s.probeOrigin = func(_ context.Context, module string) string {
		return origins[module]
	}
	return s
}

func writePy(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestTopPackageName(t *testing.T) {
	t.Run("marker in root wins", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "__init__.py", "")
		require.Equal(t, filepath.Base(dir), TopPackageName(dir))
	})

	t.Run("child package directory", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "mypkg/__init__.py", "")
		require.Equal(t, "mypkg", TopPackageName(dir))
	})

	t.Run("falls back to the directory name", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "script.py", "print('hi')\n")
		require.Equal(t, filepath.Base(dir), TopPackageName(dir))
	})
}

func TestFindImports(t *testing.T) {
	t.Run("collects top-level identifiers from import and from lines", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "import requests\nfrom flask import Flask\nimport os.path\n")

		s := newTestScanner(nil, nil)
		imports, err := s.FindImports(dir, "")
		require.NoError(t, err)
		require.Equal(t, []string{"flask", "os", "requests"}, imports)
	})

	t.Run("deduplicates across files and excludes the project package", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "a.py", "import requests\nimport myproj.helpers\n")
		writePy(t, dir, "b.py", "import requests\n")

		s := newTestScanner(nil, nil)
		imports, err := s.FindImports(dir, "myproj")
		require.NoError(t, err)
		require.Equal(t, []string{"requests"}, imports)
	})

	t.Run("prunes virtualenv and cache directories", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "import requests\n")
		writePy(t, dir, ".venv/lib/junk.py", "import secretdep\n")
		writePy(t, dir, "__pycache__/cached.py", "import otherdep\n")

		s := newTestScanner(nil, nil)
		imports, err := s.FindImports(dir, "")
		require.NoError(t, err)
		require.Equal(t, []string{"requests"}, imports)
	})

	t.Run("indented imports count, commented ones do not match the line anchor", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "def f():\n    import requests\n# import commentedout\n")

		s := newTestScanner(nil, nil)
		imports, err := s.FindImports(dir, "")
		require.NoError(t, err)
		require.Equal(t, []string{"requests"}, imports)
	})

	t.Run("skips files that are not valid UTF-8", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "good.py", "import requests\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.py"), []byte{0xff, 0xfe, 'i'}, 0644))

		s := newTestScanner(nil, nil)
		imports, err := s.FindImports(dir, "")
		require.NoError(t, err)
		require.Equal(t, []string{"requests"}, imports)
	})
}

func TestIsStdlib(t *testing.T) {
	ctx := context.Background()

	t.Run("allow-list answers without probing", func(t *testing.T) {
		s := newTestScanner(nil, nil)
		require.True(t, s.isStdlib(ctx, "os"))
		require.True(t, s.isStdlib(ctx, "json"))
		require.True(t, s.isStdlib(ctx, "asyncio"))
	})

	t.Run("unknown module with no origin is external", func(t *testing.T) {
		s := newTestScanner(nil, nil)
		require.False(t, s.isStdlib(ctx, "requests"))
	})

	t.Run("probe classifies by origin path", func(t *testing.T) {
		s := newTestScanner(nil, map[string]string{
			"_speedups": "built-in",
			"greenlet":  "/usr/lib/python3/site-packages/greenlet/__init__.py",
			"siteextra": "/usr/lib/python3.12/siteextra.py",
		})
		require.True(t, s.isStdlib(ctx, "_speedups"))
		require.False(t, s.isStdlib(ctx, "greenlet"))
		require.True(t, s.isStdlib(ctx, "siteextra"))
	})
}

func TestScan(t *testing.T) {
	ctx := context.Background()

	t.Run("stdlib-only project yields no entries", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "import os\nimport sys\nimport json\n")

		s := newTestScanner(nil, nil)
		entries, err := s.Scan(ctx, dir)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("pins resolved versions and leaves the rest bare", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "import requests\nimport flask\nimport os\n")

		s := newTestScanner(map[string]string{"requests": "2.31.0"}, nil)
		entries, err := s.Scan(ctx, dir)
		require.NoError(t, err)
		require.Equal(t, []string{"flask", "requests==2.31.0"}, entries)
	})
}
