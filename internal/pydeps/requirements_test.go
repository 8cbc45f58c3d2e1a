package pydeps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	initgiterrors "initgit.dev/initgit/internal/errors"
)

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes sorted pinned entries", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "import requests\nimport flask\n")

		s := newTestScanner(map[string]string{"requests": "2.31.0", "flask": "3.0.2"}, nil)
		path, err := s.Generate(ctx, dir)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "requirements.txt"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "flask==3.0.2\nrequests==2.31.0\n", string(content))
	})

	t.Run("no dependencies leaves no file behind", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "import os\n")

		s := newTestScanner(nil, nil)
		_, err := s.Generate(ctx, dir)
		require.ErrorIs(t, err, initgiterrors.ErrNoDependencies)

		_, statErr := os.Stat(filepath.Join(dir, "requirements.txt"))
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("regenerates an existing file from scratch", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "app.py", "import requests\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("stale==0.0.1\n"), 0644))

		s := newTestScanner(map[string]string{"requests": "2.31.0"}, nil)
		path, err := s.Generate(ctx, dir)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "requests==2.31.0\n", string(content))
	})
}

func TestGenerateSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("populates packages, modules and requirements", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "tool.py", "import requests\n")
		writePy(t, dir, "mypkg/__init__.py", "")
		writePy(t, dir, "mypkg/core.py", "import flask\n")

		s := newTestScanner(map[string]string{"requests": "2.31.0"}, nil)
		path, err := s.GenerateSetup(ctx, dir, SetupOptions{
			Name:        "demo",
			Version:     "1.2.3",
			Author:      "octocat",
			Description: "a demo",
		})
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		text := string(content)
		require.Contains(t, text, "from setuptools import setup")
		require.Contains(t, text, `name="demo"`)
		require.Contains(t, text, `version="1.2.3"`)
		require.Contains(t, text, `author="octocat"`)
		require.Contains(t, text, `"mypkg"`)
		require.Contains(t, text, `"tool"`)
		require.Contains(t, text, `"requests==2.31.0"`)
	})

	t.Run("defaults name and version", func(t *testing.T) {
		dir := t.TempDir()
		writePy(t, dir, "tool.py", "import os\n")

		s := newTestScanner(nil, nil)
		path, err := s.GenerateSetup(ctx, dir, SetupOptions{})
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(content), `version="0.1.0"`)
		require.Contains(t, string(content), `name="`+filepath.Base(dir)+`"`)
	})
}
