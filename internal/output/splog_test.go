package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"initgit.dev/initgit/internal/output"
)

func TestSplog(t *testing.T) {
	t.Run("console-only splog closes without a log file", func(t *testing.T) {
		splog := output.NewSplog()
		splog.Info("hello")
		require.NoError(t, splog.Close())
	})

	t.Run("file splog creates the log directory", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "logs", "initgit.log")

		splog, err := output.NewSplogWithFile(logPath)
		require.NoError(t, err)
		defer splog.Close()

		splog.Info("recorded line")

		info, err := os.Stat(filepath.Dir(logPath))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})
}
