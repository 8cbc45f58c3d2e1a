package output_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"initgit.dev/initgit/internal/output"
)

func TestColorize(t *testing.T) {
	// Test output is piped, not a terminal, so styling must be suppressed
	// and the text passed through untouched.
	t.Run("passes text through when stdout is not a terminal", func(t *testing.T) {
		require.Equal(t, "hello", output.Colorize("hello", "red"))
		require.Equal(t, "hello", output.Green("hello"))
	})

	t.Run("unknown color renders plain", func(t *testing.T) {
		require.Equal(t, "hello", output.Colorize("hello", "chartreuse"))
	})
}
