package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"initgit.dev/initgit/internal/utils"
)

func TestIsInteractive(t *testing.T) {
	t.Run("environment override forces non-interactive", func(t *testing.T) {
		t.Setenv("INITGIT_NON_INTERACTIVE", "1")
		require.False(t, utils.IsInteractive())
	})
}

func TestStampDate(t *testing.T) {
	stamp := utils.StampDate()
	parsed, err := time.Parse("2006-01-02 15:04:05", stamp)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestTitleCase(t *testing.T) {
	t.Run("capitalizes each word", func(t *testing.T) {
		require.Equal(t, "My Project", utils.TitleCase("my project"))
	})

	t.Run("single word", func(t *testing.T) {
		require.Equal(t, "Demo", utils.TitleCase("demo"))
	})

	t.Run("empty string", func(t *testing.T) {
		require.Equal(t, "", utils.TitleCase(""))
	})
}
