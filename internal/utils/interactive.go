// Package utils provides small shared helpers.
package utils

import (
	"os"
	"strings"
	"time"
)

// IsInteractive checks if we're in an interactive terminal
func IsInteractive() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("INITGIT_NON_INTERACTIVE") != "" {
		return false
	}

	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// StampDate returns the current UTC time formatted as a default commit message.
func StampDate() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}

// TitleCase upper-cases the first letter of each word, used for default repo
// names derived from directory names.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
