// Package config provides configuration for initgit, combining environment
// variables with an optional per-repository config file.
package config

import (
	"os"
	"time"
)

// Config carries the process-wide settings, resolved once at startup and
// threaded explicitly through operation calls.
type Config struct {
	// Username is the GitHub username default, from GITHUB_USERNAME.
	Username string

	// IgnoreTemplate is an optional path to a .gitignore template file,
	// from GITIGNORE_TEXTFILE.
	IgnoreTemplate string

	// LogFile is the file log destination, from LOG_FILE.
	LogFile string

	// LogEnabled toggles file logging, from LOG.
	LogEnabled bool

	// DebugEnabled toggles debug output, from DEBUG.
	DebugEnabled bool

	// Delay is the post-command settle delay applied to every invocation.
	Delay time.Duration
}

// FromEnv builds a Config from the process environment.
func FromEnv() *Config {
	cfg := &Config{
		Username:       os.Getenv("GITHUB_USERNAME"),
		IgnoreTemplate: os.Getenv("GITIGNORE_TEXTFILE"),
		LogFile:        os.Getenv("LOG_FILE"),
		LogEnabled:     envToggle("LOG"),
		DebugEnabled:   envToggle("DEBUG"),
	}
	if cfg.LogEnabled && cfg.LogFile == "" {
		cfg.LogFile = "debug.log"
	}
	return cfg
}

// envToggle reports whether a flag-style environment variable is switched on.
func envToggle(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0"
}
