package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RepoConfig represents the per-repository configuration stored under .git
type RepoConfig struct {
	DefaultBranch *string `json:"defaultBranch,omitempty"`
	DefaultRemote *string `json:"defaultRemote,omitempty"`
	Visibility    *string `json:"visibility,omitempty"`
	Username      *string `json:"username,omitempty"`
}

func repoConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".initgit_config")
}

// GetRepoConfig reads the repository configuration.
// A missing config file yields defaults, not an error.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(repoConfigPath(repoRoot))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// DefaultBranch returns the configured default branch, or "master".
func DefaultBranch(repoRoot string) string {
	config, err := GetRepoConfig(repoRoot)
	if err == nil && config.DefaultBranch != nil && *config.DefaultBranch != "" {
		return *config.DefaultBranch
	}
	return "master"
}

// DefaultRemote returns the configured default remote, or "origin".
func DefaultRemote(repoRoot string) string {
	config, err := GetRepoConfig(repoRoot)
	if err == nil && config.DefaultRemote != nil && *config.DefaultRemote != "" {
		return *config.DefaultRemote
	}
	return "origin"
}

// SetDefaults writes branch/remote/username defaults into the repo config.
// Empty values leave the existing setting untouched.
func SetDefaults(repoRoot, branch, remote, username string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	if branch != "" {
		config.DefaultBranch = &branch
	}
	if remote != "" {
		config.DefaultRemote = &remote
	}
	if username != "" {
		config.Username = &username
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(repoConfigPath(repoRoot), configJSON, 0600)
}
