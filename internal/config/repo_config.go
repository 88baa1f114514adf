// Package config provides repository configuration management,
// including reading and writing downstack configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".downstack_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Trunk                      *string `json:"trunk,omitempty"`
	IsGithubIntegrationEnabled *bool   `json:"isGithubIntegrationEnabled,omitempty"`
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// GetTrunk returns the configured trunk branch name, or an empty string when
// no trunk is configured. The trunk is only used as a fallback start branch
// when HEAD is detached.
func GetTrunk(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Trunk != nil {
		return *config.Trunk, nil
	}
	return "", nil
}

// SetTrunk updates the trunk branch in the config
func SetTrunk(repoRoot string, trunkName string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.Trunk = &trunkName
	return writeRepoConfig(repoRoot, config)
}

// IsGithubIntegrationEnabled returns whether PR annotation via the GitHub API
// is enabled. Defaults to true; the feature already degrades gracefully
// without a token.
func IsGithubIntegrationEnabled(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.IsGithubIntegrationEnabled != nil {
		return *config.IsGithubIntegrationEnabled, nil
	}
	return true, nil
}

// SetGithubIntegrationEnabled updates the GitHub integration flag
func SetGithubIntegrationEnabled(repoRoot string, enabled bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.IsGithubIntegrationEnabled = &enabled
	return writeRepoConfig(repoRoot, config)
}

func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, configJSON, 0600)
}
