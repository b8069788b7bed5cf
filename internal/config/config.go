// Package config provides functions for loading and saving release-notes configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alan/release-notes/cmd"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by FromEnv
const (
	EnvAppID          = "APP_ID"
	EnvInstallationID = "INSTALLATION_ID"
	EnvPrivateKey     = "APP_PRIVATE_KEY"
	EnvOwner          = "GITHUB_OWNER"
	EnvRepo           = "GITHUB_REPO"
	EnvTagName        = "TAG_NAME"
	EnvPreviousTag    = "PREVIOUS_TAG"
	EnvAPIURL         = "GITHUB_API_URL"
)

// LoadConfig loads the configuration from the specified file
func LoadConfig(filename string) (*cmd.Config, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // Config filename is from command-line flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config cmd.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// LoadOptionalConfig behaves like LoadConfig but returns an empty config when the file does not exist
func LoadOptionalConfig(filename string) (*cmd.Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return &cmd.Config{}, nil
	}
	return config, err
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(filename string, config *cmd.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FromEnv builds a config from environment lookups
func FromEnv(getenv func(string) string) cmd.Config {
	return cmd.Config{
		AppID:          getenv(EnvAppID),
		InstallationID: getenv(EnvInstallationID),
		PrivateKey:     getenv(EnvPrivateKey),
		Owner:          getenv(EnvOwner),
		Repo:           getenv(EnvRepo),
		APIURL:         getenv(EnvAPIURL),
		TagName:        getenv(EnvTagName),
		PreviousTag:    getenv(EnvPreviousTag),
	}
}
