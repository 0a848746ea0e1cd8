package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/gitmsg/config.yml
// - macOS: ~/Library/Application Support/gitmsg/config.yml
// - Windows: %APPDATA%\gitmsg\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gitmsg", "config.yml"), nil
}

// UserConfigDir returns the path to the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gitmsg"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .gitmsg/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".gitmsg", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".gitmsg"
}

// LegacyUserConfigPath returns the path to the legacy user-level JSON
// config file: ~/.gitmsg/config.json
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".gitmsg", "config.json"), nil
}

// LegacyProjectConfigPath returns the path to the legacy project-level
// JSON config file: .gitmsg/config.json
func LegacyProjectConfigPath() string {
	return filepath.Join(".gitmsg", "config.json")
}
