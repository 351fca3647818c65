package config

import (
	"os"
	"path/filepath"
)

const appName = "dumber-overlay"

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GetConfigDir returns the XDG config directory for dumber-overlay:
// $XDG_CONFIG_HOME/dumber-overlay, defaulting to ~/.config/dumber-overlay.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetSchemaFile returns the path of the generated JSON schema.
func GetSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.schema.json"), nil
}
