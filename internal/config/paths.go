package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigDir is the default directory name for unitsmith manifests
	DefaultConfigDir = ".unitsmith"
	// DefaultManifestName is the default manifest file name
	DefaultManifestName = "units.yaml"
)

// GetConfigDir returns the unitsmith configuration directory path.
// Defaults to ~/.unitsmith/ unless overridden by environment
func GetConfigDir() (string, error) {
	if dir := os.Getenv("UNITSMITH_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// FindManifest finds a manifest file by name.
// If name is an absolute path, returns it as-is.
// If name is a filename, looks in the config directory.
// If name is empty, looks for the default manifest
func FindManifest(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("manifest not found: %s", name)
			}
			return "", fmt.Errorf("failed to stat manifest %s: %w", name, err)
		}
		return name, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if name == "" {
		name = DefaultManifestName
	}

	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}

	manifestPath := filepath.Join(configDir, name)

	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("manifest not found: %s", manifestPath)
		}
		return "", fmt.Errorf("failed to stat manifest %s: %w", manifestPath, err)
	}

	return manifestPath, nil
}
