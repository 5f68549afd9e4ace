// Package project persists projects and application configuration as
// JSON files under the user's home directory.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/CubePack/internal/model"
)

// DefaultConfigDir returns the directory CubePack keeps its state in,
// ~/.cubepack. Without a resolvable home directory the working
// directory is used.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cubepack"
	}
	return filepath.Join(home, ".cubepack")
}

// DefaultConfigPath returns the app config file inside DefaultConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists the app config to the given path.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads the app config from the given path. A missing
// file is not an error: the defaults are returned so first launch
// works without any setup.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.DefaultAppConfig(), nil
	}
	if err != nil {
		return model.AppConfig{}, err
	}

	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}
