// Package config resolves where sitelog keeps its files.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LocalDataDir is the per-project data directory, relative to the working directory.
const LocalDataDir = ".sitelog"

// GetGlobalDataDir returns the path to the global data directory (~/.sitelog).
// It's a variable to allow overriding in tests.
var GetGlobalDataDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LocalDataDir), nil
}

// GetDataDir returns the directory holding the activity document.
// Resolution order (first match wins):
// 1. Explicit config via "data.dir" (Viper/env/flag)
// 2. Local project directory: .sitelog (if exists)
// 3. XDG_DATA_HOME/sitelog (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.sitelog
func GetDataDir() string {
	if path := viper.GetString("data.dir"); path != "" {
		return path
	}

	if info, err := os.Stat(LocalDataDir); err == nil && info.IsDir() {
		return LocalDataDir
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "sitelog")
	}

	dir, err := GetGlobalDataDir()
	if err != nil {
		return LocalDataDir
	}
	return dir
}

// Under joins a relative path onto base. Absolute paths are returned as is.
func Under(base, path string) string {
	if path == "" || filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}
