// Package config resolves application configuration once at startup
// with the precedence: environment > config file > defaults.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDir is the directory name under XDG_CONFIG_HOME.
	AppDir = "bstash"
	// ConfigFile is the config file name inside AppDir.
	ConfigFile = "config.yaml"
	// BookmarksFile is the default backing file name inside AppDir.
	BookmarksFile = "bookmarks.json"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "BSTASH"
)

// Config holds the resolved application configuration.
type Config struct {
	// File is the path to the JSON backing file.
	File string `mapstructure:"file" yaml:"file"`
	// Browser is an explicit browser command. Empty means the system default.
	Browser string `mapstructure:"browser" yaml:"browser"`
	// ExportDir is the directory for HTML exports.
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		File:      filepath.Join(configHome(), AppDir, BookmarksFile),
		Browser:   "",
		ExportDir: defaultExportDir(),
	}
}

// DefaultConfigPath returns the config file location.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/bstash/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configHome(), AppDir, ConfigFile)
}

func configHome() string {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
