package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// LoadError reports a config file that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Value provenance labels reported by Load.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
)

// Result pairs the resolved config with where each field came from.
type Result struct {
	Config Config
	// ConfigPath is the config file that was read, empty if none existed.
	ConfigPath string
	// Sources maps field name ("file", "browser", "export_dir") to one
	// of the Source* labels.
	Sources map[string]string
}

// Load resolves the configuration. The file at path is optional; a
// missing file simply means defaults plus environment. If path is
// empty, DefaultConfigPath is used.
func Load(path string) (*Result, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	res := &Result{
		Config: Default(),
		Sources: map[string]string{
			"file":       SourceDefault,
			"browser":    SourceDefault,
			"export_dir": SourceDefault,
		},
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		res.ConfigPath = path

		if err := v.Unmarshal(&res.Config); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		for key := range res.Sources {
			if v.InConfig(key) {
				res.Sources[key] = SourceFile
			}
		}
	}

	applyEnvOverrides(res)

	if res.Config.File == "" {
		res.Config.File = Default().File
		res.Sources["file"] = SourceDefault
	}

	return res, nil
}

// applyEnvOverrides applies BSTASH_* environment variables on top of
// whatever the file and defaults produced.
func applyEnvOverrides(res *Result) {
	if v := os.Getenv(EnvPrefix + "_FILE"); v != "" {
		res.Config.File = v
		res.Sources["file"] = SourceEnv
	}
	if v := os.Getenv(EnvPrefix + "_BROWSER"); v != "" {
		res.Config.Browser = v
		res.Sources["browser"] = SourceEnv
	}
	if v := os.Getenv(EnvPrefix + "_EXPORT_DIR"); v != "" {
		res.Config.ExportDir = v
		res.Sources["export_dir"] = SourceEnv
	}
}

// WriteDefault writes the built-in configuration to path as YAML.
// Fails if the file already exists.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
