package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexander-shelton/BookmarkStash/internal/config"
	"gopkg.in/yaml.v3"
)

// clearEnv blanks the BSTASH_* overrides so ambient environment
// variables cannot leak into precedence tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BSTASH_FILE", "BSTASH_BROWSER", "BSTASH_EXPORT_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	res, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if res.ConfigPath != "" {
		t.Errorf("expected no config path for missing file, got %q", res.ConfigPath)
	}
	if res.Config.File == "" {
		t.Error("expected a default backing file path")
	}
	if res.Sources["file"] != config.SourceDefault {
		t.Errorf("expected default provenance, got %q", res.Sources["file"])
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := "file: /tmp/custom/bookmarks.json\nbrowser: firefox\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if res.Config.File != "/tmp/custom/bookmarks.json" {
		t.Errorf("expected file from config, got %q", res.Config.File)
	}
	if res.Config.Browser != "firefox" {
		t.Errorf("expected browser from config, got %q", res.Config.Browser)
	}
	if res.Sources["file"] != config.SourceFile || res.Sources["browser"] != config.SourceFile {
		t.Errorf("expected file provenance, got %v", res.Sources)
	}
	// Key absent from the file stays at its default
	if res.Sources["export_dir"] != config.SourceDefault {
		t.Errorf("expected default provenance for export_dir, got %q", res.Sources["export_dir"])
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(path, []byte("browser: firefox\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BSTASH_BROWSER", "chromium")
	t.Setenv("BSTASH_FILE", "/tmp/env/bookmarks.json")

	res, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if res.Config.Browser != "chromium" {
		t.Errorf("expected env to beat file, got %q", res.Config.Browser)
	}
	if res.Config.File != "/tmp/env/bookmarks.json" {
		t.Errorf("expected env to beat default, got %q", res.Config.File)
	}
	if res.Sources["browser"] != config.SourceEnv || res.Sources["file"] != config.SourceEnv {
		t.Errorf("expected env provenance, got %v", res.Sources)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(path, []byte("file: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for invalid config file")
	}
	var loadErr *config.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *config.LoadError, got %T: %v", err, err)
	}
	if loadErr.Path != path {
		t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, path)
	}
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	if err := config.WriteDefault(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config does not parse: %v", err)
	}
	if cfg.File == "" {
		t.Error("expected default file path in written config")
	}

	// A second write must refuse to clobber
	if err := config.WriteDefault(path); err == nil {
		t.Error("expected error when config file already exists")
	}
}

func TestDefaultConfigPath_RespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "bstash", "config.yaml")
	if got := config.DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
