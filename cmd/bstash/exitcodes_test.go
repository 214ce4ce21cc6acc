package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexander-shelton/BookmarkStash/internal/config"
	"github.com/alexander-shelton/BookmarkStash/internal/storage"
	"github.com/alexander-shelton/BookmarkStash/internal/store"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitError},
		{"not found", fmt.Errorf("url %q: %w", "x", store.ErrNotFound), ExitError},
		{"duplicate", fmt.Errorf("%q: %w", "x", store.ErrDuplicate), ExitData},
		{"validation", &store.ValidationError{Field: "url", Reason: "bad"}, ExitData},
		{"storage", &storage.StorageError{Op: "save", Path: "/x", Err: errors.New("denied")}, ExitStorage},
		{"wrapped storage", fmt.Errorf("saving: %w", &storage.StorageError{Op: "save", Path: "/x", Err: errors.New("denied")}), ExitStorage},
		{"config load", &config.LoadError{Path: "/x/config.yaml", Err: errors.New("bad yaml")}, ExitStorage},
		{"wrapped config load", fmt.Errorf("loading config: %w", &config.LoadError{Path: "/x/config.yaml", Err: errors.New("bad yaml")}), ExitStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCode_UnparsableConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("file: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error loading unparsable config")
	}
	if got := exitCode(err); got != ExitStorage {
		t.Errorf("exitCode(%v) = %d, want %d", err, got, ExitStorage)
	}
}
