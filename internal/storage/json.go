// Package storage persists the bookmark collection as a JSON array on disk.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexander-shelton/BookmarkStash/internal/model"
)

// StorageError reports a failed interaction with the backing file.
// The on-disk file is untouched whenever one is returned from Save.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// JSONStorage reads and writes a bookmark collection at a fixed path.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a JSONStorage for the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the backing file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the bookmark collection from the JSON file.
// A missing file yields an empty collection; a file that exists but
// does not parse yields a StorageError so corrupt data is never
// silently discarded.
func (s *JSONStorage) Load() ([]model.Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Bookmark{}, nil
		}
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}

	var bookmarks []model.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: fmt.Errorf("corrupt bookmark file: %w", err)}
	}

	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	return bookmarks, nil
}

// Save writes the full collection to the JSON file. The data is written
// to a temporary file in the same directory and renamed over the
// target, so readers never observe a truncated or half-written file.
// On error the previous file content is left exactly as it was.
func (s *JSONStorage) Save(bookmarks []model.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(bookmarks, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-")
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}
