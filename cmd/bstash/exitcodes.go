package main

import (
	"errors"

	"github.com/alexander-shelton/BookmarkStash/internal/config"
	"github.com/alexander-shelton/BookmarkStash/internal/storage"
	"github.com/alexander-shelton/BookmarkStash/internal/store"
)

// Exit codes reported to calling scripts.
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // General error, including delete targets that matched nothing
	ExitStorage = 2 // Backing file unreadable, unwritable, or corrupt; config errors
	ExitData    = 3 // Validation failure or duplicate URL
)

// exitCode maps an error to its process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var storageErr *storage.StorageError
	if errors.As(err, &storageErr) {
		return ExitStorage
	}
	var loadErr *config.LoadError
	if errors.As(err, &loadErr) {
		return ExitStorage
	}
	if store.IsValidation(err) || errors.Is(err, store.ErrDuplicate) {
		return ExitData
	}
	return ExitError
}
