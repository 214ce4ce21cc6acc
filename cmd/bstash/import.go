package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexander-shelton/BookmarkStash/internal/importer"
	"github.com/alexander-shelton/BookmarkStash/internal/store"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.html>",
	Short: "Import bookmarks from a browser HTML export",
	Long: `Import bookmarks from a Netscape-format HTML export (the format every
major browser produces). Folder names become tags. Bookmarks whose URL
already exists (case-insensitive) are skipped, as are entries that fail
validation.

Example:
  bstash import ~/Downloads/bookmarks.html`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	parsed, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	_, jsonStorage, s, err := openCollection()
	if err != nil {
		return err
	}

	var added, skipped int
	for _, b := range parsed {
		if _, err := s.Add(b.URL, b.Title, b.Tag); err != nil {
			if errors.Is(err, store.ErrDuplicate) || store.IsValidation(err) {
				skipped++
				continue
			}
			return err
		}
		added++
	}

	if added > 0 {
		if err := jsonStorage.Save(s.Bookmarks()); err != nil {
			return err
		}
	}

	fmt.Printf("Imported %d bookmark(s)", added)
	if skipped > 0 {
		fmt.Printf(" (%d skipped)", skipped)
	}
	fmt.Println()
	return nil
}
