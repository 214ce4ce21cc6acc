package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-shelton/BookmarkStash/internal/model"
)

var (
	deleteURL   string
	deleteTitle string
)

func init() {
	deleteCmd.Flags().StringVar(&deleteURL, "url", "", "delete by URL (case-insensitive)")
	deleteCmd.Flags().StringVar(&deleteTitle, "title", "", "delete by title (case-insensitive)")
	deleteCmd.MarkFlagsOneRequired("url", "title")
	deleteCmd.MarkFlagsMutuallyExclusive("url", "title")
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete (--url <url> | --title <title>)",
	Short: "Delete bookmarks",
	Long: `Delete every bookmark matching the given URL or title,
case-insensitively. A title shared by several bookmarks deletes all of
them; the count is reported. No match is an error.

Examples:
  bstash delete --url https://example.com
  bstash delete --title 'Example Site'`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	_, jsonStorage, s, err := openCollection()
	if err != nil {
		return err
	}

	var deleted []model.Bookmark
	if deleteURL != "" {
		deleted, err = s.DeleteByURL(deleteURL)
	} else {
		deleted, err = s.DeleteByTitle(deleteTitle)
	}
	if err != nil {
		return err
	}

	if err := jsonStorage.Save(s.Bookmarks()); err != nil {
		return err
	}

	fmt.Printf("Deleted %d bookmark(s):\n", len(deleted))
	for _, b := range deleted {
		fmt.Printf("- %s (%s)\n", b.Title, b.URL)
	}
	return nil
}
