package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	searchTag   string
	searchTitle string
)

func init() {
	searchCmd.Flags().StringVar(&searchTag, "tag", "", "match by exact tag (case-insensitive)")
	searchCmd.Flags().StringVar(&searchTitle, "title", "", "match by exact title (case-insensitive)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search bookmarks",
	Long: `Search bookmarks. A free-text query matches as a case-insensitive
substring of URL, title, or tag. --tag and --title match exactly.
Exactly one of query, --tag, or --title must be given.

Examples:
  bstash search python
  bstash search --tag web
  bstash search --title 'Example Site'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	_, _, s, err := openCollection()
	if err != nil {
		return err
	}

	results, err := s.Search(query, searchTag, searchTitle)
	if err != nil {
		return err
	}

	renderBookmarks(os.Stdout, results)
	return nil
}
