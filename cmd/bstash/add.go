package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexander-shelton/BookmarkStash/internal/clipboard"
	"github.com/alexander-shelton/BookmarkStash/internal/model"
)

var addFromClipboard bool

func init() {
	addCmd.Flags().BoolVar(&addFromClipboard, "from-clipboard", false, "read the URL from the system clipboard")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <url> <title> <tag>",
	Short: "Add a new bookmark",
	Long: `Add a new bookmark. URLs without a scheme get https:// prepended.
Adding a URL that already exists (case-insensitive) is an error.

With --from-clipboard the URL is read from the system clipboard and
only <title> and <tag> are given as arguments.

Examples:
  bstash add https://example.com 'Example Site' tech
  bstash add example.com 'Example Site' tech
  bstash add --from-clipboard 'Example Site' tech`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	var url, title, tag string
	if addFromClipboard {
		if len(args) != 2 {
			return fmt.Errorf("with --from-clipboard, provide exactly <title> and <tag>")
		}
		var err error
		url, err = clipboard.ReadText()
		if err != nil {
			return fmt.Errorf("reading clipboard: %w", err)
		}
		title, tag = args[0], args[1]
	} else {
		if len(args) != 3 {
			return fmt.Errorf("provide <url> <title> <tag>, or use --from-clipboard")
		}
		url, title, tag = args[0], args[1], args[2]
	}

	_, jsonStorage, s, err := openCollection()
	if err != nil {
		return err
	}

	bookmark, err := s.Add(url, title, tag)
	if err != nil {
		return err
	}

	if err := jsonStorage.Save(s.Bookmarks()); err != nil {
		return err
	}

	fmt.Println("Added:")
	renderBookmarks(os.Stdout, []model.Bookmark{bookmark})
	return nil
}
