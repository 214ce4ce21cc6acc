package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexander-shelton/BookmarkStash/internal/browser"
	"github.com/alexander-shelton/BookmarkStash/internal/clipboard"
	"github.com/alexander-shelton/BookmarkStash/internal/model"
	"github.com/alexander-shelton/BookmarkStash/internal/picker"
	"github.com/alexander-shelton/BookmarkStash/internal/search"
)

var openCopy bool

func init() {
	openCmd.Flags().BoolVar(&openCopy, "copy", false, "copy the URL to the clipboard instead of opening it")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open [query...]",
	Short: "Fuzzy-search and open a bookmark in the browser",
	Long: `Fuzzy-search bookmarks by title and tag and open the selection in a
browser. A query matching exactly one bookmark opens it directly;
otherwise an interactive picker with a live filter appears.

The browser can be overridden via the config file or BSTASH_BROWSER.
With --copy the URL lands on the clipboard instead.

Examples:
  bstash open
  bstash open hacker news
  bstash open --copy docs`,
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	res, _, s, err := openCollection()
	if err != nil {
		return err
	}

	if s.Len() == 0 {
		fmt.Println("No bookmarks yet. Add one with: bstash add <url> <title> <tag>")
		return nil
	}

	var selected *model.Bookmark

	if results := search.Fuzzy(s.Bookmarks(), query); query != "" && len(results) == 1 {
		// Single match opens without the picker
		selected = &results[0].Bookmark
	} else {
		p := picker.New(s.Bookmarks(), query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			return fmt.Errorf("running picker: %w", err)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return nil
		}
		selected = finalPicker.Selected()
	}

	if selected == nil {
		return nil
	}

	if openCopy {
		if err := clipboard.WriteText(selected.URL); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Printf("Copied: %s\n", selected.URL)
		return nil
	}

	fmt.Printf("Opening: %s\n", selected.Title)
	return browser.Open(selected.URL, res.Config.Browser)
}
