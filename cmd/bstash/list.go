package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	listTag   string
	listTitle string
)

func init() {
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by exact tag (case-insensitive)")
	listCmd.Flags().StringVar(&listTitle, "title", "", "filter by exact title (case-insensitive)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks in stored order",
	Long: `List bookmarks in stored order, optionally filtered by exact tag or
title. Filters match case-insensitively. No matches means empty output,
not an error.

Examples:
  bstash list
  bstash list --tag dev
  bstash list --title 'Example Site'`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	_, _, s, err := openCollection()
	if err != nil {
		return err
	}

	renderBookmarks(os.Stdout, s.List(listTag, listTitle))
	return nil
}
