package main

import (
	"fmt"
	"io"

	"github.com/alexander-shelton/BookmarkStash/internal/model"
	"github.com/alexander-shelton/BookmarkStash/internal/store"
)

// renderBookmarks writes the record blocks consumed by menu and
// launcher scripts:
//
//	Title: <title>
//	URL: <url>
//	Tag: <tag>
//
// separated by blank lines. This text contract is load-bearing for
// external tooling and must not change.
func renderBookmarks(w io.Writer, bookmarks []model.Bookmark) {
	for i, b := range bookmarks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Title: %s\n", b.Title)
		fmt.Fprintf(w, "URL: %s\n", b.URL)
		fmt.Fprintf(w, "Tag: %s\n", b.Tag)
	}
}

// renderLines writes one value per line.
func renderLines(w io.Writer, values []string) {
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}

// renderStats writes the aggregate summary, per-tag counts sorted by tag.
func renderStats(w io.Writer, stats store.Stats) {
	fmt.Fprintf(w, "Total bookmarks: %d\n", stats.Total)
	fmt.Fprintf(w, "Unique tags: %d\n", stats.UniqueTags)
	for _, tc := range stats.PerTag {
		fmt.Fprintf(w, "%s: %d\n", tc.Tag, tc.Count)
	}
}
