// Package search provides fuzzy matching over the bookmark collection
// for the interactive open command.
package search

import (
	"github.com/alexander-shelton/BookmarkStash/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkSource implements fuzzy.Source. Matching runs over the title
// followed by the tag so either can be typed in the picker.
type bookmarkSource []model.Bookmark

func (bs bookmarkSource) String(i int) string {
	return bs[i].Title + " " + bs[i].Tag
}

func (bs bookmarkSource) Len() int {
	return len(bs)
}

// Fuzzy searches the bookmarks by title and tag using fuzzy matching.
// Returns results sorted by match score (best first). An empty query
// returns every bookmark in stored order.
func Fuzzy(bookmarks []model.Bookmark, query string) []Result {
	if query == "" {
		results := make([]Result, len(bookmarks))
		for i, b := range bookmarks {
			results[i] = Result{Bookmark: b}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, bookmarkSource(bookmarks))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
