// Package store holds the in-memory bookmark collection and its
// operations. Persistence is the caller's concern; every operation here
// works on the loaded slice and preserves insertion order.
package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexander-shelton/BookmarkStash/internal/model"
)

// Store is an ordered collection of bookmarks.
type Store struct {
	bookmarks []model.Bookmark
}

// New creates a Store over the given records.
func New(bookmarks []model.Bookmark) *Store {
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	return &Store{bookmarks: bookmarks}
}

// Bookmarks returns the full collection in stored order.
func (s *Store) Bookmarks() []model.Bookmark {
	return s.bookmarks
}

// Len returns the number of bookmarks.
func (s *Store) Len() int {
	return len(s.bookmarks)
}

// Add normalizes and validates the URL, rejects duplicates, and appends
// a new bookmark. Returns the created record.
func (s *Store) Add(rawURL, title, tag string) (model.Bookmark, error) {
	url := model.NormalizeURL(rawURL)
	title = strings.TrimSpace(title)
	tag = strings.TrimSpace(tag)

	if !model.ValidateURL(url) {
		return model.Bookmark{}, &ValidationError{Field: "url", Reason: fmt.Sprintf("%q is not a valid URL", rawURL)}
	}
	if title == "" {
		return model.Bookmark{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if tag == "" {
		return model.Bookmark{}, &ValidationError{Field: "tag", Reason: "must not be empty"}
	}

	for _, b := range s.bookmarks {
		if model.SameURL(b.URL, url) {
			return model.Bookmark{}, fmt.Errorf("%q: %w", url, ErrDuplicate)
		}
	}

	bookmark := model.Bookmark{URL: url, Title: title, Tag: tag}
	s.bookmarks = append(s.bookmarks, bookmark)
	return bookmark, nil
}

// List returns bookmarks in stored order. A non-empty tagFilter or
// titleFilter restricts the result to exact case-insensitive matches.
func (s *Store) List(tagFilter, titleFilter string) []model.Bookmark {
	result := []model.Bookmark{}
	for _, b := range s.bookmarks {
		if tagFilter != "" && !strings.EqualFold(b.Tag, tagFilter) {
			continue
		}
		if titleFilter != "" && !strings.EqualFold(b.Title, titleFilter) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// Search returns bookmarks matching exactly one selector: a free-text
// query matches as a case-insensitive substring of URL, title, or tag;
// tagFilter and titleFilter match exactly, case-insensitively.
// Supplying zero or multiple selectors is a validation error.
func (s *Store) Search(query, tagFilter, titleFilter string) ([]model.Bookmark, error) {
	selectors := 0
	for _, v := range []string{query, tagFilter, titleFilter} {
		if strings.TrimSpace(v) != "" {
			selectors++
		}
	}
	if selectors != 1 {
		return nil, &ValidationError{Field: "query", Reason: "exactly one of query, --tag, or --title is required"}
	}

	if tagFilter != "" || titleFilter != "" {
		return s.List(tagFilter, titleFilter), nil
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	result := []model.Bookmark{}
	for _, b := range s.bookmarks {
		if strings.Contains(strings.ToLower(b.URL), needle) ||
			strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Tag), needle) {
			result = append(result, b)
		}
	}
	return result, nil
}

// DeleteByURL removes every bookmark whose URL matches the given one
// case-insensitively. The selector is normalized first, so a bare
// "example.com" matches a stored "https://example.com". Returns the
// deleted records, or ErrNotFound when nothing matched.
func (s *Store) DeleteByURL(rawURL string) ([]model.Bookmark, error) {
	url := model.NormalizeURL(rawURL)
	return s.deleteMatching(func(b model.Bookmark) bool {
		return model.SameURL(b.URL, url)
	}, fmt.Sprintf("url %q", rawURL))
}

// DeleteByTitle removes every bookmark whose title matches the given
// one case-insensitively. Returns the deleted records, or ErrNotFound
// when nothing matched.
func (s *Store) DeleteByTitle(title string) ([]model.Bookmark, error) {
	return s.deleteMatching(func(b model.Bookmark) bool {
		return strings.EqualFold(b.Title, title)
	}, fmt.Sprintf("title %q", title))
}

func (s *Store) deleteMatching(match func(model.Bookmark) bool, selector string) ([]model.Bookmark, error) {
	kept := s.bookmarks[:0:0]
	var deleted []model.Bookmark
	for _, b := range s.bookmarks {
		if match(b) {
			deleted = append(deleted, b)
		} else {
			kept = append(kept, b)
		}
	}
	if len(deleted) == 0 {
		return nil, fmt.Errorf("%s: %w", selector, ErrNotFound)
	}
	s.bookmarks = kept
	return deleted, nil
}

// Tags returns the distinct tag values, lexicographically sorted.
func (s *Store) Tags() []string {
	return distinct(s.bookmarks, func(b model.Bookmark) string { return b.Tag })
}

// Titles returns the distinct title values, lexicographically sorted.
func (s *Store) Titles() []string {
	return distinct(s.bookmarks, func(b model.Bookmark) string { return b.Title })
}

func distinct(bookmarks []model.Bookmark, key func(model.Bookmark) string) []string {
	seen := make(map[string]struct{}, len(bookmarks))
	values := []string{}
	for _, b := range bookmarks {
		v := key(b)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// TagCount pairs a tag with the number of bookmarks carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// Stats holds aggregate counts over the collection.
type Stats struct {
	Total      int
	UniqueTags int
	PerTag     []TagCount // sorted lexicographically by tag
}

// Stats computes aggregate counts for the collection.
func (s *Store) Stats() Stats {
	counts := make(map[string]int)
	for _, b := range s.bookmarks {
		counts[b.Tag]++
	}

	perTag := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		perTag = append(perTag, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(perTag, func(i, j int) bool { return perTag[i].Tag < perTag[j].Tag })

	return Stats{
		Total:      len(s.bookmarks),
		UniqueTags: len(counts),
		PerTag:     perTag,
	}
}
