// Package exporter renders the collection as Netscape bookmark HTML.
package exporter

import (
	"fmt"
	"html"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexander-shelton/BookmarkStash/internal/model"
)

// DefaultExportPath returns the export file path inside dir.
// Format: <dir>/bookmarks-export-YYYY-MM-DD.html
func DefaultExportPath(dir string) string {
	filename := fmt.Sprintf("bookmarks-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(dir, filename)
}

// ExportHTML renders the bookmarks in Netscape bookmark HTML format.
// Each tag becomes a folder; bookmarks keep their stored order within
// a folder and folders are sorted by tag.
func ExportHTML(bookmarks []model.Bookmark) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	byTag := make(map[string][]model.Bookmark)
	var tags []string
	for _, bookmark := range bookmarks {
		if _, ok := byTag[bookmark.Tag]; !ok {
			tags = append(tags, bookmark.Tag)
		}
		byTag[bookmark.Tag] = append(byTag[bookmark.Tag], bookmark)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(tag))
		b.WriteString("    <DL><p>\n")
		for _, bookmark := range byTag[tag] {
			fmt.Fprintf(&b,
				"        <DT><A HREF=\"%s\">%s</A>\n",
				html.EscapeString(bookmark.URL),
				html.EscapeString(bookmark.Title),
			)
		}
		b.WriteString("    </DL><p>\n")
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}
