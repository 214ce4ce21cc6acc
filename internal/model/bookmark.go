// Package model defines the bookmark record and its validation rules.
package model

import (
	"net/url"
	"strings"
)

// Bookmark represents a saved URL with a title and a single tag.
// The JSON keys form the on-disk layout and must not change.
type Bookmark struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Tag   string `json:"tag"`
}

// NormalizeURL prepends "https://" when the raw value carries no scheme.
// Leading and trailing whitespace is stripped first. Scheme-only URLs
// like mailto:user@example.com already carry a scheme and pass through
// untouched, while host:port values like localhost:8080 do not count as
// schemes and still get the prefix.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || portLike(parsed.Opaque) {
		return "https://" + raw
	}
	return raw
}

// portLike reports whether an opaque part starts with a digit, which
// means the "scheme" was really a host followed by a port.
func portLike(opaque string) bool {
	return opaque != "" && opaque[0] >= '0' && opaque[0] <= '9'
}

// ValidateURL reports whether the (already normalized) URL is
// syntactically plausible: it parses and has both a scheme and a host.
func ValidateURL(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// SameURL compares two URLs case-insensitively. URL uniqueness in the
// collection is defined in these terms.
func SameURL(a, b string) bool {
	return strings.EqualFold(a, b)
}
