// Package urlcleaner strips URLs at registered keyword markers.
package urlcleaner

import (
	"net/url"
	"slices"
	"strings"
)

// Cleaner truncates URLs at the first occurrence of any registered keyword.
// Keywords are literal substrings matched case-insensitively; the keyword
// list itself keeps insertion order and holds no exact duplicates.
// Not safe for concurrent use.
type Cleaner struct {
	keywords []string
}

func NewCleaner(keywords ...string) *Cleaner {
	c := &Cleaner{}
	c.SetKeywords(keywords)
	return c
}

// Clean cuts rawURL just before the earliest case-insensitive keyword match
// and makes sure the result ends with "/". Unparseable input, an empty
// keyword list and a no-match URL all fall back to the input itself, slash
// ensured. Never fails.
//
// Matching lowercases both sides, so byte offsets can drift for the few
// non-ASCII characters whose lowercase form has a different length; keywords
// are expected to be ASCII query markers like "?utm_source".
func (c *Cleaner) Clean(rawURL string) string {
	if _, err := url.Parse(rawURL); err != nil || len(c.keywords) == 0 {
		return ensureTrailingSlash(rawURL)
	}

	lower := strings.ToLower(rawURL)
	cut := -1
	for _, kw := range c.keywords {
		i := strings.Index(lower, strings.ToLower(kw))
		if i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return ensureTrailingSlash(rawURL)
	}
	// slice the original, not the lowercased copy
	return ensureTrailingSlash(rawURL[:cut])
}

// AddKeyword appends keyword unless the exact same string is already present.
func (c *Cleaner) AddKeyword(keyword string) {
	if c.HasKeyword(keyword) {
		return
	}
	c.keywords = append(c.keywords, keyword)
}

// RemoveKeyword drops the keyword if present, no-op otherwise.
func (c *Cleaner) RemoveKeyword(keyword string) {
	if i := slices.Index(c.keywords, keyword); i >= 0 {
		c.keywords = slices.Delete(c.keywords, i, i+1)
	}
}

func (c *Cleaner) ClearKeywords() {
	c.keywords = nil
}

// SetKeywords replaces the whole list, keeping the given order and skipping
// exact duplicates.
func (c *Cleaner) SetKeywords(keywords []string) {
	c.keywords = nil
	for _, kw := range keywords {
		c.AddKeyword(kw)
	}
}

// Keywords returns a copy; mutating it does not touch the cleaner.
func (c *Cleaner) Keywords() []string {
	return slices.Clone(c.keywords)
}

func (c *Cleaner) HasKeyword(keyword string) bool {
	return slices.Contains(c.keywords, keyword)
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
