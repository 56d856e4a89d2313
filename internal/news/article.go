// Package news fetches category headlines and falls back to a static
// dataset when the live provider is unconfigured or failing.
package news

import "time"

// PlaceholderURL marks an article without a real link.
const PlaceholderURL = "#"

// Source names the publisher of an article.
type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article is a headline as returned by the provider. Immutable once built;
// the whole list is replaced on category change.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	URLToImage  string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"` // ISO-8601
	Author      string `json:"author,omitempty"`
	Source      Source `json:"source"`
}

// HasLink reports whether the article points somewhere real.
func (a Article) HasLink() bool {
	return a.URL != "" && a.URL != PlaceholderURL
}

// PublishedTime parses PublishedAt. ok is false when absent or malformed.
func (a Article) PublishedTime() (t time.Time, ok bool) {
	if a.PublishedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DisplayDate formats the publish date for cards.
func (a Article) DisplayDate() string {
	t, ok := a.PublishedTime()
	if !ok {
		return "Date not available"
	}
	return t.Local().Format("Jan 2, 2006")
}

// DescriptionOr returns the description, or def when it is empty.
func (a Article) DescriptionOr(def string) string {
	if a.Description == "" {
		return def
	}
	return a.Description
}
