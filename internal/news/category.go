package news

import (
	"fmt"
	"strings"
)

// Category is a fixed topic label used to filter headlines.
type Category string

const (
	General       Category = "general"
	Sports        Category = "sports"
	Technology    Category = "technology"
	Business      Category = "business"
	Entertainment Category = "entertainment"
	Health        Category = "health"
	Science       Category = "science"
)

// DefaultCategory is shown at startup and backs categories without fallback data.
const DefaultCategory = General

// CategoryInfo is the display metadata for a category.
type CategoryInfo struct {
	ID   Category
	Name string
	Icon string
}

// catalog is in display order. Never modified at runtime.
var catalog = []CategoryInfo{
	{ID: General, Name: "General", Icon: "📰"},
	{ID: Sports, Name: "Sports", Icon: "⚽"},
	{ID: Technology, Name: "Technology", Icon: "💻"},
	{ID: Business, Name: "Business", Icon: "💼"},
	{ID: Entertainment, Name: "Entertainment", Icon: "🎬"},
	{ID: Health, Name: "Health", Icon: "🏥"},
	{ID: Science, Name: "Science", Icon: "🔬"},
}

// Categories returns the category catalog in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the display metadata for c.
func Lookup(c Category) (CategoryInfo, bool) {
	for _, info := range catalog {
		if info.ID == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Index returns the position of c in the catalog, or -1.
func (c Category) Index() int {
	for i, info := range catalog {
		if info.ID == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is part of the catalog.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Title returns "<icon> <name>" for headings, or the raw id for unknown categories.
func (c Category) Title() string {
	info, ok := Lookup(c)
	if !ok {
		return string(c)
	}
	return info.Icon + " " + info.Name
}

// ParseCategory maps user input (id or display name, any case) to a Category.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, info := range catalog {
		if s == string(info.ID) || s == strings.ToLower(info.Name) {
			return info.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", s, strings.Join(categoryIDs(), ", "))
}

func categoryIDs() []string {
	ids := make([]string, len(catalog))
	for i, info := range catalog {
		ids[i] = string(info.ID)
	}
	return ids
}
