package news

import "time"

// fallbackArticles is the demo dataset shown when the live provider is
// unavailable. PublishedAt is stamped at lookup time.
var fallbackArticles = map[Category][]Article{
	Sports: {
		{
			Title:       "Major League Baseball Season Opens",
			Description: "The new season brings exciting matchups and rising stars.",
			URL:         PlaceholderURL,
			URLToImage:  "https://images.unsplash.com/photo-1566577739112-5180d4bf9390?w=800",
			Source:      Source{Name: "Sports News"},
		},
		{
			Title:       "Championship Finals This Weekend",
			Description: "Top teams compete for the ultimate prize in an epic showdown.",
			URL:         PlaceholderURL,
			URLToImage:  "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800",
			Source:      Source{Name: "Sports Daily"},
		},
	},
	Technology: {
		{
			Title:       "New AI Breakthrough Announced",
			Description: "Scientists achieve major milestone in artificial intelligence research.",
			URL:         PlaceholderURL,
			URLToImage:  "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=800",
			Source:      Source{Name: "Tech News"},
		},
		{
			Title:       "Latest Smartphone Release",
			Description: "New features and improved performance in the latest model.",
			URL:         PlaceholderURL,
			URLToImage:  "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800",
			Source:      Source{Name: "Tech Review"},
		},
	},
	Business: {
		{
			Title:       "Stock Market Reaches New Highs",
			Description: "Investors celebrate as markets continue upward trend.",
			URL:         PlaceholderURL,
			URLToImage:  "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800",
			Source:      Source{Name: "Business Today"},
		},
	},
	General: {
		{
			Title:       "Breaking: Major News Event",
			Description: "Important developments in current events.",
			URL:         PlaceholderURL,
			URLToImage:  "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=800",
			Source:      Source{Name: "News Network"},
		},
	},
}

// Fallback returns a fresh copy of the demo articles for category, or the
// default category's articles when category has none. Never empty.
func Fallback(category Category, now time.Time) []Article {
	src, ok := fallbackArticles[category]
	if !ok || len(src) == 0 {
		src = fallbackArticles[DefaultCategory]
	}

	stamp := now.UTC().Format(time.RFC3339)
	out := make([]Article, len(src))
	for i, a := range src {
		a.PublishedAt = stamp
		out[i] = a
	}
	return out
}
