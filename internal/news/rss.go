package news

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/logging"
	"github.com/mmcdole/gofeed"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// RSSProvider builds category headlines from a fixed set of RSS/Atom feeds.
// It needs no credentials; a category without feeds yields no articles.
type RSSProvider struct {
	feeds    map[Category][]string
	pageSize int
	client   *http.Client
}

// NewRSSProvider creates a provider over category -> feed URL lists.
func NewRSSProvider(feeds map[string][]string, pageSize int, timeout time.Duration) *RSSProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	byCategory := make(map[Category][]string, len(feeds))
	for name, urls := range feeds {
		byCategory[Category(name)] = append([]string(nil), urls...)
	}
	return &RSSProvider{
		feeds:    byCategory,
		pageSize: pageSize,
		client:   &http.Client{Timeout: timeout},
	}
}

// Name returns the provider identifier for logging.
func (p *RSSProvider) Name() string {
	return config.ProviderRSS
}

// Available returns true if at least one feed is configured.
func (p *RSSProvider) Available() bool {
	for _, urls := range p.feeds {
		if len(urls) > 0 {
			return true
		}
	}
	return false
}

// Headlines merges the category's feeds, newest first. country is ignored.
// A failing feed is skipped as long as another one returns items.
func (p *RSSProvider) Headlines(ctx context.Context, category Category, country string) ([]Article, error) {
	urls := p.feeds[category]
	if len(urls) == 0 {
		return nil, nil
	}

	var (
		articles []Article
		errs     []error
	)
	for _, u := range urls {
		items, err := p.fetchFeed(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn("rss: feed failed", "url", u, "error", err)
			errs = append(errs, err)
			continue
		}
		articles = append(articles, items...)
	}

	if len(articles) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		ti, _ := articles[i].PublishedTime()
		tj, _ := articles[j].PublishedTime()
		return ti.After(tj)
	})
	if len(articles) > p.pageSize {
		articles = articles[:p.pageSize]
	}
	return articles, nil
}

func (p *RSSProvider) fetchFeed(ctx context.Context, feedURL string) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	parser := gofeed.NewParser()
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	sourceName := strings.TrimSpace(feed.Title)
	if sourceName == "" {
		sourceName = hostOf(feedURL)
	}

	out := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		out = append(out, convertFeedItem(item, sourceName))
	}
	return out, nil
}

// convertFeedItem converts a gofeed.Item to an Article.
func convertFeedItem(item *gofeed.Item, sourceName string) Article {
	var published string
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC().Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		published = item.UpdatedParsed.UTC().Format(time.RFC3339)
	}

	description := item.Description
	if description == "" {
		description = item.Content
	}

	author := ""
	if item.Author != nil {
		author = item.Author.Name
	}

	return Article{
		Title:       strings.TrimSpace(html.UnescapeString(item.Title)),
		Description: truncate(stripHTML(description), 300),
		URL:         item.Link,
		URLToImage:  imageOf(item),
		PublishedAt: published,
		Author:      author,
		Source:      Source{Name: sourceName},
	}
}

func imageOf(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func stripHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}
