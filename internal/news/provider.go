package news

import (
	"context"
	"errors"
	"time"

	"github.com/abelbrown/newsdesk/internal/config"
)

// ErrEmptyResult is reported when a provider answers with no articles.
var ErrEmptyResult = errors.New("provider returned no articles")

// Provider is a live headline source
type Provider interface {
	// Name returns the provider name (e.g., "newsapi", "rss")
	Name() string

	// Available returns true if the provider is configured and ready
	Available() bool

	// Headlines fetches one page of top headlines for a category
	Headlines(ctx context.Context, category Category, country string) ([]Article, error)
}

// Searcher is implemented by providers that support free-text search.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Article, error)
}

// NewProvider builds the headline provider selected in cfg.
func NewProvider(cfg config.NewsConfig) Provider {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	switch cfg.Provider {
	case config.ProviderRSS:
		return NewRSSProvider(cfg.Feeds, cfg.PageSize, timeout)
	default:
		return NewNewsAPIClient(cfg)
	}
}
