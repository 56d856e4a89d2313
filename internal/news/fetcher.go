package news

import (
	"context"
	"strings"
	"time"

	"github.com/abelbrown/newsdesk/internal/logging"
	"github.com/abelbrown/newsdesk/internal/otel"
	"github.com/google/uuid"
)

// Reason explains why a Result holds fallback articles.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNotConfigured Reason = "not_configured"
	ReasonEmpty         Reason = "empty"
	ReasonError         Reason = "error"
)

// Result is the outcome of one headline fetch. Articles is never empty.
type Result struct {
	Category  Category
	Articles  []Article
	Fallback  bool
	Reason    Reason
	RequestID string
	Duration  time.Duration
	Err       error // provider error behind a ReasonError/ReasonEmpty fallback
}

// Fetcher wraps a Provider with the fallback policy: headline failures are
// never surfaced to callers, they are replaced by the demo dataset.
type Fetcher struct {
	provider Provider
	events   otel.Emitter
	now      func() time.Time
}

// NewFetcher creates a Fetcher. events may be nil.
func NewFetcher(p Provider, events otel.Emitter) *Fetcher {
	return &Fetcher{
		provider: p,
		events:   events,
		now:      time.Now,
	}
}

// ProviderName returns the wrapped provider's name.
func (f *Fetcher) ProviderName() string {
	return f.provider.Name()
}

// Available reports whether live headlines can be requested at all.
func (f *Fetcher) Available() bool {
	return f.provider.Available()
}

// Fetch returns live headlines for category, or the fallback articles when the
// provider is unconfigured, fails, or returns nothing. No network call is made
// when the provider is unavailable.
func (f *Fetcher) Fetch(ctx context.Context, category Category, country string) Result {
	rid := uuid.NewString()
	start := f.now()
	name := f.provider.Name()

	otel.Emit(f.events, otel.Event{
		Level:     otel.LevelDebug,
		Kind:      otel.KindHeadlinesStart,
		Comp:      "news",
		RequestID: rid,
		Category:  string(category),
		Provider:  name,
	})

	if !f.provider.Available() {
		return f.fallback(category, rid, start, ReasonNotConfigured, nil)
	}

	articles, err := f.provider.Headlines(ctx, category, country)
	if err != nil {
		logging.Error("news: headline fetch failed",
			"provider", name, "category", category, "error", err)
		otel.Emit(f.events, otel.Event{
			Level:     otel.LevelError,
			Kind:      otel.KindHeadlinesError,
			Comp:      "news",
			RequestID: rid,
			Category:  string(category),
			Provider:  name,
			Err:       err.Error(),
		})
		return f.fallback(category, rid, start, ReasonError, err)
	}

	if len(articles) == 0 {
		return f.fallback(category, rid, start, ReasonEmpty, ErrEmptyResult)
	}

	dur := f.now().Sub(start)
	logging.Info("news: headlines loaded", "provider", name, "category", category, "count", len(articles), "duration", dur)
	otel.Emit(f.events, otel.Event{
		Level:     otel.LevelInfo,
		Kind:      otel.KindHeadlinesComplete,
		Comp:      "news",
		RequestID: rid,
		Category:  string(category),
		Provider:  name,
		Count:     len(articles),
		Dur:       dur,
	})

	return Result{
		Category:  category,
		Articles:  articles,
		RequestID: rid,
		Duration:  dur,
	}
}

// FetchByCategory returns Fetch(...).Articles: live or fallback, never empty.
func (f *Fetcher) FetchByCategory(ctx context.Context, category Category, country string) []Article {
	return f.Fetch(ctx, category, country).Articles
}

// Search runs a free-text query. Unlike headlines, failures yield an empty
// list and never fallback articles.
func (f *Fetcher) Search(ctx context.Context, query string) []Article {
	query = strings.TrimSpace(query)
	searcher, ok := f.provider.(Searcher)
	if query == "" || !ok || !f.provider.Available() {
		return []Article{}
	}

	rid := uuid.NewString()
	start := f.now()
	otel.Emit(f.events, otel.Event{
		Level:     otel.LevelDebug,
		Kind:      otel.KindSearchStart,
		Comp:      "news",
		RequestID: rid,
		Provider:  f.provider.Name(),
		Query:     query,
	})

	articles, err := searcher.Search(ctx, query)
	if err != nil {
		logging.Warn("news: search failed", "query", query, "error", err)
		otel.Emit(f.events, otel.Event{
			Level:     otel.LevelError,
			Kind:      otel.KindSearchError,
			Comp:      "news",
			RequestID: rid,
			Query:     query,
			Err:       err.Error(),
		})
		return []Article{}
	}

	if articles == nil {
		articles = []Article{}
	}
	otel.Emit(f.events, otel.Event{
		Level:     otel.LevelInfo,
		Kind:      otel.KindSearchComplete,
		Comp:      "news",
		RequestID: rid,
		Query:     query,
		Count:     len(articles),
		Dur:       f.now().Sub(start),
	})
	return articles
}

func (f *Fetcher) fallback(category Category, rid string, start time.Time, reason Reason, err error) Result {
	now := f.now()
	articles := Fallback(category, now)

	logging.Warn("news: using fallback headlines",
		"provider", f.provider.Name(), "category", category, "reason", reason, "error", err)

	ev := otel.Event{
		Level:     otel.LevelWarn,
		Kind:      otel.KindHeadlinesFallback,
		Comp:      "news",
		RequestID: rid,
		Category:  string(category),
		Provider:  f.provider.Name(),
		Count:     len(articles),
		Msg:       string(reason),
	}
	if err != nil {
		ev.Err = err.Error()
	}
	otel.Emit(f.events, ev)

	return Result{
		Category:  category,
		Articles:  articles,
		Fallback:  true,
		Reason:    reason,
		RequestID: rid,
		Duration:  now.Sub(start),
		Err:       err,
	}
}
