package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/logging"
	"golang.org/x/time/rate"
)

const userAgent = "newsdesk/1.0 (+https://github.com/abelbrown/newsdesk)"

// NewsAPIClient fetches headlines from a NewsAPI-compatible HTTP service.
type NewsAPIClient struct {
	apiKey         string
	endpoint       string
	searchEndpoint string
	pageSize       int
	client         *http.Client
	limiter        *rate.Limiter
}

// NewNewsAPIClient creates a client from the news section of the config.
func NewNewsAPIClient(cfg config.NewsConfig) *NewsAPIClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	return &NewsAPIClient{
		apiKey:         cfg.APIKey,
		endpoint:       cfg.Endpoint,
		searchEndpoint: cfg.SearchEndpoint,
		pageSize:       pageSize,
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

// Name returns the provider identifier for logging.
func (c *NewsAPIClient) Name() string {
	return config.ProviderNewsAPI
}

// Available returns true if the API key looks usable.
func (c *NewsAPIClient) Available() bool {
	return config.NewsKeyUsable(c.apiKey)
}

// Headlines fetches one page of top headlines for category in country.
func (c *NewsAPIClient) Headlines(ctx context.Context, category Category, country string) ([]Article, error) {
	params := url.Values{}
	params.Set("category", string(category))
	if country != "" {
		params.Set("country", country)
	}
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(c.pageSize))

	return c.get(ctx, c.endpoint, params)
}

// Search queries the everything endpoint, newest first.
func (c *NewsAPIClient) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("sortBy", "publishedAt")

	return c.get(ctx, c.searchEndpoint, params)
}

func (c *NewsAPIClient) get(ctx context.Context, endpoint string, params url.Values) ([]Article, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var apiResp newsAPIResponse
	decodeErr := json.Unmarshal(body, &apiResp)

	if resp.StatusCode != http.StatusOK {
		msg := string(body)
		if decodeErr == nil && apiResp.Message != "" {
			msg = apiResp.Code + ": " + apiResp.Message
		}
		return nil, fmt.Errorf("newsapi error (status %d): %s", resp.StatusCode, truncate(msg, 200))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("parse response: %w", decodeErr)
	}
	if apiResp.Status == "error" {
		return nil, fmt.Errorf("newsapi error: %s: %s", apiResp.Code, apiResp.Message)
	}

	logging.Debug("newsapi: response",
		"path", u.Path,
		"articles", len(apiResp.Articles),
		"total", apiResp.TotalResults,
		"duration", time.Since(start))

	return apiResp.Articles, nil
}

// newsAPIResponse is the envelope shared by top-headlines and everything.
type newsAPIResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
