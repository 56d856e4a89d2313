// Package config loads the newsdesk configuration object.
//
// Credentials are read once, at Load time, from the config file, a .env file
// in the working directory, and the process environment. The resulting
// *Config is passed explicitly to the services that need it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Provider names for the headline source.
const (
	ProviderNewsAPI = "newsapi"
	ProviderRSS     = "rss"
)

// Config is the persistent application configuration
type Config struct {
	News       NewsConfig       `json:"news"`
	Completion CompletionConfig `json:"completion"`
	UI         UIConfig         `json:"ui"`
}

// NewsConfig holds headline provider settings
type NewsConfig struct {
	Provider       string              `json:"provider"` // "newsapi" or "rss"
	APIKey         string              `json:"api_key,omitempty"`
	Endpoint       string              `json:"endpoint"`
	SearchEndpoint string              `json:"search_endpoint"`
	Country        string              `json:"country"`
	PageSize       int                 `json:"page_size"`
	TimeoutSeconds int                 `json:"timeout_seconds"`
	Feeds          map[string][]string `json:"feeds,omitempty"` // category -> RSS URLs
}

// CompletionConfig holds chat-completion settings
type CompletionConfig struct {
	APIKey         string  `json:"api_key,omitempty"`
	Endpoint       string  `json:"endpoint"`
	Model          string  `json:"model"`
	MaxTokens      int     `json:"max_tokens"`
	Temperature    float64 `json:"temperature"`
	TimeoutSeconds int     `json:"timeout_seconds"`
}

// UIConfig holds display preferences
type UIConfig struct {
	DefaultCategory string `json:"default_category"`
	ShowImages      bool   `json:"show_images"`
}

// CredentialStatus reports which providers have usable credentials.
// It only drives the warning banner.
type CredentialStatus struct {
	News       bool
	Completion bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		News: NewsConfig{
			Provider:       ProviderNewsAPI,
			Endpoint:       "https://newsapi.org/v2/top-headlines",
			SearchEndpoint: "https://newsapi.org/v2/everything",
			Country:        "us",
			PageSize:       20,
			TimeoutSeconds: 15,
			Feeds: map[string][]string{
				"general":    {"https://feeds.bbci.co.uk/news/rss.xml"},
				"technology": {"https://feeds.arstechnica.com/arstechnica/index", "https://www.theverge.com/rss/index.xml"},
				"science":    {"https://www.nature.com/nature.rss"},
				"business":   {"https://feeds.bloomberg.com/markets/news.rss"},
				"sports":     {"https://feeds.bbci.co.uk/sport/rss.xml"},
				"health":     {"https://feeds.bbci.co.uk/news/health/rss.xml"},
			},
		},
		Completion: CompletionConfig{
			Endpoint:       "https://api.openai.com/v1/chat/completions",
			Model:          "gpt-3.5-turbo",
			MaxTokens:      500,
			Temperature:    0.7,
			TimeoutSeconds: 60,
		},
		UI: UIConfig{
			DefaultCategory: "general",
		},
	}
}

// DataDir returns ~/.newsdesk, the home of the config file and logs.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".newsdesk")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from path (or the default path when empty), then
// layers .env and environment credentials on top.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// .env never overrides variables that are already set
	_ = godotenv.Load()

	cfg.AutoPopulateFromEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to path, or the default path when empty.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // Restrictive permissions for API keys
}

// AutoPopulateFromEnv fills in API keys and overrides from environment variables.
// The VITE_ names are accepted so an existing .env keeps working.
func (c *Config) AutoPopulateFromEnv() {
	if key := firstEnv("NEWS_API_KEY", "VITE_NEWS_API_KEY"); key != "" {
		c.News.APIKey = key
	}
	if key := firstEnv("OPENAI_API_KEY", "VITE_OPENAI_API_KEY"); key != "" {
		c.Completion.APIKey = key
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		c.Completion.Model = model
	}
	if country := os.Getenv("NEWSDESK_COUNTRY"); country != "" {
		c.News.Country = country
	}
	if provider := os.Getenv("NEWSDESK_PROVIDER"); provider != "" {
		c.News.Provider = provider
	}
}

// applyDefaults fills zero values left by a partial config file.
// Temperature is exempt: 0 is a valid setting, and an absent key keeps the
// default because Load decodes onto DefaultConfig.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.News.Provider == "" {
		c.News.Provider = d.News.Provider
	}
	if c.News.Endpoint == "" {
		c.News.Endpoint = d.News.Endpoint
	}
	if c.News.SearchEndpoint == "" {
		c.News.SearchEndpoint = d.News.SearchEndpoint
	}
	if c.News.Country == "" {
		c.News.Country = d.News.Country
	}
	if c.News.PageSize <= 0 {
		c.News.PageSize = d.News.PageSize
	}
	if c.News.TimeoutSeconds <= 0 {
		c.News.TimeoutSeconds = d.News.TimeoutSeconds
	}
	if c.Completion.Endpoint == "" {
		c.Completion.Endpoint = d.Completion.Endpoint
	}
	if c.Completion.Model == "" {
		c.Completion.Model = d.Completion.Model
	}
	if c.Completion.MaxTokens <= 0 {
		c.Completion.MaxTokens = d.Completion.MaxTokens
	}
	if c.Completion.TimeoutSeconds <= 0 {
		c.Completion.TimeoutSeconds = d.Completion.TimeoutSeconds
	}
	if c.UI.DefaultCategory == "" {
		c.UI.DefaultCategory = d.UI.DefaultCategory
	}
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	switch c.News.Provider {
	case ProviderNewsAPI, ProviderRSS:
	default:
		return fmt.Errorf("news.provider: unknown provider %q (valid: newsapi, rss)", c.News.Provider)
	}
	if c.Completion.Temperature < 0 || c.Completion.Temperature > 2 {
		return fmt.Errorf("completion.temperature: %v out of range [0, 2]", c.Completion.Temperature)
	}
	return nil
}

// Status derives the credential banner flags.
func (c *Config) Status() CredentialStatus {
	news := NewsKeyUsable(c.News.APIKey)
	if c.News.Provider == ProviderRSS {
		news = c.hasFeeds()
	}
	return CredentialStatus{
		News:       news,
		Completion: CompletionKeyUsable(c.Completion.APIKey),
	}
}

func (c *Config) hasFeeds() bool {
	for _, urls := range c.News.Feeds {
		if len(urls) > 0 {
			return true
		}
	}
	return false
}

// placeholderMarker is the prefix of the sample values shipped in .env.example.
const placeholderMarker = "your_"

// minCompletionKeyLen is the shortest completion key considered plausible.
const minCompletionKeyLen = 20

// NewsKeyUsable reports whether a news provider key looks configured.
func NewsKeyUsable(key string) bool {
	return key != "" && key != "demo" && !strings.Contains(key, placeholderMarker)
}

// CompletionKeyUsable reports whether a completion key passes the
// superficial check: non-empty, no placeholder marker, long enough.
func CompletionKeyUsable(key string) bool {
	return key != "" && !strings.Contains(key, placeholderMarker) && len(key) >= minCompletionKeyLen
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
