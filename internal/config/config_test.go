package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable Load consults so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"NEWS_API_KEY", "VITE_NEWS_API_KEY",
		"OPENAI_API_KEY", "VITE_OPENAI_API_KEY",
		"OPENAI_MODEL", "NEWSDESK_COUNTRY", "NEWSDESK_PROVIDER",
	} {
		t.Setenv(k, "")
	}
}

func TestNewsKeyUsable(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"demo", false},
		{"your_news_api_key_here", false},
		{"abc123", true},
		{"0123456789abcdef0123456789abcdef", true},
	}
	for _, tt := range tests {
		if got := NewsKeyUsable(tt.key); got != tt.want {
			t.Errorf("NewsKeyUsable(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestCompletionKeyUsable(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"your_openai_api_key_here_padding", false},
		{"sk-short", false},
		{"sk-1234567890123456", false}, // 19 chars
		{"sk-12345678901234567", true}, // 20 chars
		{"sk-proj-abcdefghijklmnopqrstuvwxyz", true},
	}
	for _, tt := range tests {
		if got := CompletionKeyUsable(tt.key); got != tt.want {
			t.Errorf("CompletionKeyUsable(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.News.PageSize != 20 {
		t.Errorf("page size = %d, want 20", cfg.News.PageSize)
	}
	if cfg.News.Country != "us" {
		t.Errorf("country = %q, want us", cfg.News.Country)
	}
	if cfg.Completion.MaxTokens != 500 {
		t.Errorf("max tokens = %d, want 500", cfg.Completion.MaxTokens)
	}
	if cfg.Completion.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", cfg.Completion.Temperature)
	}
	if cfg.Completion.Model != "gpt-3.5-turbo" {
		t.Errorf("model = %q", cfg.Completion.Model)
	}

	st := cfg.Status()
	if st.News || st.Completion {
		t.Errorf("expected no usable credentials, got %+v", st)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"news": {"api_key": "file-key", "country": "gb"}, "completion": {"model": "gpt-4o-mini"}}`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VITE_NEWS_API_KEY", "env-news-key")
	t.Setenv("OPENAI_API_KEY", "sk-abcdefghijklmnopqrstuvwxyz")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.News.APIKey != "env-news-key" {
		t.Errorf("news key = %q, want env value", cfg.News.APIKey)
	}
	if cfg.News.Country != "gb" {
		t.Errorf("country = %q, want gb from file", cfg.News.Country)
	}
	if cfg.Completion.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want file value", cfg.Completion.Model)
	}
	// Zero values in the file are backfilled.
	if cfg.News.PageSize != 20 {
		t.Errorf("page size = %d, want default 20", cfg.News.PageSize)
	}

	st := cfg.Status()
	if !st.News || !st.Completion {
		t.Errorf("expected both credentials usable, got %+v", st)
	}
}

func TestLoadTemperature(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"explicit zero", `{"completion": {"temperature": 0}}`, 0},
		{"explicit value", `{"completion": {"temperature": 1.2}}`, 1.2},
		{"absent key", `{"completion": {"model": "gpt-4o-mini"}}`, 0.7},
		{"absent section", `{"news": {"country": "gb"}}`, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.body), 0600); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Completion.Temperature != tt.want {
				t.Errorf("temperature = %v, want %v", cfg.Completion.Temperature, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWSDESK_PROVIDER", "carrier-pigeon")

	if _, err := Load(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStatusRSSProviderUsesFeeds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.News.Provider = ProviderRSS
	if !cfg.Status().News {
		t.Error("rss provider with default feeds should report news configured")
	}

	cfg.News.Feeds = nil
	if cfg.Status().News {
		t.Error("rss provider without feeds should report news unconfigured")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.UI.DefaultCategory = "science"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("perm = %o, want 600", perm)
	}

	clearEnv(t)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UI.DefaultCategory != "science" {
		t.Errorf("default category = %q, want science", loaded.UI.DefaultCategory)
	}
}
