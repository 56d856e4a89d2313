package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/newsdesk/internal/brain"
	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/news"
)

func TestHeadlineCategories(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		all     bool
		want    []news.Category
		wantErr bool
	}{
		{"default", "", false, []news.Category{news.Business}, false},
		{"by id", "sports", false, []news.Category{news.Sports}, false},
		{"by name", "Technology", false, []news.Category{news.Technology}, false},
		{"unknown", "weather", false, nil, true},
		{"all and category", "sports", true, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := headlineCategories(tt.flag, tt.all, news.Business)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) || got[0] != tt.want[0] {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	all, err := headlineCategories("", true, news.Business)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(news.Categories()) || all[0] != news.General {
		t.Errorf("--all = %v", all)
	}
}

func TestFetchCategoriesKeepsOrder(t *testing.T) {
	src := &stubSource{delay: 5 * time.Millisecond}
	cats, _ := headlineCategories("", true, news.General)

	results := fetchCategories(context.Background(), src, cats, "us")

	if len(src.calls) != len(cats) {
		t.Fatalf("fetches = %d, want %d", len(src.calls), len(cats))
	}
	for i, res := range results {
		if res.Category != cats[i] {
			t.Errorf("results[%d] = %q, want %q", i, res.Category, cats[i])
		}
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, (&stubSource{}).Fetch(context.Background(), news.Technology, "us"))

	out := buf.String()
	for _, want := range []string{"Technology News", "[demo data: not_configured]", " 1. New AI Breakthrough Announced", "Tech News"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Demo articles link to "#", which is not printed.
	if strings.Contains(out, "#\n") {
		t.Errorf("placeholder link printed:\n%s", out)
	}
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	src := &stubSource{}
	results := []news.Result{src.Fetch(context.Background(), news.Business, "us")}
	if err := writeResultsJSON(&buf, results); err != nil {
		t.Fatal(err)
	}

	var decoded []struct {
		Category string         `json:"category"`
		Fallback bool           `json:"fallback"`
		Reason   string         `json:"reason"`
		Articles []news.Article `json:"articles"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Category != "business" || !decoded[0].Fallback || decoded[0].Reason != "not_configured" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded[0].Articles[0].Title != "Stock Market Reaches New Highs" {
		t.Errorf("article = %+v", decoded[0].Articles[0])
	}
}

func TestAnswerPrintsText(t *testing.T) {
	var buf bytes.Buffer
	err := answer(context.Background(), &buf, &stubSource{}, &stubAssistant{text: "demo summary"}, news.Sports, "us",
		func(ctx context.Context, a newsAssistant, res news.Result) brain.Answer {
			if res.Category != news.Sports {
				t.Errorf("category = %q", res.Category)
			}
			return a.Summarize(ctx, res.Category, res.Articles)
		})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "demo summary" {
		t.Errorf("output = %q", got)
	}
}

func TestInitConfigOmitsKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.DefaultConfig()
	cfg.News.APIKey = "news-secret"
	cfg.Completion.APIKey = "sk-secret-0123456789abcdef"

	if err := initConfig(cfg, path); err != nil {
		t.Fatalf("initConfig: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("config file contains a key:\n%s", data)
	}
	if cfg.News.APIKey != "news-secret" {
		t.Error("initConfig must not modify the loaded config")
	}

	if err := initConfig(cfg, path); err == nil {
		t.Error("second initConfig should refuse to overwrite")
	}
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	printStatus(&buf, cfg, filepath.Join(t.TempDir(), "missing.json"))

	out := buf.String()
	for _, want := range []string{"not found, using defaults", "newsapi", "gpt-3.5-turbo", "News key:    not configured"} {
		if !strings.Contains(out, want) {
			t.Errorf("status missing %q:\n%s", want, out)
		}
	}
}

func TestCredentialLabel(t *testing.T) {
	tests := []struct {
		ok, rss bool
		want    string
	}{
		{true, false, "configured"},
		{false, false, "not configured"},
		{true, true, "feeds configured"},
		{false, true, "no feeds configured (demo data)"},
	}
	for _, tt := range tests {
		if got := credentialLabel(tt.ok, tt.rss); got != tt.want {
			t.Errorf("credentialLabel(%v, %v) = %q, want %q", tt.ok, tt.rss, got, tt.want)
		}
	}
}
