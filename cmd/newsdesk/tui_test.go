package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abelbrown/newsdesk/internal/brain"
	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/desk"
	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/abelbrown/newsdesk/internal/ui"
)

// stubSource returns fallback articles for every category and records calls.
type stubSource struct {
	mu    sync.Mutex
	calls []news.Category
	delay time.Duration
}

func (s *stubSource) Fetch(ctx context.Context, c news.Category, country string) news.Result {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.calls = append(s.calls, c)
	s.mu.Unlock()
	return news.Result{
		Category: c,
		Articles: news.Fallback(c, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Fallback: true,
		Reason:   news.ReasonNotConfigured,
	}
}

type stubAssistant struct {
	text  string
	panic bool
}

func (a *stubAssistant) AskQuestion(ctx context.Context, q string, articles []news.Article) brain.Answer {
	if a.panic {
		panic("boom")
	}
	return brain.Answer{Text: a.text + ": " + q}
}

func (a *stubAssistant) Summarize(ctx context.Context, c news.Category, articles []news.Article) brain.Answer {
	if a.panic {
		panic("boom")
	}
	return brain.Answer{Text: a.text, Err: brain.ErrNotConfigured}
}

func TestAppConfigFetch(t *testing.T) {
	cfg := config.DefaultConfig()
	appCfg := newAppConfig(context.Background(), cfg, &stubSource{}, &stubAssistant{})

	msg := appCfg.Fetch(7, news.Sports)()
	loaded, ok := msg.(ui.HeadlinesLoaded)
	if !ok {
		t.Fatalf("msg = %T, want ui.HeadlinesLoaded", msg)
	}
	if loaded.Seq != 7 || loaded.Category != news.Sports {
		t.Errorf("loaded = seq %d category %q", loaded.Seq, loaded.Category)
	}
	if !loaded.Fallback || len(loaded.Articles) != 2 {
		t.Errorf("fallback = %v, %d articles", loaded.Fallback, len(loaded.Articles))
	}
	if loaded.Credentials != (config.CredentialStatus{}) {
		t.Errorf("credentials = %+v, want none", loaded.Credentials)
	}
}

func TestAppConfigAssistant(t *testing.T) {
	appCfg := newAppConfig(context.Background(), config.DefaultConfig(), &stubSource{}, &stubAssistant{text: "reply"})

	answered := appCfg.Ask(3, "what happened?", nil)().(ui.ChatAnswered)
	if answered.Session != 3 || answered.Text != "reply: what happened?" || answered.Err != nil {
		t.Errorf("answered = %+v", answered)
	}

	// A canned answer is still text, not a failure.
	summary := appCfg.Summarize(5, news.General, nil)().(ui.SummaryLoaded)
	if summary.Seq != 5 || summary.Text != "reply" {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAppConfigRecoversPanics(t *testing.T) {
	appCfg := newAppConfig(context.Background(), config.DefaultConfig(), &stubSource{}, &stubAssistant{panic: true})

	answered := appCfg.Ask(1, "q", nil)().(ui.ChatAnswered)
	if answered.Err == nil {
		t.Error("panicking ask should report an error")
	}

	summary := appCfg.Summarize(2, news.General, nil)().(ui.SummaryLoaded)
	if summary.Seq != 2 || summary.Text != desk.ChatErrorText {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAppConfigOpenLink(t *testing.T) {
	orig := openLink
	defer func() { openLink = orig }()

	var opened string
	openLink = func(url string) error {
		opened = url
		if strings.Contains(url, "bad") {
			return errors.New("no opener")
		}
		return nil
	}

	appCfg := newAppConfig(context.Background(), config.DefaultConfig(), &stubSource{}, &stubAssistant{})

	msg := appCfg.OpenLink("https://example.com/a")().(ui.LinkOpened)
	if opened != "https://example.com/a" || msg.Err != nil {
		t.Errorf("opened %q, msg %+v", opened, msg)
	}
	msg = appCfg.OpenLink("https://example.com/bad")().(ui.LinkOpened)
	if msg.Err == nil {
		t.Error("launch error should be reported")
	}
}

func TestAppConfigCarriesUISettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.ShowImages = true
	cfg.News.APIKey = "a-real-looking-key"
	cfg.Completion.APIKey = "sk-0123456789abcdefghijklmnop"

	appCfg := newAppConfig(context.Background(), cfg, &stubSource{}, &stubAssistant{})
	if !appCfg.ShowImages {
		t.Error("ShowImages not carried over")
	}
	if want := (config.CredentialStatus{News: true, Completion: true}); appCfg.Credentials != want {
		t.Errorf("credentials = %+v, want %+v", appCfg.Credentials, want)
	}
}
