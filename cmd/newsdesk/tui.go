package main

import (
	"context"
	"fmt"

	"github.com/abelbrown/newsdesk/internal/brain"
	"github.com/abelbrown/newsdesk/internal/browser"
	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/desk"
	"github.com/abelbrown/newsdesk/internal/logging"
	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/abelbrown/newsdesk/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// headlineSource is the part of *news.Fetcher the TUI needs.
type headlineSource interface {
	Fetch(ctx context.Context, category news.Category, country string) news.Result
}

// newsAssistant is the part of *brain.Assistant the TUI needs.
type newsAssistant interface {
	AskQuestion(ctx context.Context, question string, articles []news.Article) brain.Answer
	Summarize(ctx context.Context, category news.Category, articles []news.Article) brain.Answer
}

// openLink is swapped in tests.
var openLink = browser.Open

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := setup(true)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	fetcher := news.NewFetcher(news.NewProvider(s.cfg.News), s.events)
	assistant := brain.NewAssistant(s.cfg.Completion, s.events)

	appCfg := newAppConfig(ctx, s.cfg, fetcher, assistant)
	appCfg.Category = s.defaultCategory()
	appCfg.Ring = s.ring
	appCfg.Events = s.events

	logging.Info("starting UI", "provider", fetcher.ProviderName(), "live", fetcher.Available(), "ai", assistant.Configured())
	program := tea.NewProgram(ui.NewApp(appCfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("application error", "error", err)
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// newAppConfig builds the command factories the App uses for all I/O.
func newAppConfig(ctx context.Context, cfg *config.Config, fetcher headlineSource, assistant newsAssistant) ui.AppConfig {
	creds := cfg.Status()
	country := cfg.News.Country

	return ui.AppConfig{
		Fetch: func(seq int, category news.Category) tea.Cmd {
			return func() tea.Msg {
				res := fetcher.Fetch(ctx, category, country)
				return ui.HeadlinesLoaded{
					Seq:         seq,
					Category:    category,
					Articles:    res.Articles,
					Fallback:    res.Fallback,
					Credentials: creds,
				}
			}
		},
		Summarize: func(seq int, category news.Category, articles []news.Article) tea.Cmd {
			return func() (msg tea.Msg) {
				defer func() {
					if r := recover(); r != nil {
						logging.Error("summarize panicked", "panic", r)
						msg = ui.SummaryLoaded{Seq: seq, Text: desk.ChatErrorText}
					}
				}()
				ans := assistant.Summarize(ctx, category, articles)
				return ui.SummaryLoaded{Seq: seq, Text: ans.Text}
			}
		},
		Ask: func(session int, question string, articles []news.Article) tea.Cmd {
			return func() (msg tea.Msg) {
				defer func() {
					if r := recover(); r != nil {
						logging.Error("ask panicked", "panic", r)
						msg = ui.ChatAnswered{Session: session, Err: fmt.Errorf("ask: %v", r)}
					}
				}()
				ans := assistant.AskQuestion(ctx, question, articles)
				return ui.ChatAnswered{Session: session, Text: ans.Text}
			}
		},
		OpenLink: func(url string) tea.Cmd {
			return func() tea.Msg {
				err := openLink(url)
				if err != nil {
					logging.Warn("open link failed", "url", url, "error", err)
				}
				return ui.LinkOpened{URL: url, Err: err}
			}
		},
		Credentials: creds,
		ShowImages:  cfg.UI.ShowImages,
	}
}
