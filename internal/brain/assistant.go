package brain

import (
	"context"
	"strings"
	"time"

	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/logging"
	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/abelbrown/newsdesk/internal/otel"
	"github.com/google/uuid"
)

// Answer is the outcome of a completion operation. Text is always
// displayable; Err records why a canned text was used instead.
type Answer struct {
	Text string
	Err  error
}

// Assistant turns headline lists into prompts and completion answers.
// Calls are independent; it holds no conversation state.
type Assistant struct {
	provider    Provider
	configured  bool
	keyPresent  bool
	maxTokens   int
	temperature float64
	events      otel.Emitter
}

// NewAssistant creates an Assistant backed by the OpenAI provider.
func NewAssistant(cfg config.CompletionConfig, events otel.Emitter) *Assistant {
	return NewAssistantWithProvider(NewOpenAIProvider(cfg), cfg, events)
}

// NewAssistantWithProvider creates an Assistant over an explicit provider.
// The key in cfg still decides whether the provider is ever called.
func NewAssistantWithProvider(p Provider, cfg config.CompletionConfig, events otel.Emitter) *Assistant {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 500
	}
	return &Assistant{
		provider:    p,
		configured:  config.CompletionKeyUsable(cfg.APIKey) && p.Available(),
		keyPresent:  strings.TrimSpace(cfg.APIKey) != "",
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		events:      events,
	}
}

// Configured reports whether completion requests will reach the provider.
func (a *Assistant) Configured() bool {
	return a.configured
}

// AskQuestion answers a free-text question using the first five articles
// as context.
func (a *Assistant) AskQuestion(ctx context.Context, question string, articles []news.Article) Answer {
	if !a.configured {
		status := keyMissing
		if a.keyPresent {
			status = keyFoundInvalid
		}
		a.skipped("ask")
		return Answer{Text: askNotConfigured + status, Err: ErrNotConfigured}
	}

	text, err := a.generate(ctx, "ask", "", Request{
		SystemPrompt: askSystemPrompt,
		UserPrompt:   askPrompt(question, articles),
	})
	if err != nil {
		return Answer{Text: askApology, Err: err}
	}
	return Answer{Text: text}
}

// Summarize produces an overview of the first ten articles of a category.
func (a *Assistant) Summarize(ctx context.Context, category news.Category, articles []news.Article) Answer {
	if !a.configured {
		a.skipped("summarize")
		return Answer{Text: summaryNotConfigured(category), Err: ErrNotConfigured}
	}

	text, err := a.generate(ctx, "summarize", category, Request{
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   summaryPrompt(category, articles),
	})
	if err != nil {
		return Answer{Text: summaryApology, Err: err}
	}
	return Answer{Text: text}
}

func (a *Assistant) generate(ctx context.Context, op string, category news.Category, req Request) (string, error) {
	req.MaxTokens = a.maxTokens
	req.Temperature = a.temperature

	rid := uuid.NewString()
	start := time.Now()
	otel.Emit(a.events, otel.Event{
		Level:     otel.LevelDebug,
		Kind:      otel.KindCompletionStart,
		Comp:      "brain",
		RequestID: rid,
		Category:  string(category),
		Provider:  a.provider.Name(),
		Msg:       op,
	})

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		logging.Error("brain: completion failed", "op", op, "provider", a.provider.Name(), "error", err)
		otel.Emit(a.events, otel.Event{
			Level:     otel.LevelError,
			Kind:      otel.KindCompletionError,
			Comp:      "brain",
			RequestID: rid,
			Category:  string(category),
			Provider:  a.provider.Name(),
			Msg:       op,
			Err:       err.Error(),
			Dur:       time.Since(start),
		})
		return "", err
	}

	otel.Emit(a.events, otel.Event{
		Level:     otel.LevelInfo,
		Kind:      otel.KindCompletionComplete,
		Comp:      "brain",
		RequestID: rid,
		Category:  string(category),
		Provider:  a.provider.Name(),
		Msg:       op,
		Count:     len(resp.Content),
		Dur:       time.Since(start),
	})
	return resp.Content, nil
}

func (a *Assistant) skipped(op string) {
	logging.Warn("brain: completion key not configured, using canned text", "op", op)
	otel.Emit(a.events, otel.Event{
		Level: otel.LevelWarn,
		Kind:  otel.KindCompletionSkipped,
		Comp:  "brain",
		Msg:   op,
	})
}
