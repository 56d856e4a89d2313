package desk

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/news"
)

// ChatErrorText replaces an answer whose request failed outright.
const ChatErrorText = "I'm sorry, I encountered an error. Please try again."

// Greeting is the first assistant message of a chat session.
func Greeting(category news.Category) string {
	return fmt.Sprintf("Hello! I'm your AI news assistant. I can help you:\n"+
		"- Ask questions about specific news articles\n"+
		"- Get summaries of news categories\n"+
		"- Find information about current events\n\n"+
		"What would you like to know about %s news?", category)
}

// Init returns the startup state and its first fetch.
func Init(category news.Category, creds config.CredentialStatus) (State, Effect) {
	if !category.Valid() {
		category = news.DefaultCategory
	}
	s := State{Category: category, Credentials: creds}
	return SelectCategory(s, category)
}

// SelectCategory clears the articles and summary and starts a fetch for c.
// Selecting the current category reloads it.
func SelectCategory(s State, c news.Category) (State, Effect) {
	s.Category = c
	s.Articles = nil
	s.Cursor = 0
	s.Fallback = false
	s.Summary = ""
	s.SummaryLoading = false
	s.SummarySeq++
	s.Loading = true
	s.FetchSeq++
	return s, FetchEffect{Seq: s.FetchSeq, Category: c}
}

// Reload refetches the current category.
func Reload(s State) (State, Effect) {
	return SelectCategory(s, s.Category)
}

// HeadlinesLoaded applies a fetch result. Results for any fetch other than
// the latest are dropped.
func HeadlinesLoaded(s State, seq int, articles []news.Article, fallback bool, creds config.CredentialStatus) State {
	if seq != s.FetchSeq {
		return s
	}
	s.Articles = articles
	s.Fallback = fallback
	s.Credentials = creds
	s.Cursor = 0
	s.Loading = false
	return s
}

// MoveCursor moves the selection by delta, clamped to the article list.
func MoveCursor(s State, delta int) State {
	if len(s.Articles) == 0 {
		s.Cursor = 0
		return s
	}
	s.Cursor = max(0, min(len(s.Articles)-1, s.Cursor+delta))
	return s
}

// RequestSummary starts a summary of the current articles. It is a no-op
// while headlines or a summary are pending, or when there is nothing to
// summarize.
func RequestSummary(s State) (State, Effect) {
	if s.Loading || s.SummaryLoading || len(s.Articles) == 0 {
		return s, nil
	}
	s.SummaryLoading = true
	s.SummarySeq++
	return s, SummarizeEffect{
		Seq:      s.SummarySeq,
		Category: s.Category,
		Articles: slices.Clone(s.Articles),
	}
}

// SummaryLoaded stores the summary text of the latest summary request.
func SummaryLoaded(s State, seq int, text string) State {
	if seq != s.SummarySeq {
		return s
	}
	s.Summary = text
	s.SummaryLoading = false
	return s
}

// OpenChat shows the overlay with a fresh greeting.
func OpenChat(s State) State {
	if s.Chat.Open {
		return s
	}
	s.Chat = Chat{
		Open:     true,
		Session:  s.Chat.Session + 1,
		Messages: []ChatMessage{{Role: RoleAssistant, Text: Greeting(s.Category)}},
	}
	return s
}

// CloseChat hides the overlay and discards its history. A pending answer
// is dropped when it arrives.
func CloseChat(s State) State {
	if !s.Chat.Open {
		return s
	}
	s.Chat = Chat{Session: s.Chat.Session + 1}
	return s
}

// SubmitChat appends the user's message and asks the assistant. Blank input
// and input sent while an answer is pending are ignored.
func SubmitChat(s State, input string) (State, Effect) {
	question := strings.TrimSpace(input)
	if !s.Chat.Open || s.Chat.Waiting || question == "" {
		return s, nil
	}
	s.Chat.Messages = append(slices.Clone(s.Chat.Messages), ChatMessage{Role: RoleUser, Text: input})
	s.Chat.Waiting = true
	return s, AskEffect{
		Session:  s.Chat.Session,
		Question: question,
		Articles: slices.Clone(s.Articles),
	}
}

// ChatAnswered appends the assistant's reply, or ChatErrorText when err is
// set, to the session it was asked in.
func ChatAnswered(s State, session int, text string, err error) State {
	if !s.Chat.Open || session != s.Chat.Session {
		return s
	}
	if err != nil {
		text = ChatErrorText
	}
	s.Chat.Messages = append(slices.Clone(s.Chat.Messages), ChatMessage{Role: RoleAssistant, Text: text})
	s.Chat.Waiting = false
	return s
}
