// Package desk holds the newsdesk application state and the pure
// transitions applied to it.
//
// Every transition takes a State by value and returns the next State. When a
// transition needs I/O it also returns an Effect describing the work; the
// caller performs it and feeds the outcome back through the matching
// *Loaded/*Answered transition. Outcomes carry the sequence number they were
// issued with, and results for superseded requests are dropped.
package desk

import (
	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/news"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry of the chat history.
type ChatMessage struct {
	Role Role
	Text string
}

// Chat is the overlay state. History lives only while Open.
type Chat struct {
	Open     bool
	Session  int
	Messages []ChatMessage
	Waiting  bool
}

// State is everything the display renders.
type State struct {
	Category news.Category
	Articles []news.Article
	Cursor   int
	Loading  bool
	FetchSeq int
	Fallback bool

	Summary        string
	SummaryLoading bool
	SummarySeq     int

	Chat        Chat
	Credentials config.CredentialStatus
}

// Effect is work requested by a transition.
type Effect interface {
	effect()
}

// FetchEffect asks for the headlines of Category.
type FetchEffect struct {
	Seq      int
	Category news.Category
}

// SummarizeEffect asks for a summary of Articles.
type SummarizeEffect struct {
	Seq      int
	Category news.Category
	Articles []news.Article
}

// AskEffect asks the assistant Question about Articles.
type AskEffect struct {
	Session  int
	Question string
	Articles []news.Article
}

func (FetchEffect) effect()     {}
func (SummarizeEffect) effect() {}
func (AskEffect) effect()       {}

// Selected returns the article under the cursor.
func (s State) Selected() (news.Article, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Articles) {
		return news.Article{}, false
	}
	return s.Articles[s.Cursor], true
}

// NeedsBanner reports whether a credential warning should be shown.
func (s State) NeedsBanner() bool {
	return !s.Credentials.News || !s.Credentials.Completion
}

// BannerLines returns one warning per missing credential.
func (s State) BannerLines() []string {
	var lines []string
	if !s.Credentials.News {
		lines = append(lines, "News API key not configured - showing mock data.")
	}
	if !s.Credentials.Completion {
		lines = append(lines, "OpenAI API key not configured - AI features disabled.")
	}
	return lines
}
