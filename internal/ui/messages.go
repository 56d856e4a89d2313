// Package ui provides the Bubble Tea TUI for newsdesk.
package ui

import (
	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/news"
)

// HeadlinesLoaded is sent when a category fetch finishes. Articles is never
// empty; Fallback marks the demo dataset.
type HeadlinesLoaded struct {
	Seq         int
	Category    news.Category
	Articles    []news.Article
	Fallback    bool
	Credentials config.CredentialStatus
}

// SummaryLoaded is sent when a category summary finishes.
type SummaryLoaded struct {
	Seq  int
	Text string
}

// ChatAnswered is sent when the assistant replies. Err is set only when the
// request itself failed; canned answers arrive as Text.
type ChatAnswered struct {
	Session int
	Text    string
	Err     error
}

// LinkOpened is sent after an attempt to open an article in the browser.
type LinkOpened struct {
	URL string
	Err error
}
