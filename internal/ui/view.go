package ui

import (
	"strings"

	"github.com/abelbrown/newsdesk/internal/desk"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI. It is a pure function of the model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.showDebug && a.cfg.Ring != nil {
		overlay := debugOverlay(a.cfg.Ring, a.width, a.height-1)
		body := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, overlay)
		return body + "\n" + debugStatusBar(a.width)
	}

	if a.state.Chat.Open {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.chatOverlay())
	}

	var top []string
	top = append(top, Header.Width(a.width).Render("newsdesk  AI News Assistant"))
	if a.state.NeedsBanner() {
		for _, line := range a.state.BannerLines() {
			top = append(top, Banner.Width(a.width).Render("! "+line))
		}
	}
	top = append(top, RenderTabs(a.state.Category, a.width))
	top = append(top, SectionTitle.Render(a.state.Category.Title()+" News"))
	if panel := a.summaryPanel(); panel != "" {
		top = append(top, panel)
	}
	head := strings.Join(top, "\n")

	busy := ""
	if label := a.busyLabel(); label != "" {
		busy = a.spinner.View() + " " + label
	}
	status := RenderStatusBar(a.state.Cursor, len(a.state.Articles), a.width, busy, a.notice)

	cardsHeight := a.height - lipgloss.Height(head) - 2
	var body string
	if a.state.Loading {
		body = HelpStyle.Render(a.spinner.View() + " Loading headlines...")
	} else {
		body = RenderCards(a.state.Articles, a.state.Cursor, a.width, cardsHeight, a.state.Fallback, a.cfg.ShowImages)
	}

	// Pad so the status bar sits on the last line.
	gap := a.height - lipgloss.Height(head) - lipgloss.Height(body) - 1
	if gap < 1 {
		gap = 1
	}
	return head + "\n" + body + strings.Repeat("\n", gap) + status
}

func (a App) busyLabel() string {
	switch {
	case a.state.Loading:
		return "Loading headlines..."
	case a.state.SummaryLoading:
		return "Summarizing..."
	}
	return ""
}

func (a App) summaryPanel() string {
	width := a.width - 2
	if width < 20 {
		width = 20
	}
	switch {
	case a.state.SummaryLoading:
		return SummaryPanel.Width(width).Render(SummaryLabel.Render("Summary") + "\n" + a.spinner.View() + " Generating summary...")
	case a.state.Summary != "":
		return SummaryPanel.Width(width).Render(SummaryLabel.Render("Summary") + "\n" + a.state.Summary)
	}
	return ""
}

// chatOverlay renders the chat modal: title, history, input.
func (a App) chatOverlay() string {
	w, _ := a.chatSize()

	title := ChatTitle.Render("AI News Assistant") + "  " + StatusBarText.Render(a.state.Category.Title())

	footer := a.input.View()
	if a.state.Chat.Waiting {
		footer = a.spinner.View() + " Thinking..."
	}
	hints := StatusBarKey.Render("Enter") + StatusBarText.Render(":send ") +
		StatusBarKey.Render("PgUp/PgDn") + StatusBarText.Render(":scroll ") +
		StatusBarKey.Render("Esc") + StatusBarText.Render(":close")

	content := strings.Join([]string{title, "", a.chatView.View(), "", footer, hints}, "\n")
	return ChatPanel.Width(w + 4).Render(content)
}

// renderMessages lays out the chat history: user messages right-aligned,
// assistant messages left-aligned.
func renderMessages(msgs []desk.ChatMessage, width int) string {
	if width < 10 {
		width = 10
	}
	bubbleWidth := width * 4 / 5

	var blocks []string
	for _, m := range msgs {
		if m.Role == desk.RoleUser {
			bubble := UserBubble.MaxWidth(bubbleWidth).Width(min(bubbleWidth, lipgloss.Width(m.Text)+2)).Render(m.Text)
			blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble))
		} else {
			bubble := AssistantBubble.Width(bubbleWidth).Render(m.Text)
			blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble))
		}
	}
	return strings.Join(blocks, "\n\n")
}
