package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/charmbracelet/lipgloss"
)

// descriptionLines caps the wrapped description shown on a card.
const descriptionLines = 2

// RenderCards renders the article list as cards, scrolled so the card under
// cursor is visible within height lines.
func RenderCards(articles []news.Article, cursor, width, height int, fallback, showImages bool) string {
	if len(articles) == 0 {
		return HelpStyle.Render("No articles to display. Press 'r' to reload.")
	}
	if height < 1 {
		height = 1
	}

	cards := make([][]string, len(articles))
	for i, a := range articles {
		cards[i] = cardLines(a, width, fallback, showImages)
	}

	offset := calcScrollOffset(cards, cursor, height)

	var out []string
	for i := offset; i < len(cards); i++ {
		style := NormalCard
		if i == cursor {
			style = SelectedCard
		}
		block := strings.Split(style.Render(strings.Join(cards[i], "\n")), "\n")
		if len(out)+len(block) > height {
			break
		}
		out = append(out, block...)
		if len(out) < height {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// cardLines builds the unstyled lines of one card, separator excluded.
func cardLines(a news.Article, width int, fallback, showImages bool) []string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	lines := []string{CardTitle.Render(truncateRunes(a.Title, inner))}

	meta := ""
	if a.Source.Name != "" {
		meta = SourceBadge.Render(truncateRunes(a.Source.Name, 30))
	}
	meta += CardMeta.Render(a.DisplayDate())
	if fallback {
		meta += " " + MockBadge.Render("DEMO")
	}
	lines = append(lines, meta)

	if a.Description != "" {
		wrapped := strings.Split(lipgloss.NewStyle().Width(inner).Render(a.Description), "\n")
		if len(wrapped) > descriptionLines {
			wrapped = wrapped[:descriptionLines]
			last := strings.TrimRight(wrapped[descriptionLines-1], " ")
			wrapped[descriptionLines-1] = truncateRunes(last, inner-3) + "..."
		}
		for _, w := range wrapped {
			lines = append(lines, CardDescription.Render(strings.TrimRight(w, " ")))
		}
	}

	if showImages && a.URLToImage != "" {
		lines = append(lines, CardMeta.Render("img "+truncateRunes(a.URLToImage, inner-4)))
	}
	return lines
}

// calcScrollOffset finds the smallest card index such that all cards from
// that index through the cursor (one separator line each) fit within
// availableHeight.
func calcScrollOffset(cards [][]string, cursor, availableHeight int) int {
	if len(cards) == 0 || cursor < 0 {
		return 0
	}
	if cursor >= len(cards) {
		cursor = len(cards) - 1
	}

	for offset := 0; offset < cursor; offset++ {
		lines := 0
		for i := offset; i <= cursor; i++ {
			lines += len(cards[i]) + 1
		}
		if lines <= availableHeight+1 {
			return offset
		}
	}
	return cursor
}

// RenderTabs renders the category tabs with number hints.
func RenderTabs(current news.Category, width int) string {
	var tabs []string
	for i, c := range news.Categories() {
		label := fmt.Sprintf("%d %s %s", i+1, c.Icon, c.Name)
		if c.ID == current {
			tabs = append(tabs, ActiveTab.Render(label))
		} else {
			tabs = append(tabs, InactiveTab.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(row) > width && width > 0 {
		// Narrow terminals: icons only, except the current tab.
		tabs = tabs[:0]
		for i, c := range news.Categories() {
			if c.ID == current {
				tabs = append(tabs, ActiveTab.Render(fmt.Sprintf("%d %s %s", i+1, c.Icon, c.Name)))
			} else {
				tabs = append(tabs, InactiveTab.Render(fmt.Sprintf("%d %s", i+1, c.Icon)))
			}
		}
		row = lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	}
	return row
}

// RenderStatusBar renders the bottom status bar.
// busy is the spinner text shown while requests are pending.
func RenderStatusBar(cursor, total, width int, busy, notice string) string {
	var left string
	switch {
	case busy != "":
		left = " " + busy + " "
	case notice != "":
		left = " " + notice + " "
	case total > 0:
		left = fmt.Sprintf(" %d/%d ", cursor+1, total)
	default:
		left = " "
	}

	keys := []string{
		StatusBarKey.Render("←/→") + StatusBarText.Render(":category"),
		StatusBarKey.Render("j/k") + StatusBarText.Render(":nav"),
		StatusBarKey.Render("o") + StatusBarText.Render(":open"),
		StatusBarKey.Render("s") + StatusBarText.Render(":summary"),
		StatusBarKey.Render("a") + StatusBarText.Render(":ask"),
		StatusBarKey.Render("r") + StatusBarText.Render(":reload"),
		StatusBarKey.Render("?") + StatusBarText.Render(":debug"),
		StatusBarKey.Render("q") + StatusBarText.Render(":quit"),
	}
	keyHints := strings.Join(keys, " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(keyHints)
	if padding < 0 {
		padding = 0
	}

	return StatusBar.Width(width).Render(left + strings.Repeat(" ", padding) + keyHints)
}

// truncateRunes shortens s to maxLen runes, ending in "..." when cut.
func truncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		if maxLen < 0 {
			maxLen = 0
		}
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
