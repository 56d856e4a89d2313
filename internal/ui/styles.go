package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorWarning   = lipgloss.Color("214") // Amber
	colorSuccess   = lipgloss.Color("78")  // Green
)

// Header style for the app title line.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// Banner style for the credential warning.
var Banner = lipgloss.NewStyle().
	Foreground(lipgloss.Color("232")).
	Background(colorWarning).
	Padding(0, 1)

// ActiveTab style for the selected category.
var ActiveTab = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// InactiveTab style for other categories.
var InactiveTab = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// SectionTitle style for the "<icon> <Category> News" heading.
var SectionTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginTop(1).
	Padding(0, 1)

// SummaryPanel style for the category summary box.
var SummaryPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(0, 1)

// SummaryLabel style for the summary heading.
var SummaryLabel = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// SelectedCard style for the card under the cursor.
var SelectedCard = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder(), false, false, false, true).
	BorderForeground(colorHighlight).
	PaddingLeft(1)

// NormalCard style for other cards.
var NormalCard = lipgloss.NewStyle().
	Border(lipgloss.HiddenBorder(), false, false, false, true).
	PaddingLeft(1)

// CardTitle style for article titles.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// CardMeta style for source and date.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorSecondary)

// CardDescription style for the description text.
var CardDescription = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250"))

// SourceBadge style for source name badges.
var SourceBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1).
	MarginRight(1)

// MockBadge marks fallback articles.
var MockBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("232")).
	Background(colorWarning).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for empty-state text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// ChatPanel style for the chat overlay frame.
var ChatPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(0, 1)

// ChatTitle style for the overlay heading.
var ChatTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorHighlight).
	Padding(0, 1)

// UserBubble style for the user's messages.
var UserBubble = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// AssistantBubble style for the assistant's messages.
var AssistantBubble = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("237")).
	Padding(0, 1)

// SpinnerStyle for loading indicators.
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(colorHighlight)

// SuccessStyle for confirmations in the status bar.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(colorSuccess)

// DebugPanel style for the debug overlay.
var DebugPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(1, 2)

// DebugHeaderStyle for debug overlay section headers.
var DebugHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)
