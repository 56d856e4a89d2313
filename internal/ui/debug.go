package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/newsdesk/internal/otel"
)

// debugPanelChrome is the number of terminal lines consumed by DebugPanel's
// border (top + bottom = 2) and vertical padding (top + bottom = 2).
// Must be updated if DebugPanel style changes.
const debugPanelChrome = 4

// debugOverlay renders the debug panel showing request stats and recent events.
// Returns empty string if ring is nil.
func debugOverlay(ring *otel.RingBuffer, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()
	recent := ring.Last(20)

	var lines []string
	lines = append(lines, DebugHeaderStyle.Render("Request Stats"))
	lines = append(lines, fmt.Sprintf("  Headlines:   %d live, %d fallback, %d errors",
		stats[otel.KindHeadlinesComplete], stats[otel.KindHeadlinesFallback], stats[otel.KindHeadlinesError]))
	lines = append(lines, fmt.Sprintf("  Searches:    %d complete, %d errors",
		stats[otel.KindSearchComplete], stats[otel.KindSearchError]))
	lines = append(lines, fmt.Sprintf("  Completions: %d complete, %d errors, %d skipped",
		stats[otel.KindCompletionComplete], stats[otel.KindCompletionError], stats[otel.KindCompletionSkipped]))
	lines = append(lines, fmt.Sprintf("  Buffer:      %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	lines = append(lines, DebugHeaderStyle.Render("Recent Events"))
	for _, e := range recent {
		line := fmt.Sprintf("  %6s  %-22s", formatAge(time.Since(e.Time)), string(e.Kind))
		if e.Category != "" {
			line += "  " + e.Category
		}
		if e.Msg != "" {
			line += "  " + truncateRunes(e.Msg, 40)
		}
		if e.Err != "" {
			line += "  ERR:" + truncateRunes(e.Err, 30)
		}
		if e.RequestID != "" {
			rid := e.RequestID
			if len(rid) > 8 {
				rid = rid[:8]
			}
			line += "  rid:" + rid
		}
		lines = append(lines, line)
	}

	maxHeight := height - debugPanelChrome
	if maxHeight < 1 {
		maxHeight = 1
	}
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := 80
	if panelWidth > width-4 {
		panelWidth = width - 4
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	return DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge formats a duration as a compact human string.
// Negative durations from clock skew clamp to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

// debugStatusBar renders the status bar for the debug overlay.
func debugStatusBar(width int) string {
	keys := StatusBarKey.Render("?") + StatusBarText.Render(":close")
	return StatusBar.Width(width).Render("  [DEBUG]  " + keys)
}
