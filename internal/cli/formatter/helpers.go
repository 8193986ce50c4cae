package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 12 characters of an id, dimmed. Anonymized ids
// are short enough to show whole.
func TruncID(id string) string {
	if len(id) > 12 {
		id = id[:12]
	}
	return StyleDim.Render(id)
}

// Hours formats an hour count, dropping a trailing ".0".
func Hours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%dh", int64(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// Money formats an amount with two decimals.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// Pct formats a percentage with one decimal.
func Pct(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// HumanDate returns a compact absolute date string.
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return Dim("--")
	}
	return t.Format("Jan 2, 2006")
}
