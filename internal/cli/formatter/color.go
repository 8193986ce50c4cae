package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// WorkstreamStatusPill returns a colored status indicator for a workstream.
func WorkstreamStatusPill(status domain.WorkstreamStatus) string {
	switch status {
	case domain.WorkstreamPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.WorkstreamInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.WorkstreamOnHold:
		return StyleYellow.Render("◌ On Hold")
	case domain.WorkstreamCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.WorkstreamCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// ApprovalPill returns a colored approval indicator for a timesheet entry.
func ApprovalPill(status domain.ApprovalStatus) string {
	switch status {
	case domain.ApprovalApproved:
		return StyleGreen.Render("✔ Approved")
	case domain.ApprovalSubmitted:
		return StyleYellow.Render("○ Submitted")
	case domain.ApprovalRejected:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleBlue.Render("○ Open")
	}
}

// RiskIndicator returns a colored resource-risk indicator string.
func RiskIndicator(atRisk bool) string {
	if atRisk {
		return StyleRed.Render("● RESOURCE RISK")
	}
	return StyleGreen.Render("● ON TRACK")
}

// VarianceStyled colors a variance amount: red over budget, green under.
func VarianceStyled(variance float64) string {
	text := Money(variance)
	if variance > 0 {
		return StyleRed.Render("+" + text)
	}
	if variance < 0 {
		return StyleGreen.Render(text)
	}
	return StyleDim.Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
