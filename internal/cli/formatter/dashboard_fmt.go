package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// FormatDashboard renders the project-level rollup.
func FormatDashboard(d *domain.DashboardRollup) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", RiskIndicator(d.ResourceRisk))
	fmt.Fprintf(&b, "Budget:   %s planned, %s spent, %s remaining\n",
		Money(d.TotalBudget), Money(d.TotalSpent), Money(d.TotalBudget-d.TotalSpent))
	fmt.Fprintf(&b, "Hours:    %s across %d entries\n", Hours(d.TotalHours), d.TimesheetEntries)
	fmt.Fprintf(&b, "Progress: %s\n", Pct(d.OverallProgress))
	fmt.Fprintf(&b, "Team:     %d profiles, %d workstreams\n", d.ProfileCount, d.WorkstreamCount)

	if len(d.Workstreams) > 0 {
		headers := []string{"Workstream", "Status", "Budget", "Spent", "Remaining", "Hours", "Progress"}
		rows := make([][]string, 0, len(d.Workstreams))
		for _, w := range d.Workstreams {
			name := w.Name
			if name == "" {
				name = w.WorkstreamID
			}
			rows = append(rows, []string{
				name,
				WorkstreamStatusPill(w.Status),
				Money(w.BudgetAmount),
				Money(w.SpentAmount),
				Money(w.RemainingAmount),
				Hours(w.HoursLogged),
				Pct(w.ProgressPct),
			})
		}
		fmt.Fprintf(&b, "\n%s", RenderTable(headers, rows))
	}

	return RenderBox("dashboard", strings.TrimRight(b.String(), "\n"))
}
