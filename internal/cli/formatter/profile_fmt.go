package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// FormatProfileList renders profiles as a table. Public-partition records
// show tokens where the secure ones show names and roles.
func FormatProfileList(profiles []*domain.Profile) string {
	headers := []string{"ID", "Token", "Name", "Role", "Rate/h", "Target"}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		id := p.ID
		if id == "" {
			id = "--"
		}
		rows = append(rows, []string{
			TruncID(id),
			StyleBlue.Render(p.AnonymizedID),
			p.Name,
			Dim(p.Role),
			Money(p.HourlyRate),
			Pct(p.UtilizationTarget * 100),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProfile renders one profile in a box.
func FormatProfile(p *domain.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(p.Name), StyleBlue.Render(p.AnonymizedID))
	fmt.Fprintf(&b, "Role:        %s\n", p.Role)
	fmt.Fprintf(&b, "Rates:       %s/h  %s/d\n", Money(p.HourlyRate), Money(p.DailyRate))
	fmt.Fprintf(&b, "Target:      %s\n", Pct(p.UtilizationTarget*100))
	if len(p.Workstreams) > 0 {
		fmt.Fprintf(&b, "Workstreams: %s\n", strings.Join(p.Workstreams, ", "))
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "Skills:      %s\n", Dim(strings.Join(p.Skills, ", ")))
	}
	if p.StartDate != nil {
		end := "open"
		if p.EndDate != nil {
			end = HumanDate(*p.EndDate)
		}
		fmt.Fprintf(&b, "Active:      %s to %s\n", HumanDate(*p.StartDate), end)
	}
	return RenderBox("profile", strings.TrimRight(b.String(), "\n"))
}
