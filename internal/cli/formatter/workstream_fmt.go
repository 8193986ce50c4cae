package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// FormatWorkstreamList renders workstreams as a table.
func FormatWorkstreamList(workstreams []*domain.Workstream) string {
	headers := []string{"ID", "Token", "Name", "Status", "Est.", "Done"}
	rows := make([][]string, 0, len(workstreams))
	for _, w := range workstreams {
		id := w.ID
		if id == "" {
			id = "--"
		}
		rows = append(rows, []string{
			TruncID(id),
			StyleBlue.Render(w.AnonymizedID),
			w.Name,
			WorkstreamStatusPill(w.Status),
			Hours(w.EstimatedHours),
			Pct(w.CompletionPct),
		})
	}
	return RenderTable(headers, rows)
}

// FormatWorkstream renders one workstream in a box.
func FormatWorkstream(w *domain.Workstream) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(w.Name), StyleBlue.Render(w.AnonymizedID))
	if w.Description != "" {
		fmt.Fprintf(&b, "%s\n", Dim(w.Description))
	}
	fmt.Fprintf(&b, "Status:     %s  %s\n", WorkstreamStatusPill(w.Status), StylePurple.Render(string(w.Priority)))
	fmt.Fprintf(&b, "Hours:      %s logged / %s estimated (%s)\n",
		Hours(w.ActualHours), Hours(w.EstimatedHours), Pct(w.CompletionPct))
	if len(w.AssignedProfiles) > 0 {
		fmt.Fprintf(&b, "Assigned:   %s\n", strings.Join(w.AssignedProfiles, ", "))
	}
	if len(w.Dependencies) > 0 {
		fmt.Fprintf(&b, "Depends on: %s\n", strings.Join(w.Dependencies, ", "))
	}
	if len(w.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:       %s\n", Dim(strings.Join(w.Tags, ", ")))
	}
	return RenderBox("workstream", strings.TrimRight(b.String(), "\n"))
}
