package formatter

import (
	"github.com/alexanderramin/trackveil/internal/domain"
)

// FormatTimesheetList renders timesheet entries as a table.
func FormatTimesheetList(entries []*domain.TimesheetEntry) string {
	headers := []string{"ID", "Date", "User", "Workstream", "Hours", "Status"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		id := e.ID
		if id == "" {
			id = e.AnonymizedID
		}
		rows = append(rows, []string{
			TruncID(id),
			e.Date.Format("2006-01-02"),
			e.UserID,
			e.WorkstreamID,
			Hours(e.Hours),
			ApprovalPill(e.ApprovalStatus),
		})
	}
	return RenderTable(headers, rows)
}
