package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// Convert transforms validated rows into domain entries ready for persistence.
// Call ValidateRows first; Convert assumes the rows are valid. Rows without
// an id get a generated one, rows without an approval status start open.
func Convert(rows []TimesheetRow) ([]*domain.TimesheetEntry, error) {
	entries := make([]*domain.TimesheetEntry, 0, len(rows))
	for i, r := range rows {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing entries[%d].date: %w", i, err)
		}

		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		status := domain.ApprovalStatus(r.ApprovalStatus)
		if status == "" {
			status = domain.ApprovalOpen
		}

		entries = append(entries, &domain.TimesheetEntry{
			ID:             id,
			Date:           date,
			UserID:         r.UserID,
			WorkstreamID:   r.WorkstreamID,
			Hours:          r.Hours,
			Notes:          r.Notes,
			ApprovalStatus: status,
		})
	}
	return entries, nil
}
