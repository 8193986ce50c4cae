// Package aggregate computes read-only summaries over in-memory snapshots.
// Nothing here touches storage; the service layer loads a snapshot and
// passes it in, so the same functions work over either partition.
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/trackveil/internal/domain"
)

const dateLayout = "2006-01-02"

// TimeFilter bounds a summary by date. Empty strings mean unbounded on that
// side; both bounds are inclusive.
type TimeFilter struct {
	Start string
	End   string
}

// TimeSummary totals logged hours over the given entries. Pending hours are
// everything not yet approved, so total = approved + pending always holds.
// knownWorkstreams limits the by-workstream breakdown to workstreams that
// exist; entries referencing anything else keep their hours in the total but
// land in UnresolvedWorkstreams instead. A nil map skips the check.
func TimeSummary(entries []*domain.TimesheetEntry, knownWorkstreams map[string]bool, filter TimeFilter) (*domain.TimesheetSummary, error) {
	var start, end time.Time
	if filter.Start != "" {
		t, err := time.Parse(dateLayout, filter.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing start date %q: %w", filter.Start, err)
		}
		start = t
	}
	if filter.End != "" {
		t, err := time.Parse(dateLayout, filter.End)
		if err != nil {
			return nil, fmt.Errorf("parsing end date %q: %w", filter.End, err)
		}
		end = t
	}

	summary := &domain.TimesheetSummary{
		ByWorkstream: make(map[string]float64),
		ByUser:       make(map[string]float64),
		DateRange:    [2]string{filter.Start, filter.End},
	}
	unresolved := make(map[string]bool)

	for _, e := range entries {
		if !start.IsZero() && e.Date.Before(start) {
			continue
		}
		if !end.IsZero() && e.Date.After(end) {
			continue
		}

		summary.TotalHours += e.Hours
		if e.ApprovalStatus == domain.ApprovalApproved {
			summary.ApprovedHours += e.Hours
		}

		if e.UserID != "" {
			summary.ByUser[e.UserID] += e.Hours
		}
		switch {
		case e.WorkstreamID == "":
		case knownWorkstreams != nil && !knownWorkstreams[e.WorkstreamID]:
			unresolved[e.WorkstreamID] = true
		default:
			summary.ByWorkstream[e.WorkstreamID] += e.Hours
		}
	}

	summary.PendingHours = summary.TotalHours - summary.ApprovedHours
	for ws := range unresolved {
		summary.UnresolvedWorkstreams = append(summary.UnresolvedWorkstreams, ws)
	}
	sort.Strings(summary.UnresolvedWorkstreams)
	return summary, nil
}
