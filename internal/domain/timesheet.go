package domain

import (
	"fmt"
	"time"
)

// TimesheetEntry records hours logged by one profile against one workstream.
type TimesheetEntry struct {
	ID           string
	AnonymizedID string

	Date           time.Time
	UserID         string
	WorkstreamID   string
	Hours          float64
	Notes          string
	ApprovalStatus ApprovalStatus
	SubmittedAt    *time.Time
	ApprovedAt     *time.Time
	ApprovedBy     string
}

func (t *TimesheetEntry) Kind() EntityKind { return KindTimesheet }
func (t *TimesheetEntry) Key() string      { return t.ID }
func (t *TimesheetEntry) Token() string    { return t.AnonymizedID }

// Validate checks required fields and numeric ranges.
func (t *TimesheetEntry) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("timesheet date is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("timesheet user id is required")
	}
	if t.WorkstreamID == "" {
		return fmt.Errorf("timesheet workstream id is required")
	}
	if t.Hours < 0 {
		return fmt.Errorf("hours must not be negative, got %v", t.Hours)
	}
	if t.ApprovalStatus != "" && !ValidApprovalStatuses[string(t.ApprovalStatus)] {
		return fmt.Errorf("invalid approval status %q", t.ApprovalStatus)
	}
	return nil
}
