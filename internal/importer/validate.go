package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// ValidateRows checks every row before conversion.
// Returns a slice of all validation errors found.
func ValidateRows(rows []TimesheetRow) []error {
	var errs []error
	for i, r := range rows {
		errs = append(errs, ValidateRow(i, r)...)
	}
	return errs
}

// ValidateRow checks a single row, reporting errors under its index.
func ValidateRow(i int, r TimesheetRow) []error {
	var errs []error
	prefix := fmt.Sprintf("entries[%d]", i)

	if r.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", prefix))
	} else if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, r.Date))
	}

	if r.UserID == "" {
		errs = append(errs, fmt.Errorf("%s.user_id is required", prefix))
	}
	if r.WorkstreamID == "" {
		errs = append(errs, fmt.Errorf("%s.workstream_id is required", prefix))
	}
	if r.Hours < 0 {
		errs = append(errs, fmt.Errorf("%s.hours must not be negative, got %v", prefix, r.Hours))
	}
	if r.ApprovalStatus != "" && !domain.ValidApprovalStatuses[r.ApprovalStatus] {
		errs = append(errs, fmt.Errorf("%s.approval_status: invalid value %q", prefix, r.ApprovalStatus))
	}

	return errs
}
