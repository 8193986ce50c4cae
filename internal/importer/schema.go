package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportFile is the top-level JSON structure for a timesheet import. Rows are
// already-parsed structured records; turning spreadsheets into this shape is
// the caller's problem.
type ImportFile struct {
	Entries []TimesheetRow `json:"entries"`
}

// TimesheetRow is one logged-hours record in the import file.
type TimesheetRow struct {
	ID             string  `json:"id,omitempty"`
	Date           string  `json:"date"`
	UserID         string  `json:"user_id"`
	WorkstreamID   string  `json:"workstream_id"`
	Hours          float64 `json:"hours"`
	Notes          string  `json:"notes,omitempty"`
	ApprovalStatus string  `json:"approval_status,omitempty"`
}

// LoadImportFile reads and parses a timesheet import JSON file.
func LoadImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file ImportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &file, nil
}
