package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/db"
	"github.com/alexanderramin/trackveil/internal/domain"
)

const timesheetColumns = `anonymized_id, date, user_id, workstream_id, hours,
		notes, approval_status, submitted_at, approved_at, approved_by`

// SQLiteTimesheetRepo implements TimesheetRepo over the secure_timesheets
// and public_timesheets tables.
type SQLiteTimesheetRepo struct {
	db db.DBTX
}

// NewSQLiteTimesheetRepo creates a new SQLiteTimesheetRepo.
func NewSQLiteTimesheetRepo(conn db.DBTX) *SQLiteTimesheetRepo {
	return &SQLiteTimesheetRepo{db: conn}
}

func (r *SQLiteTimesheetRepo) Put(ctx context.Context, t *domain.TimesheetEntry) error {
	query := `INSERT OR REPLACE INTO secure_timesheets (id, ` + timesheetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.AnonymizedID,
		t.Date.Format(dateLayout),
		t.UserID,
		t.WorkstreamID,
		t.Hours,
		t.Notes,
		string(t.ApprovalStatus),
		nullableTimeToString(t.SubmittedAt, time.RFC3339),
		nullableTimeToString(t.ApprovedAt, time.RFC3339),
		t.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("upserting timesheet entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) GetByID(ctx context.Context, id string) (*domain.TimesheetEntry, error) {
	query := `SELECT id, ` + timesheetColumns + ` FROM secure_timesheets WHERE id = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTimesheetRepo) GetByAnonymizedID(ctx context.Context, token string) (*domain.TimesheetEntry, error) {
	query := `SELECT id, ` + timesheetColumns + ` FROM secure_timesheets WHERE anonymized_id = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, token))
}

func (r *SQLiteTimesheetRepo) List(ctx context.Context) ([]*domain.TimesheetEntry, error) {
	query := `SELECT id, ` + timesheetColumns + ` FROM secure_timesheets ORDER BY date`
	return r.queryEntries(ctx, query, true)
}

func (r *SQLiteTimesheetRepo) PutPublic(ctx context.Context, t *domain.TimesheetEntry) error {
	query := `INSERT OR REPLACE INTO public_timesheets (` + timesheetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.AnonymizedID,
		t.Date.Format(dateLayout),
		t.UserID,
		t.WorkstreamID,
		t.Hours,
		t.Notes,
		string(t.ApprovalStatus),
		nullableTimeToString(t.SubmittedAt, time.RFC3339),
		nullableTimeToString(t.ApprovedAt, time.RFC3339),
		t.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("upserting public timesheet entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) ListPublic(ctx context.Context) ([]*domain.TimesheetEntry, error) {
	query := `SELECT ` + timesheetColumns + ` FROM public_timesheets ORDER BY date`
	return r.queryEntries(ctx, query, false)
}

func (r *SQLiteTimesheetRepo) queryEntries(ctx context.Context, query string, secure bool) ([]*domain.TimesheetEntry, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimesheetEntry
	for rows.Next() {
		t, err := scanTimesheetRow(rows, secure)
		if err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timesheet entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteTimesheetRepo) scanEntry(row *sql.Row) (*domain.TimesheetEntry, error) {
	var t domain.TimesheetEntry
	var dateStr, status string
	var submittedAt, approvedAt sql.NullString

	err := row.Scan(
		&t.ID, &t.AnonymizedID, &dateStr, &t.UserID, &t.WorkstreamID,
		&t.Hours, &t.Notes, &status, &submittedAt, &approvedAt, &t.ApprovedBy,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("timesheet entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning timesheet entry: %w", err)
	}

	return populateTimesheet(&t, dateStr, status, submittedAt, approvedAt)
}

func scanTimesheetRow(rows *sql.Rows, secure bool) (*domain.TimesheetEntry, error) {
	var t domain.TimesheetEntry
	var dateStr, status string
	var submittedAt, approvedAt sql.NullString

	dest := []any{
		&t.AnonymizedID, &dateStr, &t.UserID, &t.WorkstreamID,
		&t.Hours, &t.Notes, &status, &submittedAt, &approvedAt, &t.ApprovedBy,
	}
	if secure {
		dest = append([]any{&t.ID}, dest...)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning timesheet row: %w", err)
	}

	return populateTimesheet(&t, dateStr, status, submittedAt, approvedAt)
}

func populateTimesheet(t *domain.TimesheetEntry, dateStr, status string, submittedAt, approvedAt sql.NullString) (*domain.TimesheetEntry, error) {
	parsed, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing timesheet date: %w", err)
	}
	t.Date = parsed
	t.ApprovalStatus = domain.ApprovalStatus(status)
	t.SubmittedAt = parseNullableTime(submittedAt, time.RFC3339)
	t.ApprovedAt = parseNullableTime(approvedAt, time.RFC3339)
	return t, nil
}
