package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/trackveil/internal/db"
	"github.com/alexanderramin/trackveil/internal/domain"
)

const workstreamColumns = `anonymized_id, name, description, status, priority,
		estimated_hours, actual_hours, completion_pct, start_date, end_date,
		assigned_profiles, dependencies, tags`

// SQLiteWorkstreamRepo implements WorkstreamRepo over the secure_workstreams
// and public_workstreams tables.
type SQLiteWorkstreamRepo struct {
	db db.DBTX
}

// NewSQLiteWorkstreamRepo creates a new SQLiteWorkstreamRepo.
func NewSQLiteWorkstreamRepo(conn db.DBTX) *SQLiteWorkstreamRepo {
	return &SQLiteWorkstreamRepo{db: conn}
}

func (r *SQLiteWorkstreamRepo) Put(ctx context.Context, w *domain.Workstream) error {
	query := `INSERT OR REPLACE INTO secure_workstreams (id, ` + workstreamColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.AnonymizedID,
		w.Name,
		w.Description,
		string(w.Status),
		string(w.Priority),
		w.EstimatedHours,
		w.ActualHours,
		w.CompletionPct,
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.EndDate, dateLayout),
		encodeStrings(w.AssignedProfiles),
		encodeStrings(w.Dependencies),
		encodeStrings(w.Tags),
	)
	if err != nil {
		return fmt.Errorf("upserting workstream: %w", err)
	}
	return nil
}

func (r *SQLiteWorkstreamRepo) GetByID(ctx context.Context, id string) (*domain.Workstream, error) {
	query := `SELECT id, ` + workstreamColumns + ` FROM secure_workstreams WHERE id = ?`
	return r.scanWorkstream(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkstreamRepo) GetByAnonymizedID(ctx context.Context, token string) (*domain.Workstream, error) {
	query := `SELECT id, ` + workstreamColumns + ` FROM secure_workstreams WHERE anonymized_id = ?`
	return r.scanWorkstream(r.db.QueryRowContext(ctx, query, token))
}

func (r *SQLiteWorkstreamRepo) List(ctx context.Context) ([]*domain.Workstream, error) {
	query := `SELECT id, ` + workstreamColumns + ` FROM secure_workstreams ORDER BY name`
	return r.queryWorkstreams(ctx, query, true)
}

func (r *SQLiteWorkstreamRepo) PutPublic(ctx context.Context, w *domain.Workstream) error {
	query := `INSERT OR REPLACE INTO public_workstreams (` + workstreamColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.AnonymizedID,
		w.Name,
		w.Description,
		string(w.Status),
		string(w.Priority),
		w.EstimatedHours,
		w.ActualHours,
		w.CompletionPct,
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.EndDate, dateLayout),
		encodeStrings(w.AssignedProfiles),
		encodeStrings(w.Dependencies),
		encodeStrings(w.Tags),
	)
	if err != nil {
		return fmt.Errorf("upserting public workstream: %w", err)
	}
	return nil
}

func (r *SQLiteWorkstreamRepo) ListPublic(ctx context.Context) ([]*domain.Workstream, error) {
	query := `SELECT ` + workstreamColumns + ` FROM public_workstreams ORDER BY anonymized_id`
	return r.queryWorkstreams(ctx, query, false)
}

func (r *SQLiteWorkstreamRepo) queryWorkstreams(ctx context.Context, query string, secure bool) ([]*domain.Workstream, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workstreams: %w", err)
	}
	defer rows.Close()

	var streams []*domain.Workstream
	for rows.Next() {
		w, err := scanWorkstreamRow(rows, secure)
		if err != nil {
			return nil, err
		}
		streams = append(streams, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workstreams: %w", err)
	}
	return streams, nil
}

func (r *SQLiteWorkstreamRepo) scanWorkstream(row *sql.Row) (*domain.Workstream, error) {
	var w domain.Workstream
	var status, priority, profiles, deps, tags string
	var startDate, endDate sql.NullString

	err := row.Scan(
		&w.ID, &w.AnonymizedID, &w.Name, &w.Description, &status, &priority,
		&w.EstimatedHours, &w.ActualHours, &w.CompletionPct,
		&startDate, &endDate, &profiles, &deps, &tags,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workstream: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workstream: %w", err)
	}

	populateWorkstream(&w, status, priority, profiles, deps, tags, startDate, endDate)
	return &w, nil
}

func scanWorkstreamRow(rows *sql.Rows, secure bool) (*domain.Workstream, error) {
	var w domain.Workstream
	var status, priority, profiles, deps, tags string
	var startDate, endDate sql.NullString

	dest := []any{
		&w.AnonymizedID, &w.Name, &w.Description, &status, &priority,
		&w.EstimatedHours, &w.ActualHours, &w.CompletionPct,
		&startDate, &endDate, &profiles, &deps, &tags,
	}
	if secure {
		dest = append([]any{&w.ID}, dest...)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning workstream row: %w", err)
	}

	populateWorkstream(&w, status, priority, profiles, deps, tags, startDate, endDate)
	return &w, nil
}

func populateWorkstream(w *domain.Workstream, status, priority, profiles, deps, tags string, startDate, endDate sql.NullString) {
	w.Status = domain.WorkstreamStatus(status)
	w.Priority = domain.WorkstreamPriority(priority)
	w.AssignedProfiles = decodeStrings(profiles)
	w.Dependencies = decodeStrings(deps)
	w.Tags = decodeStrings(tags)
	w.StartDate = parseNullableTime(startDate, dateLayout)
	w.EndDate = parseNullableTime(endDate, dateLayout)
}
