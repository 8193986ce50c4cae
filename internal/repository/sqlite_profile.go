package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/trackveil/internal/db"
	"github.com/alexanderramin/trackveil/internal/domain"
)

const profileColumns = `anonymized_id, name, role, hourly_rate, daily_rate,
		workstreams, allocated_hours, skills, start_date, end_date, utilization_target`

// SQLiteProfileRepo implements ProfileRepo over the secure_profiles and
// public_profiles tables.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Put(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR REPLACE INTO secure_profiles (id, ` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.AnonymizedID,
		p.Name,
		p.Role,
		p.HourlyRate,
		p.DailyRate,
		encodeStrings(p.Workstreams),
		encodeFloatMap(p.AllocatedHours),
		encodeStrings(p.Skills),
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.UtilizationTarget,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, ` + profileColumns + ` FROM secure_profiles WHERE id = ?`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProfileRepo) GetByAnonymizedID(ctx context.Context, token string) (*domain.Profile, error) {
	query := `SELECT id, ` + profileColumns + ` FROM secure_profiles WHERE anonymized_id = ?`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, token))
}

func (r *SQLiteProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	query := `SELECT id, ` + profileColumns + ` FROM secure_profiles ORDER BY name`
	return r.queryProfiles(ctx, query, true)
}

func (r *SQLiteProfileRepo) PutPublic(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR REPLACE INTO public_profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.AnonymizedID,
		p.Name,
		p.Role,
		p.HourlyRate,
		p.DailyRate,
		encodeStrings(p.Workstreams),
		encodeFloatMap(p.AllocatedHours),
		encodeStrings(p.Skills),
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.UtilizationTarget,
	)
	if err != nil {
		return fmt.Errorf("upserting public profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) ListPublic(ctx context.Context) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM public_profiles ORDER BY anonymized_id`
	return r.queryProfiles(ctx, query, false)
}

func (r *SQLiteProfileRepo) queryProfiles(ctx context.Context, query string, secure bool) ([]*domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanProfileRow(rows, secure)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	var workstreams, allocated, skills string
	var startDate, endDate sql.NullString

	err := row.Scan(
		&p.ID, &p.AnonymizedID, &p.Name, &p.Role, &p.HourlyRate, &p.DailyRate,
		&workstreams, &allocated, &skills, &startDate, &endDate, &p.UtilizationTarget,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Workstreams = decodeStrings(workstreams)
	p.AllocatedHours = decodeFloatMap(allocated)
	p.Skills = decodeStrings(skills)
	p.StartDate = parseNullableTime(startDate, dateLayout)
	p.EndDate = parseNullableTime(endDate, dateLayout)
	return &p, nil
}

func scanProfileRow(rows *sql.Rows, secure bool) (*domain.Profile, error) {
	var p domain.Profile
	var workstreams, allocated, skills string
	var startDate, endDate sql.NullString

	dest := []any{
		&p.AnonymizedID, &p.Name, &p.Role, &p.HourlyRate, &p.DailyRate,
		&workstreams, &allocated, &skills, &startDate, &endDate, &p.UtilizationTarget,
	}
	if secure {
		dest = append([]any{&p.ID}, dest...)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning profile row: %w", err)
	}

	p.Workstreams = decodeStrings(workstreams)
	p.AllocatedHours = decodeFloatMap(allocated)
	p.Skills = decodeStrings(skills)
	p.StartDate = parseNullableTime(startDate, dateLayout)
	p.EndDate = parseNullableTime(endDate, dateLayout)
	return &p, nil
}
