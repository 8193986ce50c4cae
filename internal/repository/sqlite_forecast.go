package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/db"
	"github.com/alexanderramin/trackveil/internal/domain"
)

const forecastColumns = `anonymized_id, workstream_id, profile_id, period,
		start_date, end_date, forecast_hours, forecast_amount, confidence_level,
		assumptions, created_at, updated_at`

// SQLiteForecastRepo implements ForecastRepo over the secure_forecasts and
// public_forecasts tables.
type SQLiteForecastRepo struct {
	db db.DBTX
}

// NewSQLiteForecastRepo creates a new SQLiteForecastRepo.
func NewSQLiteForecastRepo(conn db.DBTX) *SQLiteForecastRepo {
	return &SQLiteForecastRepo{db: conn}
}

func (r *SQLiteForecastRepo) Put(ctx context.Context, f *domain.BudgetForecast) error {
	query := `INSERT OR REPLACE INTO secure_forecasts (id, ` + forecastColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, append([]any{f.ID}, forecastArgs(f)...)...)
	if err != nil {
		return fmt.Errorf("upserting forecast: %w", err)
	}
	return nil
}

func (r *SQLiteForecastRepo) GetByID(ctx context.Context, id string) (*domain.BudgetForecast, error) {
	query := `SELECT id, ` + forecastColumns + ` FROM secure_forecasts WHERE id = ?`
	return r.scanForecast(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteForecastRepo) GetByAnonymizedID(ctx context.Context, token string) (*domain.BudgetForecast, error) {
	query := `SELECT id, ` + forecastColumns + ` FROM secure_forecasts WHERE anonymized_id = ?`
	return r.scanForecast(r.db.QueryRowContext(ctx, query, token))
}

func (r *SQLiteForecastRepo) List(ctx context.Context) ([]*domain.BudgetForecast, error) {
	query := `SELECT id, ` + forecastColumns + ` FROM secure_forecasts ORDER BY start_date`
	return r.queryForecasts(ctx, query, true)
}

func (r *SQLiteForecastRepo) PutPublic(ctx context.Context, f *domain.BudgetForecast) error {
	query := `INSERT OR REPLACE INTO public_forecasts (` + forecastColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, forecastArgs(f)...)
	if err != nil {
		return fmt.Errorf("upserting public forecast: %w", err)
	}
	return nil
}

func (r *SQLiteForecastRepo) ListPublic(ctx context.Context) ([]*domain.BudgetForecast, error) {
	query := `SELECT ` + forecastColumns + ` FROM public_forecasts ORDER BY start_date`
	return r.queryForecasts(ctx, query, false)
}

func (r *SQLiteForecastRepo) ListPublicByWorkstream(ctx context.Context, workstreamToken string) ([]*domain.BudgetForecast, error) {
	query := `SELECT ` + forecastColumns + ` FROM public_forecasts
		WHERE workstream_id = ? ORDER BY start_date`
	return r.queryForecasts(ctx, query, false, workstreamToken)
}

func forecastArgs(f *domain.BudgetForecast) []any {
	return []any{
		f.AnonymizedID,
		f.WorkstreamID,
		f.ProfileID,
		string(f.Period),
		f.StartDate.Format(dateLayout),
		f.EndDate.Format(dateLayout),
		f.ForecastHours,
		f.ForecastAmount,
		f.ConfidenceLevel,
		encodeStrings(f.Assumptions),
		f.CreatedAt.Format(time.RFC3339),
		f.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *SQLiteForecastRepo) queryForecasts(ctx context.Context, query string, secure bool, args ...any) ([]*domain.BudgetForecast, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing forecasts: %w", err)
	}
	defer rows.Close()

	var forecasts []*domain.BudgetForecast
	for rows.Next() {
		f, err := scanForecastRow(rows, secure)
		if err != nil {
			return nil, err
		}
		forecasts = append(forecasts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forecasts: %w", err)
	}
	return forecasts, nil
}

func (r *SQLiteForecastRepo) scanForecast(row *sql.Row) (*domain.BudgetForecast, error) {
	var f domain.BudgetForecast
	var period, startStr, endStr, assumptions, createdStr, updatedStr string

	err := row.Scan(
		&f.ID, &f.AnonymizedID, &f.WorkstreamID, &f.ProfileID, &period,
		&startStr, &endStr, &f.ForecastHours, &f.ForecastAmount,
		&f.ConfidenceLevel, &assumptions, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("forecast: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning forecast: %w", err)
	}

	return populateForecast(&f, period, startStr, endStr, assumptions, createdStr, updatedStr)
}

func scanForecastRow(rows *sql.Rows, secure bool) (*domain.BudgetForecast, error) {
	var f domain.BudgetForecast
	var period, startStr, endStr, assumptions, createdStr, updatedStr string

	dest := []any{
		&f.AnonymizedID, &f.WorkstreamID, &f.ProfileID, &period,
		&startStr, &endStr, &f.ForecastHours, &f.ForecastAmount,
		&f.ConfidenceLevel, &assumptions, &createdStr, &updatedStr,
	}
	if secure {
		dest = append([]any{&f.ID}, dest...)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning forecast row: %w", err)
	}

	return populateForecast(&f, period, startStr, endStr, assumptions, createdStr, updatedStr)
}

func populateForecast(f *domain.BudgetForecast, period, startStr, endStr, assumptions, createdStr, updatedStr string) (*domain.BudgetForecast, error) {
	var err error
	if f.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing forecast start date: %w", err)
	}
	if f.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return nil, fmt.Errorf("parsing forecast end date: %w", err)
	}
	if f.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing forecast created_at: %w", err)
	}
	if f.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing forecast updated_at: %w", err)
	}
	f.Period = domain.BudgetPeriod(period)
	f.Assumptions = decodeStrings(assumptions)
	return f, nil
}
