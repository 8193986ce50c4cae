package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/db"
	"github.com/alexanderramin/trackveil/internal/domain"
)

const budgetColumns = `anonymized_id, workstream_id, profile_id, budget_type, period,
		start_date, end_date, planned_hours, planned_amount, actual_hours, actual_amount,
		status, notes, created_at, updated_at`

// SQLiteBudgetRepo implements BudgetRepo over the secure_budgets and
// public_budgets tables.
type SQLiteBudgetRepo struct {
	db db.DBTX
}

// NewSQLiteBudgetRepo creates a new SQLiteBudgetRepo.
func NewSQLiteBudgetRepo(conn db.DBTX) *SQLiteBudgetRepo {
	return &SQLiteBudgetRepo{db: conn}
}

func (r *SQLiteBudgetRepo) Put(ctx context.Context, b *domain.BudgetEntry) error {
	query := `INSERT OR REPLACE INTO secure_budgets (id, ` + budgetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, append([]any{b.ID}, budgetArgs(b)...)...)
	if err != nil {
		return fmt.Errorf("upserting budget entry: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetRepo) GetByID(ctx context.Context, id string) (*domain.BudgetEntry, error) {
	query := `SELECT id, ` + budgetColumns + ` FROM secure_budgets WHERE id = ?`
	return r.scanBudget(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteBudgetRepo) GetByAnonymizedID(ctx context.Context, token string) (*domain.BudgetEntry, error) {
	query := `SELECT id, ` + budgetColumns + ` FROM secure_budgets WHERE anonymized_id = ?`
	return r.scanBudget(r.db.QueryRowContext(ctx, query, token))
}

func (r *SQLiteBudgetRepo) List(ctx context.Context) ([]*domain.BudgetEntry, error) {
	query := `SELECT id, ` + budgetColumns + ` FROM secure_budgets ORDER BY start_date`
	return r.queryBudgets(ctx, query, true)
}

func (r *SQLiteBudgetRepo) ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.BudgetEntry, error) {
	query := `SELECT id, ` + budgetColumns + ` FROM secure_budgets
		WHERE workstream_id = ? ORDER BY start_date`
	return r.queryBudgets(ctx, query, true, workstreamID)
}

func (r *SQLiteBudgetRepo) PutPublic(ctx context.Context, b *domain.BudgetEntry) error {
	query := `INSERT OR REPLACE INTO public_budgets (` + budgetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, budgetArgs(b)...)
	if err != nil {
		return fmt.Errorf("upserting public budget entry: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetRepo) ListPublic(ctx context.Context) ([]*domain.BudgetEntry, error) {
	query := `SELECT ` + budgetColumns + ` FROM public_budgets ORDER BY start_date`
	return r.queryBudgets(ctx, query, false)
}

func (r *SQLiteBudgetRepo) ListPublicByWorkstream(ctx context.Context, workstreamToken string) ([]*domain.BudgetEntry, error) {
	query := `SELECT ` + budgetColumns + ` FROM public_budgets
		WHERE workstream_id = ? ORDER BY start_date`
	return r.queryBudgets(ctx, query, false, workstreamToken)
}

func budgetArgs(b *domain.BudgetEntry) []any {
	return []any{
		b.AnonymizedID,
		b.WorkstreamID,
		b.ProfileID,
		string(b.Type),
		string(b.Period),
		b.StartDate.Format(dateLayout),
		b.EndDate.Format(dateLayout),
		b.PlannedHours,
		b.PlannedAmount,
		b.ActualHours,
		b.ActualAmount,
		string(b.Status),
		b.Notes,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *SQLiteBudgetRepo) queryBudgets(ctx context.Context, query string, secure bool, args ...any) ([]*domain.BudgetEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing budget entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.BudgetEntry
	for rows.Next() {
		b, err := scanBudgetRow(rows, secure)
		if err != nil {
			return nil, err
		}
		entries = append(entries, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteBudgetRepo) scanBudget(row *sql.Row) (*domain.BudgetEntry, error) {
	var b domain.BudgetEntry
	var btype, period, status, startStr, endStr, createdStr, updatedStr string

	err := row.Scan(
		&b.ID, &b.AnonymizedID, &b.WorkstreamID, &b.ProfileID, &btype, &period,
		&startStr, &endStr, &b.PlannedHours, &b.PlannedAmount,
		&b.ActualHours, &b.ActualAmount, &status, &b.Notes, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("budget entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning budget entry: %w", err)
	}

	return populateBudget(&b, btype, period, status, startStr, endStr, createdStr, updatedStr)
}

func scanBudgetRow(rows *sql.Rows, secure bool) (*domain.BudgetEntry, error) {
	var b domain.BudgetEntry
	var btype, period, status, startStr, endStr, createdStr, updatedStr string

	dest := []any{
		&b.AnonymizedID, &b.WorkstreamID, &b.ProfileID, &btype, &period,
		&startStr, &endStr, &b.PlannedHours, &b.PlannedAmount,
		&b.ActualHours, &b.ActualAmount, &status, &b.Notes, &createdStr, &updatedStr,
	}
	if secure {
		dest = append([]any{&b.ID}, dest...)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning budget row: %w", err)
	}

	return populateBudget(&b, btype, period, status, startStr, endStr, createdStr, updatedStr)
}

func populateBudget(b *domain.BudgetEntry, btype, period, status, startStr, endStr, createdStr, updatedStr string) (*domain.BudgetEntry, error) {
	var err error
	if b.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing budget start date: %w", err)
	}
	if b.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return nil, fmt.Errorf("parsing budget end date: %w", err)
	}
	if b.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing budget created_at: %w", err)
	}
	if b.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing budget updated_at: %w", err)
	}
	b.Type = domain.BudgetType(btype)
	b.Period = domain.BudgetPeriod(period)
	b.Status = domain.BudgetStatus(status)
	return b, nil
}
