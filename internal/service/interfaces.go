package service

import (
	"context"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/importer"
	"github.com/alexanderramin/trackveil/internal/privacy"
)

type ProfileService interface {
	Create(ctx context.Context, p *domain.Profile) error
	Get(ctx context.Context, id string) (*domain.Profile, error)
	GetByToken(ctx context.Context, token string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	ListPublic(ctx context.Context) ([]*domain.Profile, error)
}

type WorkstreamService interface {
	Create(ctx context.Context, w *domain.Workstream) error
	Get(ctx context.Context, id string) (*domain.Workstream, error)
	GetByToken(ctx context.Context, token string) (*domain.Workstream, error)
	List(ctx context.Context) ([]*domain.Workstream, error)
	ListPublic(ctx context.Context) ([]*domain.Workstream, error)
}

type TimesheetService interface {
	Log(ctx context.Context, t *domain.TimesheetEntry) error
	Get(ctx context.Context, id string) (*domain.TimesheetEntry, error)
	List(ctx context.Context) ([]*domain.TimesheetEntry, error)
	ListPublic(ctx context.Context) ([]*domain.TimesheetEntry, error)
	Import(ctx context.Context, filePath string, skipInvalid bool) (*ImportResult, error)
	ImportRows(ctx context.Context, rows []importer.TimesheetRow, skipInvalid bool) (*ImportResult, error)
	Summary(ctx context.Context, filter aggregate.TimeFilter) (*domain.TimesheetSummary, error)
	Trend(ctx context.Context, period string) (*domain.TrendAnalysis, error)
}

type BudgetService interface {
	CreateEntry(ctx context.Context, b *domain.BudgetEntry) error
	CreateForecast(ctx context.Context, f *domain.BudgetForecast) error
	GetEntry(ctx context.Context, id string) (*domain.BudgetEntry, error)
	ListEntries(ctx context.Context) ([]*domain.BudgetEntry, error)
	ListForecasts(ctx context.Context) ([]*domain.BudgetForecast, error)
	Summary(ctx context.Context, workstreamID string) (*domain.BudgetSummary, error)
}

type DashboardService interface {
	Rollup(ctx context.Context) (*domain.DashboardRollup, error)
}

// Revealed is the result of an authorized token reversal.
type Revealed struct {
	Token    string
	Original string
	Category privacy.Category
	// Entity is set when the token is an anonymized entity id rather than a
	// field-level pseudonym.
	Entity domain.Entity
}

type RevealService interface {
	Reveal(ctx context.Context, token string) (*Revealed, error)
}

// ImportResult holds the outcome of a timesheet import.
type ImportResult struct {
	Imported      int
	AnonymizedIDs []string
	// Rejected lists per-row validation errors for rows skipped when the
	// caller opted to continue past invalid input.
	Rejected []error
}
