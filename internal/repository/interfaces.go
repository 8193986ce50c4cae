package repository

import (
	"context"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// Every repo manages one entity kind across two partitions: the secure table
// (canonical, keyed by original id) and the public table (derived projection,
// keyed by anonymized id, no original id column). Put is an upsert by
// original id; PutPublic is an upsert by anonymized id and expects a record
// whose sensitive fields already hold tokens.

type ProfileRepo interface {
	Put(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByAnonymizedID(ctx context.Context, token string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	PutPublic(ctx context.Context, p *domain.Profile) error
	ListPublic(ctx context.Context) ([]*domain.Profile, error)
}

type WorkstreamRepo interface {
	Put(ctx context.Context, w *domain.Workstream) error
	GetByID(ctx context.Context, id string) (*domain.Workstream, error)
	GetByAnonymizedID(ctx context.Context, token string) (*domain.Workstream, error)
	List(ctx context.Context) ([]*domain.Workstream, error)
	PutPublic(ctx context.Context, w *domain.Workstream) error
	ListPublic(ctx context.Context) ([]*domain.Workstream, error)
}

type TimesheetRepo interface {
	Put(ctx context.Context, t *domain.TimesheetEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimesheetEntry, error)
	GetByAnonymizedID(ctx context.Context, token string) (*domain.TimesheetEntry, error)
	List(ctx context.Context) ([]*domain.TimesheetEntry, error)
	PutPublic(ctx context.Context, t *domain.TimesheetEntry) error
	ListPublic(ctx context.Context) ([]*domain.TimesheetEntry, error)
}

type BudgetRepo interface {
	Put(ctx context.Context, b *domain.BudgetEntry) error
	GetByID(ctx context.Context, id string) (*domain.BudgetEntry, error)
	GetByAnonymizedID(ctx context.Context, token string) (*domain.BudgetEntry, error)
	List(ctx context.Context) ([]*domain.BudgetEntry, error)
	ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.BudgetEntry, error)
	PutPublic(ctx context.Context, b *domain.BudgetEntry) error
	ListPublic(ctx context.Context) ([]*domain.BudgetEntry, error)
	ListPublicByWorkstream(ctx context.Context, workstreamToken string) ([]*domain.BudgetEntry, error)
}

type ForecastRepo interface {
	Put(ctx context.Context, f *domain.BudgetForecast) error
	GetByID(ctx context.Context, id string) (*domain.BudgetForecast, error)
	GetByAnonymizedID(ctx context.Context, token string) (*domain.BudgetForecast, error)
	List(ctx context.Context) ([]*domain.BudgetForecast, error)
	PutPublic(ctx context.Context, f *domain.BudgetForecast) error
	ListPublic(ctx context.Context) ([]*domain.BudgetForecast, error)
	ListPublicByWorkstream(ctx context.Context, workstreamToken string) ([]*domain.BudgetForecast, error)
}
