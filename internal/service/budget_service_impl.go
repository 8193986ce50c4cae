package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/projector"
	"github.com/alexanderramin/trackveil/internal/repository"
)

type budgetService struct {
	store    *repository.EntityStore
	proj     *projector.Projector
	observer UseCaseObserver
}

func NewBudgetService(store *repository.EntityStore, proj *projector.Projector, observers ...UseCaseObserver) BudgetService {
	return &budgetService{
		store:    store,
		proj:     proj,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *budgetService) CreateEntry(ctx context.Context, b *domain.BudgetEntry) error {
	started := time.Now()
	err := s.createEntry(ctx, b)
	observe(ctx, s.observer, "budget.create_entry", started, err, map[string]any{"budget_id": b.ID})
	return err
}

func (s *budgetService) createEntry(ctx context.Context, b *domain.BudgetEntry) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("validating budget entry: %w", err)
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return s.proj.SaveBudget(ctx, b)
}

func (s *budgetService) CreateForecast(ctx context.Context, f *domain.BudgetForecast) error {
	started := time.Now()
	err := s.createForecast(ctx, f)
	observe(ctx, s.observer, "budget.create_forecast", started, err, map[string]any{"forecast_id": f.ID})
	return err
}

func (s *budgetService) createForecast(ctx context.Context, f *domain.BudgetForecast) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("validating forecast: %w", err)
	}
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now
	return s.proj.SaveForecast(ctx, f)
}

func (s *budgetService) GetEntry(ctx context.Context, id string) (*domain.BudgetEntry, error) {
	return s.store.Budgets.GetByID(ctx, id)
}

func (s *budgetService) ListEntries(ctx context.Context) ([]*domain.BudgetEntry, error) {
	return s.store.Budgets.List(ctx)
}

func (s *budgetService) ListForecasts(ctx context.Context) ([]*domain.BudgetForecast, error) {
	return s.store.Forecasts.List(ctx)
}

func (s *budgetService) Summary(ctx context.Context, workstreamID string) (*domain.BudgetSummary, error) {
	budgets, err := s.store.Budgets.ListByWorkstream(ctx, workstreamID)
	if err != nil {
		return nil, fmt.Errorf("loading budget entries: %w", err)
	}
	forecasts, err := s.store.Forecasts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading forecasts: %w", err)
	}
	scoped := make([]*domain.BudgetForecast, 0, len(forecasts))
	for _, f := range forecasts {
		if f.WorkstreamID == workstreamID {
			scoped = append(scoped, f)
		}
	}
	return aggregate.BudgetSummary(workstreamID, budgets, scoped), nil
}
